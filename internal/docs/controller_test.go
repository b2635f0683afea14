package docs_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeremiasMeza/IA-Rag/internal/api"
	"github.com/JeremiasMeza/IA-Rag/internal/docs"
	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

type stubService struct {
	docs      []string
	listErr   error
	uploadErr error
	deleteErr error

	uploads []string
	deletes []string
	wipes   int
}

func (s *stubService) ListDocs(ctx context.Context, sessionID string) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.docs, nil
}

func (s *stubService) UploadPDF(ctx context.Context, sessionID, filename string, file io.Reader) (models.UploadResult, error) {
	s.uploads = append(s.uploads, filename)
	if s.uploadErr != nil {
		return models.UploadResult{}, s.uploadErr
	}
	return models.UploadResult{Uploaded: filename, ChunksIndexed: 7}, nil
}

func (s *stubService) DeleteDoc(ctx context.Context, sessionID, doc string) (api.DeleteDocResult, error) {
	s.deletes = append(s.deletes, doc)
	if s.deleteErr != nil {
		return api.DeleteDocResult{}, s.deleteErr
	}
	return api.DeleteDocResult{OK: true}, nil
}

func (s *stubService) DeleteAllDocs(ctx context.Context, sessionID string) error {
	s.wipes++
	return nil
}

func accept(string) bool { return true }
func decline(string) bool { return false }

func TestDocsDistinguishesEmptyFromNotLoaded(t *testing.T) {
	svc := &stubService{docs: []string{}}
	ctrl := docs.NewController(svc, "global", accept, nil)

	_, loaded := ctrl.Docs()
	assert.False(t, loaded, "fresh controller has not loaded anything")

	require.NoError(t, ctrl.Refresh(context.Background()))

	list, loaded := ctrl.Docs()
	assert.True(t, loaded, "an empty refreshed list is a loaded state")
	assert.Empty(t, list)
}

func TestRefreshError(t *testing.T) {
	svc := &stubService{listErr: errors.New("boom")}
	ctrl := docs.NewController(svc, "global", accept, nil)

	require.Error(t, ctrl.Refresh(context.Background()))
	_, loaded := ctrl.Docs()
	assert.False(t, loaded, "a failed refresh must not mark the list as loaded")
}

func TestUploadWithoutFileIsNoOp(t *testing.T) {
	svc := &stubService{}
	ctrl := docs.NewController(svc, "global", accept, nil)

	assert.Empty(t, ctrl.Upload(context.Background(), "", strings.NewReader("x")))
	assert.Empty(t, ctrl.Upload(context.Background(), "a.pdf", nil))
	assert.Empty(t, svc.uploads, "no request without a selected file")
}

func TestUploadSuccessNotifiesObservers(t *testing.T) {
	svc := &stubService{}
	ctrl := docs.NewController(svc, "global", accept, nil)

	notified := 0
	ctrl.Subscribe(func() { notified++ })

	status := ctrl.Upload(context.Background(), "manual.txt", strings.NewReader("hola"))
	assert.Equal(t, "Subido manual.txt (chunks indexados: 7)", status)
	assert.Equal(t, 1, notified, "views must be told to reload after an upload")
}

func TestUploadErrorBecomesStatus(t *testing.T) {
	svc := &stubService{uploadErr: errors.New("pdf inválido")}
	ctrl := docs.NewController(svc, "global", accept, nil)

	notified := 0
	ctrl.Subscribe(func() { notified++ })

	status := ctrl.Upload(context.Background(), "bad.pdf", strings.NewReader("x"))
	assert.Equal(t, "Error: pdf inválido", status)
	assert.Zero(t, notified, "failed uploads must not trigger a reload")
}

func TestDeleteDeclinedIssuesNoRequest(t *testing.T) {
	svc := &stubService{docs: []string{"a.pdf", "b.pdf"}}
	ctrl := docs.NewController(svc, "global", decline, nil)
	require.NoError(t, ctrl.Refresh(context.Background()))

	status := ctrl.Delete(context.Background(), "a.pdf")
	assert.Empty(t, status)
	assert.Empty(t, svc.deletes, "declined confirmation must not reach the backend")

	list, _ := ctrl.Docs()
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, list, "list must be unchanged")
}

func TestDeleteRemovesFromLocalList(t *testing.T) {
	svc := &stubService{docs: []string{"a.pdf", "b.pdf"}}
	ctrl := docs.NewController(svc, "global", accept, nil)
	require.NoError(t, ctrl.Refresh(context.Background()))

	status := ctrl.Delete(context.Background(), "a.pdf")
	assert.Equal(t, "Eliminado a.pdf", status)
	assert.Equal(t, []string{"a.pdf"}, svc.deletes)

	list, _ := ctrl.Docs()
	assert.Equal(t, []string{"b.pdf"}, list, "deleted document leaves the local list")
}

func TestDeleteAllClearsList(t *testing.T) {
	svc := &stubService{docs: []string{"a.pdf", "b.pdf"}}
	ctrl := docs.NewController(svc, "global", accept, nil)
	require.NoError(t, ctrl.Refresh(context.Background()))

	notified := 0
	ctrl.Subscribe(func() { notified++ })

	status := ctrl.DeleteAll(context.Background())
	assert.Equal(t, "Documentos eliminados.", status)
	assert.Equal(t, 1, svc.wipes)
	assert.Equal(t, 1, notified)

	list, loaded := ctrl.Docs()
	assert.True(t, loaded)
	assert.Empty(t, list)
}

func TestNilConfirmAutoApproves(t *testing.T) {
	svc := &stubService{docs: []string{"a.pdf"}}
	ctrl := docs.NewController(svc, "global", nil, nil)
	require.NoError(t, ctrl.Refresh(context.Background()))

	status := ctrl.Delete(context.Background(), "a.pdf")
	assert.Equal(t, "Eliminado a.pdf", status)
}
