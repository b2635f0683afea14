package models

import "fmt"

// UploadResult summarizes a successful document upload. The two backend
// generations report different fields: the session endpoint returns the
// number of extracted characters (or indexed chunks), the client endpoint
// returns the stored name plus chunk count.
type UploadResult struct {
	Uploaded      string `json:"uploaded,omitempty"`
	ChunksIndexed int    `json:"chunks_indexed,omitempty"`
	Chars         int    `json:"chars,omitempty"`
	Chunks        int    `json:"chunks,omitempty"`
}

// Summary renders the short human-readable line shown after an upload.
func (r UploadResult) Summary() string {
	switch {
	case r.Uploaded != "":
		return fmt.Sprintf("Subido %s (chunks indexados: %d)", r.Uploaded, r.ChunksIndexed)
	case r.Chars > 0:
		return fmt.Sprintf("Subido (%d caracteres)", r.Chars)
	case r.Chunks > 0:
		return fmt.Sprintf("Subido (%d chunks)", r.Chunks)
	default:
		return "Subido"
	}
}
