// Package picker tracks the active model and mirrors changes to the
// backend's global selection endpoint.
package picker

import (
	"context"
	"log/slog"
	"sync"
)

// Service is the slice of the backend client the picker depends on.
type Service interface {
	SelectedModel(ctx context.Context) (string, error)
	SetSelectedModel(ctx context.Context, model string) error
}

// ModelInfo describes a catalog entry for display.
type ModelInfo struct {
	ID          string
	Name        string
	Description string
}

// Catalog lists the models the backend is provisioned with.
var Catalog = []ModelInfo{
	{ID: "qwen2.5:1.5b", Name: "Qwen 2.5 1.5B", Description: "Modelo eficiente, ideal para tareas generales en español."},
	{ID: "phi3:3.8b", Name: "Phi-3 3.8B", Description: "Modelo pequeño, rápido y económico."},
	{ID: "qwen3:4b", Name: "Qwen 3 4B", Description: "Modelo intermedio, buen balance entre velocidad y calidad."},
	{ID: "qwen3:8b", Name: "Qwen 3 8B", Description: "Modelo robusto para respuestas más complejas."},
	{ID: "deepseek-r1:8b", Name: "DeepSeek R1 8B", Description: "Optimizado para comprensión y síntesis."},
	{ID: "deepseek-r1:14b", Name: "DeepSeek R1 14B", Description: "Gran capacidad, ideal para análisis avanzados."},
	{ID: "nomic-embed-text:latest", Name: "Nomic Embed", Description: "Especializado en embeddings y búsqueda semántica."},
	{ID: "mixtral:latest", Name: "Mixtral", Description: "Modelo mixto, versátil para múltiples tareas."},
	{ID: "gpt-oss:20b", Name: "GPT-OSS 20B", Description: "Modelo open source de gran tamaño."},
}

// CatalogIDs returns the model identifiers in catalog order.
func CatalogIDs() []string {
	ids := make([]string, len(Catalog))
	for i, m := range Catalog {
		ids[i] = m.ID
	}
	return ids
}

// Describe returns the catalog entry for a model id, or a bare entry for
// models outside the catalog.
func Describe(id string) ModelInfo {
	for _, m := range Catalog {
		if m.ID == id {
			return m
		}
	}
	return ModelInfo{ID: id, Name: id}
}

// State holds the active model identifier.
type State struct {
	svc    Service
	logger *slog.Logger

	mu     sync.Mutex
	models []string
	active string
}

// NewState creates a selection state over the given model list. An empty
// list falls back to the catalog.
func NewState(svc Service, modelList []string, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	if len(modelList) == 0 {
		modelList = CatalogIDs()
	}
	return &State{
		svc:    svc,
		logger: logger,
		models: modelList,
		active: modelList[0],
	}
}

// Init adopts the backend's global selection when it names a known model;
// otherwise the first available model stays active.
func (s *State) Init(ctx context.Context) {
	selected, err := s.svc.SelectedModel(ctx)
	if err != nil {
		s.logger.Warn("could not fetch global model selection", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.models {
		if m == selected {
			s.active = selected
			return
		}
	}
}

// Active returns the active model identifier.
func (s *State) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Models returns the available model identifiers.
func (s *State) Models() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.models))
	copy(out, s.models)
	return out
}

// Select activates a model locally and pushes the selection to the
// backend. The push is best-effort: a failure is logged and the local
// selection stands, matching the optimistic update the user already sees.
func (s *State) Select(ctx context.Context, model string) {
	s.mu.Lock()
	s.active = model
	s.mu.Unlock()

	if err := s.svc.SetSelectedModel(ctx, model); err != nil {
		s.logger.Warn("could not push model selection", "model", model, "error", err)
	}
}
