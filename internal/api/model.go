package api

import "context"

// selectedModel is the wire shape of the global model selection.
type selectedModel struct {
	SelectedModel string `json:"selected_model"`
	OK            bool   `json:"ok,omitempty"`
	Err           string `json:"error,omitempty"`
}

// SelectedModel returns the backend's globally selected model. The
// endpoint degrades gracefully server-side: it may report a default model
// together with an error string, in which case the default is still used.
func (c *Client) SelectedModel(ctx context.Context) (string, error) {
	var out selectedModel
	if err := c.getJSON(ctx, "/selected_model", nil, &out); err != nil {
		return "", err
	}
	return out.SelectedModel, nil
}

// SetSelectedModel pushes a new global model selection.
func (c *Client) SetSelectedModel(ctx context.Context, model string) error {
	payload := map[string]string{"model": model}
	var out selectedModel
	return c.postJSON(ctx, "/selected_model", payload, &out)
}

// healthStatus is the wire shape of the health probe.
type healthStatus struct {
	Status string `json:"status"`
}

// Health checks that the backend is reachable and answering.
func (c *Client) Health(ctx context.Context) error {
	var out healthStatus
	return c.getJSON(ctx, "/health", nil, &out)
}
