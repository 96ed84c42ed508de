package dispatchapi

type DispatchRequest struct {
	TrustID       string            `json:"trust_id,omitempty"`
	TemplateID    string            `json:"template_id"`
	UserID        string            `json:"user_id"`
	MessageParams map[string]string `json:"message_params,omitempty"`
}

// DispatchResult espelha o body devolvido pela API, sucesso ou erro.
type DispatchResult struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	MessageID  string `json:"message_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
