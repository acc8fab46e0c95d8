package textgen

// GenerateRequest is the body posted to the inference endpoint.
type GenerateRequest struct {
	Model      string     `json:"model,omitempty"`
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

type Parameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
}

// GenerateResponse is the list of candidates the endpoint returns; only the
// first one is used.
type GenerateResponse []struct {
	GeneratedText string `json:"generated_text"`
}

type errorResponse struct {
	Error string `json:"error"`
}
