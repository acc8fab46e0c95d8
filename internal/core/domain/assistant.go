package domain

// Disclaimer is appended to every generated answer.
const Disclaimer = "⚠️ This is not medical advice."

// GenerationParams configures the external text-generation call.
type GenerationParams struct {
	MaxLength   int
	Temperature float64
}

// DefaultGenerationParams are the fixed settings used by the chat assistant.
var DefaultGenerationParams = GenerationParams{MaxLength: 200, Temperature: 0.7}
