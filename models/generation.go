package models

// GenerationModel selects which Gemini variant handles a prompt
type GenerationModel string

const (
	ModelGeminiPro     GenerationModel = "gemini-pro"
	ModelGemini15Pro   GenerationModel = "gemini-1.5-pro"
	ModelGemini15Flash GenerationModel = "gemini-1.5-flash"

	// DefaultGenerationModel is used when the user does not name a model
	DefaultGenerationModel = ModelGeminiPro
)

// ParseGenerationModel reports whether token names a known model identifier
func ParseGenerationModel(token string) (GenerationModel, bool) {
	switch GenerationModel(token) {
	case ModelGeminiPro, ModelGemini15Pro, ModelGemini15Flash:
		return GenerationModel(token), true
	default:
		return "", false
	}
}

// GenerationRequest is one prompt bound to the model that should serve it
type GenerationRequest struct {
	Model  GenerationModel `json:"model"`
	Prompt string          `json:"prompt"`
}
