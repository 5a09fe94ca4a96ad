package models

// FactRequest is the validated input of a facts lookup.
type FactRequest struct {
	AnimalName string `json:"animal_name" validate:"required"`
}

// FactResponse carries at most five facts, in extraction order.
type FactResponse struct {
	Animal string   `json:"animal"`
	Facts  []string `json:"facts"`
}

// AnimalImageResponse holds either the image URL or a not found message.
type AnimalImageResponse struct {
	ImageURL string `json:"image_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UploadInfo describes a received file. A part without a filename is a plain form value,
// not a file.
type UploadInfo struct {
	Filename string `json:"filename" validate:"required"`
	Size     string `json:"size"`
	Type     string `json:"type"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	GeminiConfigured  bool   `json:"gemini_configured"`
	APIKeyFormatValid bool   `json:"api_key_format_valid"`
	ModelAvailable    bool   `json:"model_available"`
}

type TestResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
