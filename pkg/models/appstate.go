package models

import (
	"github.com/getzep/animalfacts/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance. It is read-only once the server starts.
type AppState struct {
	// LLMClient is nil when no credential is configured for the selected service.
	LLMClient LLM
	Config    *config.Config
}
