package apihandlers

import (
	"net/http"
	"time"

	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/llms"
	"github.com/getzep/animalfacts/pkg/models"
	"github.com/getzep/animalfacts/pkg/server/handlertools"
)

var log = internal.GetLogger()

const testTimestampLayout = "2006-01-02T15:04:05.000000"

// HealthHandler reports whether the LLM credential is present and well formed, and whether a
// client was created at startup. It never fails.
func HealthHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		handlertools.JSONOK(w, models.HealthResponse{
			Status:            "healthy",
			GeminiConfigured:  appState.Config.LLM.APIKey() != "",
			APIKeyFormatValid: llms.IsKeyFormatValid(appState.Config),
			ModelAvailable:    appState.LLMClient != nil,
		}, http.StatusOK)
	}
}

func TestHandler(_ *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		handlertools.JSONOK(w, models.TestResponse{
			Message:   "Server is working!",
			Timestamp: time.Now().Format(testTimestampLayout),
		}, http.StatusOK)
	}
}
