package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/getzep/animalfacts/pkg/extractors"
	"github.com/getzep/animalfacts/pkg/llms"
	"github.com/getzep/animalfacts/pkg/models"
	"github.com/getzep/animalfacts/pkg/server/handlertools"
	"github.com/getzep/animalfacts/pkg/web"
)

const (
	NotConfiguredMessage  = "Gemini API not configured. Please set GEMINI_API_KEY environment variable."
	AnimalNotFoundMessage = "Animal not found"
)

// GetAnimalFactsHandler returns up to five facts about the animal named in the path.
func GetAnimalFactsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := models.FactRequest{AnimalName: chi.URLParam(r, "name")}
		if err := handlertools.ValidateStruct(req); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		facts, err := extractors.GetAnimalFacts(r.Context(), appState, req.AnimalName)
		if err != nil {
			if errors.Is(err, llms.ErrLLMNotConfigured) {
				log.Warn("facts requested but no LLM is configured")
				handlertools.JSONError(w, NotConfiguredMessage, http.StatusInternalServerError)
				return
			}
			handlertools.JSONError(
				w,
				fmt.Sprintf("Error generating facts: %v", upstreamCause(err)),
				http.StatusInternalServerError,
			)
			return
		}

		handlertools.JSONOK(w, facts, http.StatusOK)
	}
}

// GetAnimalImageHandler returns the image URL of a known animal. Unknown animals are not an
// HTTP error: the body carries an error message instead.
func GetAnimalImageHandler(_ *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		url, ok := web.LookupAnimalImage(name)
		if !ok {
			handlertools.JSONOK(
				w,
				models.AnimalImageResponse{Error: AnimalNotFoundMessage},
				http.StatusOK,
			)
			return
		}

		handlertools.JSONOK(w, models.AnimalImageResponse{ImageURL: url}, http.StatusOK)
	}
}

// upstreamCause strips the LLMError and ExtractorError layers from err, leaving the error the
// LLM client reported with its text intact.
func upstreamCause(err error) error {
	var llmErr *llms.LLMError
	if errors.As(err, &llmErr) {
		if cause := llmErr.Unwrap(); cause != nil {
			return cause
		}
		return llmErr
	}

	var extractorErr *extractors.ExtractorError
	if errors.As(err, &extractorErr) {
		if cause := extractorErr.Unwrap(); cause != nil {
			return cause
		}
	}

	return err
}
