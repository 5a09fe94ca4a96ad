package apihandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/getzep/animalfacts/pkg/extractors"
	"github.com/getzep/animalfacts/pkg/llms"
	"github.com/getzep/animalfacts/pkg/models"
	"github.com/getzep/animalfacts/pkg/server/handlertools"
	"github.com/getzep/animalfacts/pkg/testutils"
)

func newFactsRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/animal/{name}", GetAnimalImageHandler(appState))
	router.Get("/animal-facts/{name}", GetAnimalFactsHandler(appState))
	return router
}

func TestGetAnimalFactsHandler(t *testing.T) {
	for _, reply := range testutils.TestFactReplies {
		t.Run(reply.Name, func(t *testing.T) {
			mockLLM := new(testutils.MockLLM)
			mockLLM.On("Call", mock.Anything, mock.Anything).Return(reply.Reply, nil)
			router := newFactsRouter(testutils.NewTestAppState(mockLLM))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animal-facts/dog", nil))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

			var resp models.FactResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "dog", resp.Animal)
			assert.Equal(t, reply.Facts, resp.Facts)
			mockLLM.AssertExpectations(t)
		})
	}
}

func TestGetAnimalFactsHandler_EchoesName(t *testing.T) {
	animal := testutils.RandomAnimal()
	mockLLM := new(testutils.MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).Return(`["A fact."]`, nil)
	router := newFactsRouter(testutils.NewTestAppState(mockLLM))

	rr := httptest.NewRecorder()
	router.ServeHTTP(
		rr,
		httptest.NewRequest(http.MethodGet, "/animal-facts/"+url.PathEscape(animal), nil),
	)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.FactResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, animal, resp.Animal)
	assert.Equal(t, []string{"A fact."}, resp.Facts)
}

func TestGetAnimalFactsHandler_EmptyFactsIsNotNull(t *testing.T) {
	mockLLM := new(testutils.MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).Return("", nil)
	router := newFactsRouter(testutils.NewTestAppState(mockLLM))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animal-facts/cat", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"animal":"cat","facts":[]}`, rr.Body.String())
}

func TestGetAnimalFactsHandler_NotConfigured(t *testing.T) {
	router := newFactsRouter(testutils.NewTestAppState(nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animal-facts/dog", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var apiErr handlertools.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, NotConfiguredMessage, apiErr.Message)
}

func TestGetAnimalFactsHandler_UpstreamError(t *testing.T) {
	mockLLM := new(testutils.MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).
		Return("", llms.NewLLMError("generate content failed", errors.New("API key not valid")))
	router := newFactsRouter(testutils.NewTestAppState(mockLLM))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animal-facts/dog", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var apiErr handlertools.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, "Error generating facts: API key not valid", apiErr.Message)
	mockLLM.AssertNumberOfCalls(t, "Call", 1)
}

func TestGetAnimalImageHandler(t *testing.T) {
	router := newFactsRouter(testutils.NewTestAppState(nil))

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"known animal", "/animal/cat", `{"image_url":"/images/cat.jpg"}`},
		{"mixed case", "/animal/DOG", `{"image_url":"/images/dog.jpg"}`},
		{"elephant", "/animal/elephant", `{"image_url":"/images/elephant.jpg"}`},
		{"unknown animal", "/animal/zebra", `{"error":"Animal not found"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tc.expected, rr.Body.String())
		})
	}
}

func TestGetAnimalFactsHandler_UpstreamTransportError(t *testing.T) {
	transportErr := fmt.Errorf("doRequest: error sending request: %w", &url.Error{
		Op:  "Post",
		URL: "http://127.0.0.1:1/v1beta/models/gemini-2.5-flash:generateContent",
		Err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
	})
	mockLLM := new(testutils.MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).
		Return("", llms.NewLLMError("generate content failed", transportErr))
	router := newFactsRouter(testutils.NewTestAppState(mockLLM))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animal-facts/dog", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var apiErr handlertools.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(
		t,
		"Error generating facts: doRequest: error sending request: "+
			`Post "http://127.0.0.1:1/v1beta/models/gemini-2.5-flash:generateContent": `+
			"dial tcp 127.0.0.1:1: connect: connection refused",
		apiErr.Message,
	)
}

func TestUpstreamCause(t *testing.T) {
	root := errors.New("boom")
	wrapped := fmt.Errorf("sending request: %w", root)

	assert.Equal(t, wrapped, upstreamCause(llms.NewLLMError("call failed", wrapped)))
	assert.Equal(
		t,
		wrapped,
		upstreamCause(extractors.NewExtractorError(
			"llm call failed",
			llms.NewLLMError("call failed", wrapped),
		)),
	)
	assert.Equal(t, root, upstreamCause(extractors.NewExtractorError("llm call failed", root)))
	assert.Equal(t, root, upstreamCause(root))

	noCause := llms.NewLLMError("no candidates returned", nil)
	assert.Equal(t, "llm error: no candidates returned", upstreamCause(noCause).Error())
}
