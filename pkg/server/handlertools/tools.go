package handlertools

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/models"
)

var log = internal.GetLogger()

var Validate = validator.New()

// APIError represents an error response body.
type APIError struct {
	Message string `json:"message"`
}

// ValidateStruct validates v against its validate tags. Failures are returned as
// *models.BadRequestError.
func ValidateStruct(v any) error {
	if err := Validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return models.NewBadRequestError(
				fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag()),
			)
		}
		return models.NewBadRequestError(err.Error())
	}
	return nil
}

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(w).Encode(data)
}

// JSONOK writes data as a JSON response with the given status code.
func JSONOK(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if err := EncodeJSON(w, data); err != nil {
		log.Errorf("error encoding response: %v", err)
	}
}

// JSONError writes an APIError carrying message with the given status code.
func JSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if err := EncodeJSON(w, APIError{Message: message}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// RenderError renders an error response, mapping known error kinds to their status code.
func RenderError(w http.ResponseWriter, err error, status int) {
	switch {
	case errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		log.Error(err)
	}

	JSONError(w, err.Error(), status)
}
