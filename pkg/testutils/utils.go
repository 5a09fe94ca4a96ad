package testutils

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"runtime"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/pkg/models"
)

// TestGeminiAPIKey is shaped like a real Gemini key but is not one.
const TestGeminiAPIKey = "AIzaSyTEST0123456789abcdefghijklmnopq"

// NewTestConfig returns a config with the service defaults and no credentials. Images are
// served from the project's testdata.
func NewTestConfig() *config.Config {
	root, err := FindProjectRoot()
	if err != nil {
		panic(err)
	}

	return &config.Config{
		LLM: config.LLM{
			Service: "gemini",
		},
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
		Static: config.StaticConfig{
			IndexFile: filepath.Join(root, "front_page.html"),
			ImagesDir: filepath.Join(root, "testdata", "images"),
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

// NewTestAppState returns an AppState using llm, which may be nil to simulate a missing
// credential. A non-nil llm gets a well formed Gemini key in the config.
func NewTestAppState(llm models.LLM) *models.AppState {
	cfg := NewTestConfig()
	if llm != nil {
		cfg.LLM.GeminiAPIKey = TestGeminiAPIKey
	}
	return &models.AppState{
		LLMClient: llm,
		Config:    cfg,
	}
}

// NewMultipartBody builds a multipart/form-data body with a single file part. It returns the
// body and the request Content-Type.
func NewMultipartBody(
	field, filename, contentType string,
	content []byte,
) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set(
		"Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename),
	)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

// RandomAnimal returns a random animal name.
func RandomAnimal() string {
	return gofakeit.Animal()
}

// FindProjectRoot returns the absolute path to the project root directory.
func FindProjectRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("could not get current file path")
	}

	dir := filepath.Dir(currentFilePath)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		// If we've reached the top-level directory, the project root is not found.
		if dir == filepath.Dir(dir) {
			return "", fmt.Errorf("project root not found")
		}

		dir = filepath.Dir(dir)
	}
}
