package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/getzep/animalfacts/pkg/models"
)

var _ models.LLM = &MockLLM{}

// MockLLM - mock generation capability
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Call(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLM) Name() string {
	return "mock:test-model"
}
