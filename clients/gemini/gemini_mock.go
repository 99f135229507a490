package gemini

import (
	"context"

	"github.com/stretchr/testify/mock"

	"specsbot/models"
)

// MockGenerationClient is a mock implementation of clients.GenerationClient
type MockGenerationClient struct {
	mock.Mock
}

// NewMockGenerationClient creates a new mock client for testing
func NewMockGenerationClient() *MockGenerationClient {
	return &MockGenerationClient{}
}

// GenerateText mocks the text generation call
func (m *MockGenerationClient) GenerateText(
	ctx context.Context,
	model models.GenerationModel,
	prompt string,
) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

// WithGeneratedText configures the mock to return text for any prompt
func (m *MockGenerationClient) WithGeneratedText(text string) *MockGenerationClient {
	m.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(text, nil)
	return m
}

// WithGenerationError configures the mock to fail every generation call
func (m *MockGenerationClient) WithGenerationError(err error) *MockGenerationClient {
	m.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return("", err)
	return m
}
