package commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	"specsbot/models"
)

// MockCommandsService is a mock implementation of services.CommandsService
type MockCommandsService struct {
	mock.Mock
}

// NewMockCommandsService creates a new mock service for testing
func NewMockCommandsService() *MockCommandsService {
	return &MockCommandsService{}
}

func (m *MockCommandsService) ProcessCommand(
	ctx context.Context,
	request models.CommandRequest,
) (*models.CommandResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommandResult), args.Error(1)
}

// WithResult configures the mock to return result for any command
func (m *MockCommandsService) WithResult(result *models.CommandResult) *MockCommandsService {
	m.On("ProcessCommand", mock.Anything, mock.Anything).Return(result, nil)
	return m
}

// WithError configures the mock to fail every command
func (m *MockCommandsService) WithError(err error) *MockCommandsService {
	m.On("ProcessCommand", mock.Anything, mock.Anything).Return(nil, err)
	return m
}
