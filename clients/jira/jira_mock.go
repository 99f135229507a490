package jira

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"specsbot/models"
)

// MockIssueTrackerClient is a mock implementation of clients.IssueTrackerClient
type MockIssueTrackerClient struct {
	mock.Mock
}

// NewMockIssueTrackerClient creates a new mock client for testing
func NewMockIssueTrackerClient() *MockIssueTrackerClient {
	return &MockIssueTrackerClient{}
}

// GetIssue mocks the issue lookup
func (m *MockIssueTrackerClient) GetIssue(
	ctx context.Context,
	issueKey string,
) (mo.Option[*models.IssueFields], error) {
	args := m.Called(ctx, issueKey)
	if args.Get(0) == nil {
		return mo.None[*models.IssueFields](), args.Error(1)
	}
	return args.Get(0).(mo.Option[*models.IssueFields]), args.Error(1)
}

// AddComment mocks the comment creation
func (m *MockIssueTrackerClient) AddComment(ctx context.Context, issueKey, body string) error {
	args := m.Called(ctx, issueKey, body)
	return args.Error(0)
}

// WithIssue configures the mock to return fields for any issue key
func (m *MockIssueTrackerClient) WithIssue(fields *models.IssueFields) *MockIssueTrackerClient {
	m.On("GetIssue", mock.Anything, mock.Anything).Return(mo.Some(fields), nil)
	return m
}

// WithIssueNotFound configures the mock to report every issue key as missing
func (m *MockIssueTrackerClient) WithIssueNotFound() *MockIssueTrackerClient {
	m.On("GetIssue", mock.Anything, mock.Anything).Return(mo.None[*models.IssueFields](), nil)
	return m
}

// WithCommentResult configures the mock outcome for AddComment
func (m *MockIssueTrackerClient) WithCommentResult(err error) *MockIssueTrackerClient {
	m.On("AddComment", mock.Anything, mock.Anything, mock.Anything).Return(err)
	return m
}

// CreateTestIssueFields creates sample issue fields for testing
func CreateTestIssueFields(key string) *models.IssueFields {
	return &models.IssueFields{
		Key:         key,
		Summary:     "Add export button to report page",
		Description: "Users need to export the quarterly report as CSV.",
		Status:      "To Do",
		Assignee:    "Sam Developer",
	}
}
