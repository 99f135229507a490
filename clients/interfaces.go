package clients

import (
	"context"

	"github.com/samber/mo"

	"specsbot/models"
)

// GenerationClient defines the interface for the generative-language backend
type GenerationClient interface {
	// GenerateText sends prompt to the given model and returns the generated text
	GenerateText(ctx context.Context, model models.GenerationModel, prompt string) (string, error)
}

// IssueTrackerClient defines the interface for the issue tracker
type IssueTrackerClient interface {
	// GetIssue fetches the issue by key. Returns None when the issue does not exist.
	GetIssue(ctx context.Context, issueKey string) (mo.Option[*models.IssueFields], error)
	// AddComment appends body as a comment on the issue identified by issueKey
	AddComment(ctx context.Context, issueKey, body string) error
}
