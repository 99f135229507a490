package services

import (
	"context"

	"specsbot/models"
)

// CommandsService processes verified slash commands and produces the
// user-facing result for the webhook response
type CommandsService interface {
	ProcessCommand(ctx context.Context, request models.CommandRequest) (*models.CommandResult, error)
}
