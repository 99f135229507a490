package commands

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	"specsbot/clients"
	"specsbot/models"
	"specsbot/utils"
)

const (
	askUsage         = "Please provide a prompt. Usage: `/ask [model] <prompt>`"
	createSpecsUsage = "Please provide a Jira issue key and optional prompt. Usage: `/create-specs PROJ-123 [prompt]`"
)

type commandHandler func(ctx context.Context, text string) (*models.CommandResult, error)

type CommandsService struct {
	generationClient   clients.GenerationClient
	issueTrackerClient clients.IssueTrackerClient
	dispatch           map[string]commandHandler
}

func NewCommandsService(
	generationClient clients.GenerationClient,
	issueTrackerClient clients.IssueTrackerClient,
) *CommandsService {
	s := &CommandsService{
		generationClient:   generationClient,
		issueTrackerClient: issueTrackerClient,
	}
	// Closed set of supported commands. Anything else is rejected without
	// touching an external client.
	s.dispatch = map[string]commandHandler{
		"/ask":          s.processAskCommand,
		"/create-specs": s.processCreateSpecsCommand,
	}
	return s
}

func (s *CommandsService) ProcessCommand(
	ctx context.Context,
	request models.CommandRequest,
) (*models.CommandResult, error) {
	log.Printf("📋 Starting to process command: %s from user: %s", request.Command, request.UserID)

	handler, ok := s.dispatch[request.Command]
	if !ok {
		log.Printf("⚠️ Unknown slash command: %s", request.Command)
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      fmt.Sprintf("Unknown command: %s", request.Command),
		}, nil
	}

	return handler(ctx, strings.TrimSpace(request.Text))
}

// processAskCommand handles `/ask [model] <prompt>`. The first token selects
// the model when it names a known identifier, otherwise the whole text is the
// prompt and the default model serves it.
func (s *CommandsService) processAskCommand(ctx context.Context, text string) (*models.CommandResult, error) {
	if text == "" {
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      askUsage,
		}, nil
	}

	generation := models.GenerationRequest{
		Model:  models.DefaultGenerationModel,
		Prompt: text,
	}
	token, rest := splitFirstToken(text)
	if model, ok := models.ParseGenerationModel(token); ok {
		generation.Model = model
		generation.Prompt = rest
	}

	if generation.Prompt == "" {
		// A bare model token is not a prompt
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      askUsage,
		}, nil
	}

	log.Printf("📋 Generating /ask response with model: %s", generation.Model)
	generated, err := s.generationClient.GenerateText(ctx, generation.Model, generation.Prompt)
	if err != nil {
		log.Printf("❌ Failed to generate /ask response: %v", err)
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      fmt.Sprintf("Text generation with %s failed. Please try again.", generation.Model),
		}, nil
	}

	log.Printf("📋 Completed successfully - generated %d characters with %s", len(generated), generation.Model)
	return &models.CommandResult{
		Success:      true,
		ResponseType: models.ResponseTypeEphemeral,
		Message:      utils.TruncateText(utils.ConvertMarkdownToSlack(generated), utils.SlackTextLimit),
	}, nil
}

// processCreateSpecsCommand handles `/create-specs <ISSUE-KEY> [prompt]`:
// fetch the issue, generate a specification document for it, then attach the
// document as a Jira comment.
func (s *CommandsService) processCreateSpecsCommand(ctx context.Context, text string) (*models.CommandResult, error) {
	if text == "" {
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      createSpecsUsage,
		}, nil
	}

	key, instruction := splitFirstToken(text)
	issueKey := strings.ToUpper(key)

	log.Printf("📋 Fetching Jira issue: %s", issueKey)
	maybeIssue, err := s.issueTrackerClient.GetIssue(ctx, issueKey)
	if err != nil {
		log.Printf("❌ Failed to fetch Jira issue %s: %v", issueKey, err)
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      fmt.Sprintf("Error retrieving Jira issue %s. Please check the issue key and try again.", issueKey),
		}, nil
	}
	if !maybeIssue.IsPresent() {
		log.Printf("⚠️ Jira issue not found: %s", issueKey)
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      fmt.Sprintf("Jira issue %s was not found.", issueKey),
		}, nil
	}
	issue := maybeIssue.MustGet()

	prompt := buildSpecPrompt(issue, instruction)

	log.Printf("📋 Generating specifications for issue: %s", issueKey)
	specs, err := s.generationClient.GenerateText(ctx, models.DefaultGenerationModel, prompt)
	if err != nil {
		log.Printf("❌ Failed to generate specifications for %s: %v", issueKey, err)
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      fmt.Sprintf("Error generating specifications for %s. Please try again.", issueKey),
		}, nil
	}

	if err := s.issueTrackerClient.AddComment(ctx, issueKey, specs); err != nil {
		log.Printf("❌ Failed to add Jira comment on %s: %v", issueKey, err)
		// The generated document must not be lost, hand it back to the user
		message := fmt.Sprintf(
			"Generated specifications for %s, but adding the Jira comment failed. Here is the generated text so it is not lost:\n\n%s",
			issueKey,
			utils.ConvertMarkdownToSlack(specs),
		)
		return &models.CommandResult{
			Success:      false,
			ResponseType: models.ResponseTypeEphemeral,
			Message:      utils.TruncateText(message, utils.SlackTextLimit),
		}, nil
	}

	log.Printf("📋 Completed successfully - specifications added to %s", issueKey)
	return &models.CommandResult{
		Success:      true,
		ResponseType: models.ResponseTypeInChannel,
		Message:      fmt.Sprintf("✅ Successfully added specifications to Jira issue %s", issueKey),
	}, nil
}

// splitFirstToken splits text at the first whitespace run. The second return
// value is the remainder with surrounding whitespace trimmed, or "" when the
// text is a single token.
func splitFirstToken(text string) (string, string) {
	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return text, ""
	}
	return text[:idx], strings.TrimSpace(text[idx:])
}
