package models

// Slack response visibility. Ephemeral responses are shown only to the user
// who ran the command, in_channel responses are visible to the whole channel.
const (
	ResponseTypeEphemeral = "ephemeral"
	ResponseTypeInChannel = "in_channel"
)

// CommandRequest represents a verified slash command received from Slack
type CommandRequest struct {
	Command   string `json:"command"`    // The slash command name, e.g. "/create-specs"
	Text      string `json:"text"`       // Everything typed after the command name
	ChannelID string `json:"channel_id"` // Channel the command was issued in
	UserID    string `json:"user_id"`    // User who issued the command
}

// CommandResult represents the result of processing a command
type CommandResult struct {
	Success      bool   `json:"success"`
	ResponseType string `json:"response_type"`
	Message      string `json:"message"`
}

// SlashResponse is the JSON body returned to Slack. Slack expects HTTP 200
// even for user errors, so every outcome ends up in one of these.
type SlashResponse struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}
