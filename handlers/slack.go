package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/slack-go/slack"

	"specsbot/core"
	"specsbot/models"
	"specsbot/services"
)

// signatureFreshnessWindow bounds how old (or how far in the future) a
// request timestamp may be before it is treated as a replay
const signatureFreshnessWindow = 5 * time.Minute

type SlackCommandsHandler struct {
	signingSecret   string
	commandsService services.CommandsService
}

func NewSlackCommandsHandler(signingSecret string, commandsService services.CommandsService) *SlackCommandsHandler {
	return &SlackCommandsHandler{
		signingSecret:   signingSecret,
		commandsService: commandsService,
	}
}

// verifySlackSignature verifies the authenticity of a Slack webhook request.
// Pure over its inputs so the freshness check is testable with a fixed clock.
func verifySlackSignature(signingSecret, timestamp, signature string, body []byte, now time.Time) error {
	if timestamp == "" || signature == "" {
		return fmt.Errorf("%w: missing required headers", core.ErrInvalidSignature)
	}

	// Verify timestamp freshness, absolute difference so skewed-to-the-future
	// timestamps are rejected too
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid timestamp format", core.ErrStaleTimestamp)
	}

	age := now.Unix() - ts
	if age < 0 {
		age = -age
	}
	if age > int64(signatureFreshnessWindow/time.Second) {
		return fmt.Errorf("%w: request is %ds away from server time", core.ErrStaleTimestamp, age)
	}

	// Signature base string: v0:timestamp:body
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))

	mac := hmac.New(sha256.New, []byte(signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	// Constant-time comparison
	if !hmac.Equal([]byte(expectedSignature), []byte(signature)) {
		return fmt.Errorf("%w: digest mismatch", core.ErrInvalidSignature)
	}

	return nil
}

func (h *SlackCommandsHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	requestID := core.NewRequestID()
	log.Printf("⚡ [%s] Slash command received from %s", requestID, r.RemoteAddr)

	// Read raw body for signature verification
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ [%s] Failed to read request body: %v", requestID, err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	err = verifySlackSignature(
		h.signingSecret,
		r.Header.Get("X-Slack-Request-Timestamp"),
		r.Header.Get("X-Slack-Signature"),
		bodyBytes,
		time.Now(),
	)
	if err != nil {
		log.Printf("❌ [%s] Slack signature verification failed: %v", requestID, err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	log.Printf("✅ [%s] Slack signature verified successfully", requestID)

	r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	command, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Printf("❌ [%s] Failed to parse slash command: %v", requestID, err)
		http.Error(w, "failed to parse slash command", http.StatusBadRequest)
		return
	}

	log.Printf("⚡ [%s] Parsed slash command: %s from user %s in channel %s",
		requestID, command.Command, command.UserID, command.ChannelID)

	request := models.CommandRequest{
		Command:   command.Command,
		Text:      command.Text,
		ChannelID: command.ChannelID,
		UserID:    command.UserID,
	}

	result, err := h.commandsService.ProcessCommand(r.Context(), request)
	if err != nil {
		// Unexpected failure: the sender is authenticated, so Slack still gets
		// a 200 with a generic message. Internals stay in the log.
		log.Printf("❌ [%s] Failed to process command: %v", requestID, err)
		writeSlashResponse(w, requestID, models.SlashResponse{
			ResponseType: models.ResponseTypeEphemeral,
			Text:         "Sorry, something went wrong while processing your command. Please try again.",
		})
		return
	}

	log.Printf("✅ [%s] Command processed, success=%t", requestID, result.Success)
	writeSlashResponse(w, requestID, models.SlashResponse{
		ResponseType: result.ResponseType,
		Text:         result.Message,
	})
}

func (h *SlackCommandsHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
		log.Printf("❌ Failed to write health response: %v", err)
	}
}

func writeSlashResponse(w http.ResponseWriter, requestID string, response models.SlashResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ [%s] Failed to write slash response: %v", requestID, err)
	}
}

func (h *SlackCommandsHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack webhook endpoints")

	router.HandleFunc("/slack/command", h.HandleSlashCommand).Methods("POST")
	log.Printf("✅ POST /slack/command endpoint registered")

	router.HandleFunc("/health", h.HandleHealthCheck).Methods("GET")
	log.Printf("✅ GET /health endpoint registered")
}
