package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"specsbot/clients/gemini"
	"specsbot/clients/jira"
	"specsbot/config"
	"specsbot/handlers"
	"specsbot/services/commands"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	generationClient := gemini.NewClient(cfg.GeminiConfig.APIKey, cfg.GeminiConfig.BaseURL)
	issueTrackerClient := jira.NewClient(cfg.JiraConfig.BaseURL, cfg.JiraConfig.Email, cfg.JiraConfig.APIToken)

	commandsService := commands.NewCommandsService(generationClient, issueTrackerClient)
	slackHandler := handlers.NewSlackCommandsHandler(cfg.SlackConfig.SigningSecret, commandsService)

	router := mux.NewRouter()
	slackHandler.SetupEndpoints(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("✅ Listening on http://localhost:%s/slack/command", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Printf("⚠️ Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}
}
