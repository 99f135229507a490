package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	SigningSecret string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.SigningSecret != ""
}

type JiraConfig struct {
	BaseURL  string
	Email    string
	APIToken string
}

// IsConfigured returns true if all required Jira configuration is present
func (c JiraConfig) IsConfigured() bool {
	return c.BaseURL != "" &&
		c.Email != "" &&
		c.APIToken != ""
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
}

// IsConfigured returns true if all required Gemini configuration is present
func (c GeminiConfig) IsConfigured() bool {
	return c.APIKey != ""
	// Note: BaseURL is optional, the client falls back to the public endpoint
}

type AppConfig struct {
	// Core configuration
	Port            string // Optional with default "3000"
	Environment     string
	UseStrictConfig bool // If true, error when any integration is not fully configured

	// Integration configurations (grouped)
	SlackConfig  SlackConfig
	JiraConfig   JiraConfig
	GeminiConfig GeminiConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	config := &AppConfig{
		// Core configuration
		Port:            getEnvWithDefault("PORT", "3000"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "dev"),
		UseStrictConfig: getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		SlackConfig: SlackConfig{
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},

		JiraConfig: JiraConfig{
			BaseURL:  os.Getenv("JIRA_URL"),
			Email:    os.Getenv("JIRA_EMAIL"),
			APIToken: os.Getenv("JIRA_API_TOKEN"),
		},

		GeminiConfig: GeminiConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
		},
	}

	// Log which integrations are configured
	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack integration configured")
	} else {
		log.Printf("⚠️ Slack integration not configured - webhook verification will reject every request")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("slack integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.JiraConfig.IsConfigured() {
		log.Printf("✅ Jira integration configured")
	} else {
		log.Printf("⚠️ Jira integration not configured - /create-specs will not be able to read or comment on issues")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("jira integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.GeminiConfig.IsConfigured() {
		log.Printf("✅ Gemini integration configured")
	} else {
		log.Printf("⚠️ Gemini integration not configured - generation commands will fail")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("gemini integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	return config, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
