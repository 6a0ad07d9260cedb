package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "anthropic/claude-opus-4.5"
	DefaultBaseURL = "https://openrouter.ai/api/v1"
)

// PopularModels is the shortlist offered by `interviewer models`.
var PopularModels = []string{
	"anthropic/claude-opus-4.5",
	"anthropic/claude-sonnet-4.5",
	"openai/gpt-5.1",
	"openai/gpt-4o",
	"google/gemini-2.5-pro-preview",
	"google/gemini-2.5-flash",
	"x-ai/grok-4",
	"deepseek/deepseek-chat",
	"anthropic/claude-sonnet-4",
	"meta-llama/llama-3.3-70b-instruct",
	"qwen/qwen-2.5-72b-instruct",
	"mistralai/mistral-large-2",
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Provider: ProviderOpenRouter,
		BaseURL:  DefaultBaseURL,
		Model:    DefaultModel,
		Referer:  "https://obsidian.md",
		Title:    "Obsidian Daily Interviewer",

		VaultPath: ".",
		IndexPath: filepath.Join(".interviewer", "index.db"),

		ReadMonthlyNote:   true,
		ReadWeeklyNote:    true,
		ReadDailyNote:     true,
		MonthlyNoteFormat: "YYYY-MM",
		WeeklyNoteFormat:  "YYYY-[W]WW",
		DailyNoteFormat:   "YYYY-MM-DD",

		InterviewFolder: "Interviews",

		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	c.APIKey = redact(c.APIKey)
	c.TelegramToken = redact(c.TelegramToken)
	c.YandexOAuthToken = redact(c.YandexOAuthToken)
	return c
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

// Render encodes cfg as YAML.
func Render(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string) error {
	body, err := Render(Default())
	if err != nil {
		return err
	}

	content := "# Daily interviewer configuration\n" +
		"# Environment variables (OPENROUTER_API_KEY, TELEGRAM_BOT_TOKEN, INTERVIEWER_*) override these values.\n\n" +
		string(body)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
