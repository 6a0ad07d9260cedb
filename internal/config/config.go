package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderYandex     = "yandex"

	MaxPreviousDailyNotes = 14
)

// Config is the flat settings record. Every field has a default in Default,
// so only APIKey has to be supplied by the user.
type Config struct {
	Provider         string `mapstructure:"provider" yaml:"provider" env:"INTERVIEWER_PROVIDER"`
	APIKey           string `mapstructure:"api_key" yaml:"api_key" env:"OPENROUTER_API_KEY"`
	BaseURL          string `mapstructure:"base_url" yaml:"base_url" env:"INTERVIEWER_BASE_URL"`
	Model            string `mapstructure:"model" yaml:"model" env:"INTERVIEWER_MODEL"`
	Referer          string `mapstructure:"referer" yaml:"referer" env:"INTERVIEWER_REFERER"`
	Title            string `mapstructure:"title" yaml:"title" env:"INTERVIEWER_TITLE"`
	YandexOAuthToken string `mapstructure:"yandex_oauth_token" yaml:"yandex_oauth_token" env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `mapstructure:"yandex_folder_id" yaml:"yandex_folder_id" env:"YANDEX_FOLDER_ID"`

	VaultPath string `mapstructure:"vault_path" yaml:"vault_path" env:"INTERVIEWER_VAULT"`
	IndexPath string `mapstructure:"index_path" yaml:"index_path" env:"INTERVIEWER_INDEX"`

	ReadMonthlyNote   bool   `mapstructure:"read_monthly_note" yaml:"read_monthly_note" env:"INTERVIEWER_READ_MONTHLY"`
	ReadWeeklyNote    bool   `mapstructure:"read_weekly_note" yaml:"read_weekly_note" env:"INTERVIEWER_READ_WEEKLY"`
	ReadDailyNote     bool   `mapstructure:"read_daily_note" yaml:"read_daily_note" env:"INTERVIEWER_READ_DAILY"`
	MonthlyNoteFolder string `mapstructure:"monthly_note_folder" yaml:"monthly_note_folder" env:"INTERVIEWER_MONTHLY_FOLDER"`
	WeeklyNoteFolder  string `mapstructure:"weekly_note_folder" yaml:"weekly_note_folder" env:"INTERVIEWER_WEEKLY_FOLDER"`
	DailyNoteFolder   string `mapstructure:"daily_note_folder" yaml:"daily_note_folder" env:"INTERVIEWER_DAILY_FOLDER"`
	MonthlyNoteFormat string `mapstructure:"monthly_note_format" yaml:"monthly_note_format" env:"INTERVIEWER_MONTHLY_FORMAT"`
	WeeklyNoteFormat  string `mapstructure:"weekly_note_format" yaml:"weekly_note_format" env:"INTERVIEWER_WEEKLY_FORMAT"`
	DailyNoteFormat   string `mapstructure:"daily_note_format" yaml:"daily_note_format" env:"INTERVIEWER_DAILY_FORMAT"`

	PreviousDailyNotes int    `mapstructure:"previous_daily_notes" yaml:"previous_daily_notes" env:"INTERVIEWER_PREVIOUS_DAILY_NOTES"`
	CustomPrompt       string `mapstructure:"custom_prompt" yaml:"custom_prompt" env:"INTERVIEWER_CUSTOM_PROMPT"`
	InterviewFolder    string `mapstructure:"interview_folder" yaml:"interview_folder" env:"INTERVIEWER_FOLDER"`

	TelegramToken    string  `mapstructure:"telegram_token" yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	AllowedUserIDs   []int64 `mapstructure:"allowed_user_ids" yaml:"allowed_user_ids" env:"INTERVIEWER_ALLOWED_USER_IDS" envSeparator:","`
	ReminderSchedule string  `mapstructure:"reminder_schedule" yaml:"reminder_schedule" env:"INTERVIEWER_REMINDER_SCHEDULE"`
	ReminderChatIDs  []int64 `mapstructure:"reminder_chat_ids" yaml:"reminder_chat_ids" env:"INTERVIEWER_REMINDER_CHAT_IDS" envSeparator:","`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level" env:"INTERVIEWER_LOG_LEVEL"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" env:"INTERVIEWER_LOG_FORMAT"`
}

// Load layers defaults, the YAML file at path, the dotenv file and the
// process environment, in that order. Missing files are not an error, and
// neither is a missing API key: that is reported when an interview starts.
func Load(path, dotenv string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read %s: %w", dotenv, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func (c *Config) normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderOpenRouter
	}
	if c.PreviousDailyNotes < 0 {
		c.PreviousDailyNotes = 0
	}
	if c.PreviousDailyNotes > MaxPreviousDailyNotes {
		c.PreviousDailyNotes = MaxPreviousDailyNotes
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.MonthlyNoteFolder = cleanFolder(c.MonthlyNoteFolder)
	c.WeeklyNoteFolder = cleanFolder(c.WeeklyNoteFolder)
	c.DailyNoteFolder = cleanFolder(c.DailyNoteFolder)
	c.InterviewFolder = cleanFolder(c.InterviewFolder)
}

func cleanFolder(folder string) string {
	return strings.Trim(strings.TrimSpace(folder), "/")
}

// HasCredentials reports whether the selected provider can be called.
func (c Config) HasCredentials() bool {
	if c.Provider == ProviderYandex {
		return c.YandexOAuthToken != "" && c.YandexFolderID != ""
	}
	return c.APIKey != ""
}
