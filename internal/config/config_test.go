package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	if cfg.Model != DefaultModel {
		t.Errorf("expected model %q, got %q", DefaultModel, cfg.Model)
	}
	if !cfg.ReadMonthlyNote || !cfg.ReadWeeklyNote || !cfg.ReadDailyNote {
		t.Error("expected all note sources to be read by default")
	}
	if cfg.DailyNoteFormat != "YYYY-MM-DD" || cfg.WeeklyNoteFormat != "YYYY-[W]WW" || cfg.MonthlyNoteFormat != "YYYY-MM" {
		t.Errorf("unexpected formats: %q %q %q", cfg.DailyNoteFormat, cfg.WeeklyNoteFormat, cfg.MonthlyNoteFormat)
	}
	if cfg.PreviousDailyNotes != 0 {
		t.Errorf("expected 0 previous notes, got %d", cfg.PreviousDailyNotes)
	}
	if cfg.InterviewFolder != "Interviews" {
		t.Errorf("expected Interviews folder, got %q", cfg.InterviewFolder)
	}
	if cfg.HasCredentials() {
		t.Error("default config must not carry credentials")
	}
}

func TestLoadMissingFilesUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != DefaultModel || cfg.Provider != ProviderOpenRouter {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadLayersFileThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `model: file/model
read_weekly_note: false
daily_note_folder: "Journal/Daily/"
previous_daily_notes: 30
custom_prompt: from file
allowed_user_ids: [7, 9]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("INTERVIEWER_MODEL", "env/model")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Model != "env/model" {
		t.Errorf("expected env to win, got %q", cfg.Model)
	}
	if cfg.ReadWeeklyNote {
		t.Error("expected weekly note disabled by file")
	}
	if !cfg.ReadMonthlyNote {
		t.Error("expected monthly note to keep its default")
	}
	if cfg.DailyNoteFolder != "Journal/Daily" {
		t.Errorf("expected trimmed folder, got %q", cfg.DailyNoteFolder)
	}
	if cfg.PreviousDailyNotes != MaxPreviousDailyNotes {
		t.Errorf("expected clamp to %d, got %d", MaxPreviousDailyNotes, cfg.PreviousDailyNotes)
	}
	if cfg.CustomPrompt != "from file" {
		t.Errorf("unexpected custom prompt %q", cfg.CustomPrompt)
	}
	if len(cfg.AllowedUserIDs) != 2 || cfg.AllowedUserIDs[1] != 9 {
		t.Errorf("unexpected allowed ids %v", cfg.AllowedUserIDs)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	if err := os.WriteFile(dotenv, []byte("INTERVIEWER_FOLDER=Reflections\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("INTERVIEWER_FOLDER") })

	cfg, err := Load("", dotenv)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InterviewFolder != "Reflections" {
		t.Errorf("expected folder from .env, got %q", cfg.InterviewFolder)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	if cfg.Model != want.Model || cfg.WeeklyNoteFormat != want.WeeklyNoteFormat || cfg.InterviewFolder != want.InterviewFolder {
		t.Fatalf("round trip mismatch: %+v", cfg)
	}
}

func TestRedacted(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.APIKey = "sk-or-secret"
	cfg.TelegramToken = "123:abc"

	out, err := Render(cfg.Redacted())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(out), "sk-or-secret") || strings.Contains(string(out), "123:abc") {
		t.Fatalf("secrets leaked:\n%s", out)
	}
	if cfg.APIKey != "sk-or-secret" {
		t.Error("Redacted must not modify the receiver")
	}
}
