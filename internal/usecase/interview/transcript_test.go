package interview

import (
	"strings"
	"testing"
	"time"

	"daily-interviewer/internal/domain"
)

func TestTranscriptName(t *testing.T) {
	ts := time.Date(2026, time.March, 4, 7, 5, 9, 0, time.Local)
	if got := TranscriptName(ts); got != "Interview_2026-03-04_070509" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestRenderTranscriptSkipsSystem(t *testing.T) {
	ts := time.Date(2026, time.March, 4, 19, 5, 0, 0, time.Local)
	out := RenderTranscript([]domain.Message{
		{Role: domain.RoleSystem, Content: "secret instructions"},
		{Role: domain.RoleAssistant, Content: "Hello"},
		{Role: domain.RoleUser, Content: "Hi"},
	}, ts)

	want := "# Daily Interview - March 4, 2026 7:05 PM\n\n**Interviewer:** Hello\n\n**You:** Hi\n\n"
	if out != want {
		t.Fatalf("unexpected transcript:\n%q", out)
	}
}

func TestRenderReflection(t *testing.T) {
	got := RenderReflection("A calm day.", "Interviews/Interview_2026-03-04_190500")
	want := "\n\n---\n\n## Evening Reflection\n\nA calm day.\n\n[[Interviews/Interview_2026-03-04_190500|Full Interview]]"
	if got != want {
		t.Fatalf("unexpected reflection %q", got)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 9, 15, 0, 0, time.Local)

	p := BuildSystemPrompt(ts, "", "## Daily Note (2026-10-19)\nship it")
	if !strings.Contains(p, "Current date: Monday, October 19, 2026 at 9:15 AM") {
		t.Fatalf("date line missing:\n%s", p)
	}
	if strings.Contains(p, "%DATE%") || strings.Contains(p, "Additional guidance") {
		t.Fatalf("unexpected placeholder or guidance:\n%s", p)
	}
	if !strings.HasSuffix(p, recapInstruction) {
		t.Fatalf("recap instruction should close the prompt")
	}
	if !strings.Contains(p, "---\n\nHere is context from their notes to inform your questions:\n\n## Daily Note (2026-10-19)\nship it\n\n---\n\n") {
		t.Fatalf("context block malformed:\n%s", p)
	}
}

func TestBuildSystemPromptKeepsCustomPromptAsWritten(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 9, 15, 0, 0, time.Local)

	p := BuildSystemPrompt(ts, "  Ask about sleep.\n- and water", "")
	if !strings.HasSuffix(p, "\n\nAdditional guidance:   Ask about sleep.\n- and water") {
		t.Fatalf("custom prompt altered:\n%q", p)
	}

	if blank := BuildSystemPrompt(ts, " \n\t", ""); strings.Contains(blank, "Additional guidance") {
		t.Fatalf("blank custom prompt should be omitted:\n%q", blank)
	}
}
