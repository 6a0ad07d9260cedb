package interview

import (
	"strings"
	"time"

	"daily-interviewer/internal/domain"
)

const (
	transcriptPrefix = "Interview_"
	timestampLayout  = "2006-01-02_150405"
	titleLayout      = "January 2, 2006 3:04 PM"
)

// TranscriptName is the note name, without extension, for a save at t.
func TranscriptName(t time.Time) string {
	return transcriptPrefix + t.Format(timestampLayout)
}

// RenderTranscript renders user and assistant turns as labelled
// paragraphs under a title line. System messages are never written.
func RenderTranscript(messages []domain.Message, t time.Time) string {
	var b strings.Builder
	b.WriteString("# Daily Interview - ")
	b.WriteString(t.Format(titleLayout))
	b.WriteString("\n\n")

	for _, m := range messages {
		switch m.Role {
		case domain.RoleUser:
			b.WriteString("**You:** ")
		case domain.RoleAssistant:
			b.WriteString("**Interviewer:** ")
		default:
			continue
		}
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}

// RenderReflection is the block appended to the daily note.
func RenderReflection(summary, link string) string {
	return "\n\n---\n\n## Evening Reflection\n\n" + summary + "\n\n[[" + link + "|Full Interview]]"
}
