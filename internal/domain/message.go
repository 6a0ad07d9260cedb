package domain

import "time"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// InterviewRecord is the index entry written after a transcript is saved.
type InterviewRecord struct {
	ID        string
	Path      string
	Summary   string
	Model     string
	Exchanges int
	SavedAt   time.Time
}
