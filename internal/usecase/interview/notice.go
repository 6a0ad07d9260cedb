package interview

import (
	"errors"

	"daily-interviewer/internal/domain"
)

// Notice turns an Interviewer error into a short message for the user.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrConfiguration):
		return "Please set your OpenRouter API key."
	case errors.Is(err, domain.ErrNothingToSave):
		return "No interview to save."
	case errors.Is(err, domain.ErrNotActive):
		return "No interview in progress. Start one first."
	case errors.Is(err, domain.ErrBusy):
		return "Still waiting for the interviewer."
	case errors.Is(err, domain.ErrEmptyMessage):
		return "Type an answer first."
	case errors.Is(err, domain.ErrNoteNotFound):
		return "Today's daily note does not exist yet. Create it and try again."
	case errors.Is(err, domain.ErrRequestFailure):
		return "Failed to get a response. Please try again."
	default:
		return "Something went wrong: " + err.Error()
	}
}
