package notes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daily-interviewer/internal/config"
	"daily-interviewer/internal/domain"
	"daily-interviewer/internal/observability"
)

const sectionSeparator = "\n\n---\n\n"

type source struct {
	label   string
	enabled bool
	folder  string
	format  string
}

// Assembler builds the interview context from the dated notes in a vault.
type Assembler struct {
	store domain.NoteStore
	cfg   config.Config
}

func NewAssembler(store domain.NoteStore, cfg config.Config) *Assembler {
	return &Assembler{
		store: store,
		cfg:   cfg,
	}
}

// Assemble returns the monthly, weekly and daily notes for now followed by
// the configured number of previous daily notes, each under its own
// heading. Missing or unreadable notes are skipped. An empty string means
// no context was found.
func (a *Assembler) Assemble(ctx context.Context, now time.Time) string {
	sources := []source{
		{label: "Monthly Note", enabled: a.cfg.ReadMonthlyNote, folder: a.cfg.MonthlyNoteFolder, format: a.cfg.MonthlyNoteFormat},
		{label: "Weekly Note", enabled: a.cfg.ReadWeeklyNote, folder: a.cfg.WeeklyNoteFolder, format: a.cfg.WeeklyNoteFormat},
		{label: "Daily Note", enabled: a.cfg.ReadDailyNote, folder: a.cfg.DailyNoteFolder, format: a.cfg.DailyNoteFormat},
	}

	parts := make([]string, 0, len(sources)+1)
	for _, src := range sources {
		if !src.enabled {
			continue
		}
		name := Format(now, src.format)
		content, ok := a.read(ctx, NotePath(src.folder, name))
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("## %s (%s)\n%s", src.label, name, content))
	}

	if previous := a.previousDailyNotes(ctx, now); previous != "" {
		parts = append(parts, previous)
	}

	return strings.Join(parts, sectionSeparator)
}

func (a *Assembler) previousDailyNotes(ctx context.Context, now time.Time) string {
	if a.cfg.PreviousDailyNotes <= 0 {
		return ""
	}

	entries := make([]string, 0, a.cfg.PreviousDailyNotes)
	for i := 1; i <= a.cfg.PreviousDailyNotes; i++ {
		day := now.AddDate(0, 0, -i)
		name := Format(day, a.cfg.DailyNoteFormat)
		content, ok := a.read(ctx, NotePath(a.cfg.DailyNoteFolder, name))
		if !ok {
			continue
		}
		entries = append(entries, fmt.Sprintf("### %s (%s)\n%s", LongDate(day), name, content))
	}

	if len(entries) == 0 {
		return ""
	}
	return "## Previous Daily Notes\n\n" + strings.Join(entries, sectionSeparator)
}

// read treats lookup and read failures the same as a missing note.
func (a *Assembler) read(ctx context.Context, path string) (string, bool) {
	log := observability.LoggerFromContext(ctx).With("path", path)

	ok, err := a.store.Exists(ctx, path)
	if err != nil {
		log.Warn("note lookup failed", "error", err)
		return "", false
	}
	if !ok {
		log.Debug("note not found")
		return "", false
	}

	content, err := a.store.Read(ctx, path)
	if err != nil {
		log.Warn("note read failed", "error", err)
		return "", false
	}
	if content == "" {
		return "", false
	}
	return content, true
}
