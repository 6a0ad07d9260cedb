package notes

import (
	"time"

	"github.com/nleeper/goment"

	"daily-interviewer/internal/config"
)

const (
	noteExt = ".md"

	longDateLayout = "Monday, January 2, 2006"
)

// Format renders t with a Moment.js-style pattern such as "YYYY-[W]WW".
func Format(t time.Time, pattern string) string {
	g, err := goment.New(t)
	if err != nil {
		return t.Format("2006-01-02")
	}
	return g.Format(pattern)
}

// NotePath joins folder and name into a vault-relative note path.
// An empty folder places the note at the vault root.
func NotePath(folder, name string) string {
	file := name + noteExt
	if folder == "" {
		return file
	}
	return folder + "/" + file
}

// DailyNotePath is the path of the daily note for t.
func DailyNotePath(cfg config.Config, t time.Time) string {
	return NotePath(cfg.DailyNoteFolder, Format(t, cfg.DailyNoteFormat))
}

// LongDate renders t as "Monday, October 19, 2026".
func LongDate(t time.Time) string {
	return t.Format(longDateLayout)
}
