package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"daily-interviewer/internal/observability"
	"daily-interviewer/internal/usecase/interview"
)

const (
	cmdEnd  = "/end"
	cmdNew  = "/new"
	cmdQuit = "/quit"
)

// Session is the part of interview.Interviewer the REPL drives.
type Session interface {
	Start(ctx context.Context) (string, error)
	Submit(ctx context.Context, text string) (string, error)
	End(ctx context.Context) (interview.Saved, error)
}

// REPL runs one interview over a line-oriented reader and writer.
type REPL struct {
	session Session
	in      *bufio.Scanner
	out     io.Writer
}

func New(session Session, in io.Reader, out io.Writer) *REPL {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &REPL{
		session: session,
		in:      sc,
		out:     out,
	}
}

// Run starts an interview and reads answers until it is saved, the user
// quits or input ends. Unsaved interviews are discarded.
func (r *REPL) Run(ctx context.Context) error {
	ctx = observability.WithSession(ctx, "terminal")
	log := observability.LoggerFromContext(ctx)

	r.printf("Daily interview. Type %s to save, %s to start over, %s to leave.\n\n", cmdEnd, cmdNew, cmdQuit)
	r.start(ctx)

	for {
		r.printf("You: ")
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			r.printf("\nInterview discarded.\n")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(r.in.Text())
		switch line {
		case "":
			continue
		case cmdQuit:
			r.printf("Interview discarded.\n")
			return nil
		case cmdNew:
			r.start(ctx)
		case cmdEnd:
			r.printf("Saving interview...\n")
			saved, err := r.session.End(ctx)
			if err != nil {
				log.Debug("save rejected", "error", err)
				r.notice(err)
				continue
			}
			r.printf("\nEvening Reflection:\n%s\n\nInterview saved to %s\n", saved.Summary, saved.Path)
			return nil
		default:
			reply, err := r.session.Submit(ctx, line)
			if err != nil {
				r.notice(err)
				continue
			}
			r.reply(reply)
		}
	}
}

func (r *REPL) start(ctx context.Context) {
	opening, err := r.session.Start(ctx)
	if err != nil {
		r.notice(err)
		return
	}
	r.reply(opening)
}

func (r *REPL) reply(text string) {
	r.printf("\nInterviewer: %s\n\n", text)
}

func (r *REPL) notice(err error) {
	r.printf("! %s\n", interview.Notice(err))
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
