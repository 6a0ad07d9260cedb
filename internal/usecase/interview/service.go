package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"daily-interviewer/internal/config"
	"daily-interviewer/internal/domain"
	"daily-interviewer/internal/observability"
	"daily-interviewer/internal/usecase/notes"
)

// Saved describes a completed interview.
type Saved struct {
	Path    string
	Summary string
}

// Interviewer drives one reflection interview at a time. It is safe for
// concurrent use, but only one chat-completion request runs at a time and
// calls made while one is in flight are rejected with domain.ErrBusy.
type Interviewer struct {
	cfg       config.Config
	client    Client
	store     domain.NoteStore
	index     domain.InterviewIndex
	assembler *notes.Assembler
	now       func() time.Time

	mu       sync.Mutex
	state    State
	messages []domain.Message
	noteCtx  string
}

// New returns an idle Interviewer. index may be nil.
func New(cfg config.Config, client Client, store domain.NoteStore, index domain.InterviewIndex) *Interviewer {
	return &Interviewer{
		cfg:       cfg,
		client:    client,
		store:     store,
		index:     index,
		assembler: notes.NewAssembler(store, cfg),
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (iv *Interviewer) WithClock(now func() time.Time) *Interviewer {
	iv.now = now
	return iv
}

func (iv *Interviewer) State() State {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.state
}

// Messages returns a copy of the transcript, system message included.
func (iv *Interviewer) Messages() []domain.Message {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return append([]domain.Message(nil), iv.messages...)
}

// Context returns the note context assembled when the session started.
func (iv *Interviewer) Context() string {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.noteCtx
}

// Start discards any unsaved session, assembles note context and asks the
// model for its opening remark. When that request fails the session is
// still started and the user may carry on by sending a message.
func (iv *Interviewer) Start(ctx context.Context) (string, error) {
	if !iv.cfg.HasCredentials() {
		return "", fmt.Errorf("%w: missing API key for provider %s", domain.ErrConfiguration, iv.cfg.Provider)
	}

	iv.mu.Lock()
	if iv.state.busy() {
		iv.mu.Unlock()
		return "", domain.ErrBusy
	}
	iv.messages = nil
	iv.noteCtx = ""
	iv.state = StateAwaiting
	iv.mu.Unlock()

	log := observability.LoggerFromContext(ctx)
	now := iv.now()

	noteContext := iv.assembler.Assemble(ctx, now)
	system := BuildSystemPrompt(now, iv.cfg.CustomPrompt, noteContext)

	iv.mu.Lock()
	iv.noteCtx = noteContext
	iv.messages = append(iv.messages, domain.Message{
		Role:      domain.RoleSystem,
		Content:   system,
		Timestamp: now,
	})
	iv.mu.Unlock()

	log.Info("interview started", "context_bytes", len(noteContext), "model", iv.cfg.Model)

	return iv.requestTurn(ctx)
}

// Submit appends the user's answer and returns the interviewer's reply.
func (iv *Interviewer) Submit(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)

	iv.mu.Lock()
	switch {
	case iv.state == StateIdle:
		iv.mu.Unlock()
		return "", domain.ErrNotActive
	case iv.state.busy():
		iv.mu.Unlock()
		return "", domain.ErrBusy
	case text == "":
		iv.mu.Unlock()
		return "", domain.ErrEmptyMessage
	}
	iv.messages = append(iv.messages, domain.Message{
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: iv.now(),
	})
	iv.state = StateAwaiting
	iv.mu.Unlock()

	return iv.requestTurn(ctx)
}

// requestTurn sends the whole transcript and appends the reply. The caller
// must have moved the session to StateAwaiting. A failed request leaves the
// transcript untouched.
func (iv *Interviewer) requestTurn(ctx context.Context) (string, error) {
	iv.mu.Lock()
	req := iv.request(iv.messages)
	iv.mu.Unlock()

	log := observability.LoggerFromContext(ctx).With("messages", len(req.Messages))
	start := time.Now()

	reply, err := iv.client.Complete(ctx, req)

	iv.mu.Lock()
	defer iv.mu.Unlock()
	iv.state = StateActive

	if err != nil {
		log.Error("chat completion failed", "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrRequestFailure, err)
	}

	iv.messages = append(iv.messages, domain.Message{
		Role:      domain.RoleAssistant,
		Content:   reply,
		Timestamp: iv.now(),
	})
	log.Debug("chat completion done", "elapsed_ms", time.Since(start).Milliseconds())

	return reply, nil
}

// End asks for a short summary, saves the transcript to the vault and
// appends an Evening Reflection to today's daily note. Any failure leaves
// the session active so the user can retry.
func (iv *Interviewer) End(ctx context.Context) (Saved, error) {
	iv.mu.Lock()
	if iv.state.busy() {
		iv.mu.Unlock()
		return Saved{}, domain.ErrBusy
	}
	if countTurns(iv.messages) < 2 {
		iv.mu.Unlock()
		return Saved{}, domain.ErrNothingToSave
	}
	transcript := append([]domain.Message(nil), iv.messages...)
	iv.state = StateSaving
	iv.mu.Unlock()

	log := observability.LoggerFromContext(ctx)

	saved, err := iv.save(ctx, transcript)
	if err != nil {
		iv.mu.Lock()
		iv.state = StateActive
		iv.mu.Unlock()
		log.Error("saving interview failed", "error", err)
		return Saved{}, err
	}

	iv.mu.Lock()
	iv.messages = nil
	iv.noteCtx = ""
	iv.state = StateIdle
	iv.mu.Unlock()

	log.Info("interview saved", "path", saved.Path)
	return saved, nil
}

// save checks the daily note before anything is requested or written, so
// a missing note fails with no side effects.
func (iv *Interviewer) save(ctx context.Context, transcript []domain.Message) (Saved, error) {
	now := iv.now()

	if err := iv.requireDailyNote(ctx, now); err != nil {
		return Saved{}, err
	}

	summaryReq := iv.request(transcript)
	summaryReq.Messages = append(summaryReq.Messages, Message{
		Role: domain.RoleUser,
		Text: summaryInstruction,
	})

	summary, err := iv.client.Complete(ctx, summaryReq)
	if err != nil {
		return Saved{}, fmt.Errorf("%w: summary: %w", domain.ErrRequestFailure, err)
	}

	path, err := iv.SaveTranscript(ctx, transcript, now)
	if err != nil {
		return Saved{}, err
	}

	link := strings.TrimSuffix(path, ".md")
	if err := iv.AppendReflection(ctx, summary, link, now); err != nil {
		return Saved{}, err
	}

	if iv.index != nil {
		rec := domain.InterviewRecord{
			ID:        uuid.New().String(),
			Path:      path,
			Summary:   summary,
			Model:     iv.cfg.Model,
			Exchanges: countRole(transcript, domain.RoleUser),
			SavedAt:   now,
		}
		if err := iv.index.Record(ctx, rec); err != nil {
			observability.LoggerFromContext(ctx).Warn("index record failed", "path", path, "error", err)
		}
	}

	return Saved{Path: path, Summary: summary}, nil
}

// SaveTranscript writes the transcript as a new note in the interview
// folder and returns its vault-relative path.
func (iv *Interviewer) SaveTranscript(ctx context.Context, messages []domain.Message, t time.Time) (string, error) {
	path := notes.NotePath(iv.cfg.InterviewFolder, TranscriptName(t))
	if err := iv.store.Create(ctx, path, RenderTranscript(messages, t)); err != nil {
		return "", fmt.Errorf("save transcript %s: %w", path, err)
	}
	return path, nil
}

// AppendReflection appends the summary and a link to the transcript to
// the daily note for t. It never creates the daily note.
func (iv *Interviewer) AppendReflection(ctx context.Context, summary, link string, t time.Time) error {
	path := notes.DailyNotePath(iv.cfg, t)

	if err := iv.requireDailyNote(ctx, t); err != nil {
		return err
	}

	current, err := iv.store.Read(ctx, path)
	if err != nil {
		return fmt.Errorf("read daily note %s: %w", path, err)
	}

	if err := iv.store.Modify(ctx, path, current+RenderReflection(summary, link)); err != nil {
		return fmt.Errorf("update daily note %s: %w", path, err)
	}
	return nil
}

func (iv *Interviewer) requireDailyNote(ctx context.Context, t time.Time) error {
	path := notes.DailyNotePath(iv.cfg, t)

	ok, err := iv.store.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("look up daily note %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("daily note %s: %w", path, domain.ErrNoteNotFound)
	}
	return nil
}

func (iv *Interviewer) request(messages []domain.Message) CompletionRequest {
	out := make([]Message, 0, len(messages)+1)
	for _, m := range messages {
		out = append(out, Message{
			Role: m.Role,
			Text: m.Content,
		})
	}
	return CompletionRequest{
		Model:    iv.cfg.Model,
		Messages: out,
	}
}

func countTurns(messages []domain.Message) int {
	n := 0
	for _, m := range messages {
		if m.Role != domain.RoleSystem {
			n++
		}
	}
	return n
}

func countRole(messages []domain.Message, role string) int {
	n := 0
	for _, m := range messages {
		if m.Role == role {
			n++
		}
	}
	return n
}
