package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"daily-interviewer/internal/config"
	"daily-interviewer/internal/domain"
	"daily-interviewer/internal/observability"
	"daily-interviewer/internal/usecase/interview"
)

const (
	chunkSize = 2048
	queueSize = 16

	helpText = "I'll interview you about your day and save the conversation to your notes.\n\n" +
		"/new - start a new interview\n" +
		"/end - save the interview and add an Evening Reflection to today's note\n" +
		"/help - show this message"

	reminderText = "Time for your evening reflection. Send /new when you're ready."
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Session is the part of interview.Interviewer the bot drives.
type Session interface {
	State() interview.State
	Start(ctx context.Context) (string, error)
	Submit(ctx context.Context, text string) (string, error)
	End(ctx context.Context) (interview.Saved, error)
}

// Bot runs one interview session per chat. Messages from a chat are
// handled in arrival order, one at a time.
type Bot struct {
	api        *tgbotapi.BotAPI
	s          sender
	cfg        config.Config
	newSession func() Session

	mu       sync.Mutex
	sessions map[int64]Session
	queues   map[int64]chan *tgbotapi.Message
}

func NewBot(cfg config.Config, newSession func() Session) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}

	b := newBot(api, cfg, newSession)
	b.api = api
	return b, nil
}

func newBot(s sender, cfg config.Config, newSession func() Session) *Bot {
	return &Bot{
		s:          s,
		cfg:        cfg,
		newSession: newSession,
		sessions:   make(map[int64]Session),
		queues:     make(map[int64]chan *tgbotapi.Message),
	}
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	observability.Logger().Info("telegram bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return errors.New("telegram updates channel closed")
			}
			if update.Message == nil {
				continue
			}
			msg := update.Message
			if msg.From == nil || msg.Chat == nil {
				continue
			}
			b.dispatch(ctx, msg)
		}
	}
}

// Remind nudges every configured chat that has no interview under way.
func (b *Bot) Remind(ctx context.Context) {
	log := observability.LoggerFromContext(ctx)
	for _, chatID := range b.cfg.ReminderChatIDs {
		if b.session(chatID).State() != interview.StateIdle {
			log.Debug("reminder skipped, interview in progress", "chat_id", chatID)
			continue
		}
		b.sendText(chatID, 0, reminderText)
	}
}

// dispatch queues msg for its chat's worker, starting one if needed. A chat
// with a full queue is told to wait instead of blocking other chats.
func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.mu.Lock()
	q, ok := b.queues[chatID]
	if !ok {
		q = make(chan *tgbotapi.Message, queueSize)
		b.queues[chatID] = q
		go b.work(ctx, q)
	}
	b.mu.Unlock()

	select {
	case q <- msg:
	default:
		observability.Logger().Warn("chat queue full, message dropped", "chat_id", chatID)
		b.sendNotice(chatID, msg.MessageID, domain.ErrBusy)
	}
}

func (b *Bot) work(ctx context.Context, q <-chan *tgbotapi.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-q:
			b.handleMessage(ctx, msg)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	ctx = observability.WithSession(ctx, "chat:"+strconv.FormatInt(chatID, 10))
	log := observability.LoggerFromContext(ctx)

	if !isAllowedUser(msg.From.ID, b.cfg) {
		log.Warn("access denied", "user_id", msg.From.ID)
		b.sendText(chatID, msg.MessageID, "access denied")
		return
	}

	sess := b.session(chatID)

	switch msg.Command() {
	case "start", "new":
		b.sendChatAction(chatID)
		opening, err := sess.Start(ctx)
		if err != nil {
			b.sendNotice(chatID, msg.MessageID, err)
			return
		}
		b.sendText(chatID, 0, opening)
	case "end":
		b.sendChatAction(chatID)
		saved, err := sess.End(ctx)
		if err != nil {
			b.sendNotice(chatID, msg.MessageID, err)
			return
		}
		b.sendText(chatID, msg.MessageID, "Evening Reflection:\n\n"+saved.Summary+"\n\nSaved to "+saved.Path)
	case "help":
		b.sendText(chatID, msg.MessageID, helpText)
	case "":
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			return
		}
		b.sendChatAction(chatID)
		reply, err := sess.Submit(ctx, text)
		if errors.Is(err, domain.ErrBusy) {
			log.Debug("message dropped while awaiting reply")
			return
		}
		if err != nil {
			b.sendNotice(chatID, msg.MessageID, err)
			return
		}
		b.sendText(chatID, 0, reply)
	default:
		b.sendText(chatID, msg.MessageID, helpText)
	}
}

func (b *Bot) session(chatID int64) Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.sessions[chatID]
	if !ok {
		sess = b.newSession()
		b.sessions[chatID] = sess
	}
	return sess
}

func (b *Bot) sendNotice(chatID int64, replyTo int, err error) {
	b.sendText(chatID, replyTo, interview.Notice(err))
}

func (b *Bot) sendText(chatID int64, replyTo int, text string) {
	for idx, chunk := range splitText(text, chunkSize) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if idx == 0 && replyTo != 0 {
			msg.ReplyToMessageID = replyTo
		}
		if _, err := b.s.Send(msg); err != nil {
			observability.Logger().Error("failed to send reply", "chat_id", chatID, "error", err)
		}
	}
}

func (b *Bot) sendChatAction(chatID int64) {
	if _, err := b.s.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		observability.Logger().Warn("failed to send chat action", "chat_id", chatID, "error", err)
	}
}

func isAllowedUser(userID int64, cfg config.Config) bool {
	if len(cfg.AllowedUserIDs) == 0 {
		return true
	}

	for _, id := range cfg.AllowedUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}

func splitText(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/chunkSize+1)
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
