package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nduythai/lunchbot/pkg/logging"
)

// Bot long-polls Telegram for group messages and feeds them through the
// handler. Only plain-text, non-command messages from groups and
// supergroups are processed.
type Bot struct {
	api         *tgbotapi.BotAPI
	handler     *Handler
	loc         *time.Location
	pollTimeout int
	logger      *logging.Logger
}

// New connects to Telegram and returns a bot bound to the handler.
// pollTimeout is the long-poll window in seconds.
func New(token string, pollTimeout int, loc *time.Location, handler *Handler, logger *logging.Logger) (*Bot, error) {
	if handler == nil {
		panic("bot: handler cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("bot: connect telegram: %w", err)
	}
	return &Bot{
		api:         api,
		handler:     handler,
		loc:         loc,
		pollTimeout: pollTimeout,
		logger:      logger,
	}, nil
}

// Run polls for updates until ctx is cancelled. It returns nil on a
// clean shutdown.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("telegram bot started", "username", b.api.Self.UserName, "poll_timeout", b.pollTimeout)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		b.process(ctx, update)
	}

	b.logger.Info("telegram bot stopped")
	return nil
}

func (b *Bot) process(ctx context.Context, update tgbotapi.Update) {
	m := update.Message
	if m == nil || m.Text == "" || m.From == nil || m.Chat == nil {
		return
	}
	if m.IsCommand() {
		return
	}
	if !m.Chat.IsGroup() && !m.Chat.IsSuperGroup() {
		return
	}

	reply, handled := b.handler.HandleMessage(ctx, Inbound{
		Text:       m.Text,
		SenderName: m.From.FirstName,
		SentAt:     m.Time().In(b.loc),
	})
	if !handled || reply == "" {
		return
	}

	out := tgbotapi.NewMessage(m.Chat.ID, reply)
	out.ReplyToMessageID = m.MessageID
	if _, err := b.api.Send(out); err != nil {
		b.logger.Error("failed to send reply", "error", err, "chat_id", m.Chat.ID)
	}
}
