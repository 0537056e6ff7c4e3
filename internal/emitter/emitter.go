package emitter

import (
	"context"
	"strconv"
	"strings"

	"github.com/James202017/real-estate-bots/core/form"
	"github.com/James202017/real-estate-bots/core/logger"
	"github.com/James202017/real-estate-bots/core/telegram/format"
	"github.com/James202017/real-estate-bots/core/telegram/sender"
	"github.com/James202017/real-estate-bots/internal/leads"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Sender is the outbound Telegram surface the emitter needs.
// *tele.Bot satisfies it.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Source identifies who produced a finished questionnaire.
type Source struct {
	FormID   string
	UserID   int64
	Username string
}

// Emitter delivers finished questionnaires to the operator chat and,
// when an archive repository is configured, stores a copy.
type Emitter struct {
	bot        Sender
	dispatcher *sender.Dispatcher
	operator   tele.ChatID
	header     string
	repo       *leads.Repository
}

// New builds an emitter for one questionnaire.
// repo may be nil; delivery then only targets the operator chat.
func New(bot Sender, d *sender.Dispatcher, operatorChatID int64, header string, repo *leads.Repository) *Emitter {
	return &Emitter{
		bot:        bot,
		dispatcher: d,
		operator:   tele.ChatID(operatorChatID),
		header:     header,
		repo:       repo,
	}
}

// Emit forwards the record to the operator chat asynchronously and archives it.
// The user's flow is already finished at this point, so failures are logged
// rather than surfaced back to the chat.
func (e *Emitter) Emit(ctx context.Context, src Source, rec form.Record) {
	text := e.Render(src, rec)

	err := e.dispatcher.Enqueue(ctx, "lead.deliver", "sendMessage", func() error {
		_, sendErr := e.bot.Send(e.operator, text, tele.ModeHTML)
		return sendErr
	})
	if err != nil {
		logger.LEADS.Error("lead delivery enqueue failed",
			slog.String("event", "lead.deliver"),
			slog.String("form_id", src.FormID),
			slog.Int64("user_id", src.UserID),
			slog.String("err", err.Error()),
		)
	}

	if e.repo == nil {
		return
	}
	lead := &leads.Lead{
		FormID:   src.FormID,
		UserID:   src.UserID,
		Username: src.Username,
		Payload:  leads.Payload(rec),
	}
	if err := e.repo.Insert(ctx, lead); err != nil {
		logger.LEADS.Error("lead archive failed",
			slog.String("event", "lead.archive"),
			slog.String("form_id", src.FormID),
			slog.Int64("user_id", src.UserID),
			slog.String("err", err.Error()),
		)
	}
}

// Render builds the operator-facing HTML summary: a bold header, one
// "Label: value" line per answered step, and the submitter reference.
func (e *Emitter) Render(src Source, rec form.Record) string {
	var b strings.Builder
	b.WriteString(format.Bold(e.header))
	for _, f := range rec {
		b.WriteString("\n")
		b.WriteString(format.EscapeHTML(f.Label))
		b.WriteString(": ")
		b.WriteString(format.EscapeHTML(f.Value))
	}
	b.WriteString("\n\n")
	b.WriteString("👤 ")
	if src.Username != "" {
		b.WriteString("@" + format.EscapeHTML(src.Username) + " ")
	}
	b.WriteString("(id ")
	b.WriteString(strconv.FormatInt(src.UserID, 10))
	b.WriteString(")")
	return b.String()
}
