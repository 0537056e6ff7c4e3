package app

import (
	"github.com/James202017/real-estate-bots/core/form"
	tghelpers "github.com/James202017/real-estate-bots/core/telegram/helpers"
	"github.com/James202017/real-estate-bots/core/telegram/keyboard"
	"github.com/James202017/real-estate-bots/internal/emitter"

	tele "gopkg.in/telebot.v4"
)

const (
	cancelledReply   = "Заявка отменена. Отправьте /start, чтобы начать заново."
	nothingToCancel  = "Сейчас нет активной заявки. Отправьте /start, чтобы начать."
	textOnlyReply    = "Пожалуйста, отвечайте текстовым сообщением."
	cancelButtonText = "❌ Отменить заявку"
)

// InProgress implements router.Conversation.
func (a *App) InProgress(userID int64) bool {
	return a.engine.InProgress(userID)
}

// HandleText implements router.Conversation. The back button arrives as
// plain text, so it is mapped to a back event here; everything else is an
// answer to the current step. Text from users without a session starts a
// fresh questionnaire and is not treated as an answer.
func (a *App) HandleText(c tele.Context) error {
	ev := form.Event{Kind: form.EventText, Text: c.Text()}
	if a.def.BackLabel != "" && c.Text() == a.def.BackLabel {
		ev = form.Event{Kind: form.EventBack}
	}
	return a.dispatch(c, ev, false)
}

func (a *App) handleStart(c tele.Context) error {
	return a.dispatch(c, form.Event{Kind: form.EventStart}, true)
}

func (a *App) handleCancelCommand(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if a.engine.Cancel(ctx, c.Sender().ID) {
		return tghelpers.SendText(c, cancelledReply, &tele.SendOptions{
			ReplyMarkup: keyboard.RemoveKeyboard(),
		})
	}
	return tghelpers.SendText(c, nothingToCancel)
}

func (a *App) handleCancelCallback(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if a.engine.Cancel(ctx, c.Sender().ID) {
		return tghelpers.SendText(c, cancelledReply, &tele.SendOptions{
			ReplyMarkup: keyboard.RemoveKeyboard(),
		})
	}
	return tghelpers.SendText(c, nothingToCancel)
}

func (a *App) handleUnexpectedDocument(c tele.Context) error {
	if !a.engine.InProgress(c.Sender().ID) {
		return nil
	}
	return tghelpers.SendText(c, textOnlyReply)
}

// dispatch feeds one event through the engine, delivers the resulting
// prompts, and forwards a finished record to the operator.
func (a *App) dispatch(c tele.Context, ev form.Event, fresh bool) error {
	ctx := tghelpers.BuildContext(c)
	act := a.engine.Handle(ctx, c.Sender().ID, ev)

	if act.Record != nil && a.emit != nil {
		a.emit.Emit(ctx, emitter.Source{
			FormID:   a.def.ID,
			UserID:   c.Sender().ID,
			Username: c.Sender().Username,
		}, act.Record)
	}

	return a.deliver(c, act, fresh)
}

// deliver sends the action's prompts in order. Steps with a reply keyboard
// get their buttons, bare prompts drop any previous keyboard, and on a fresh
// start the first welcome message carries an inline cancel button.
func (a *App) deliver(c tele.Context, act form.Action, fresh bool) error {
	for i, p := range act.Prompts {
		// Welcome texts carry HTML tags, so everything goes out as HTML.
		opts := &tele.SendOptions{ParseMode: tele.ModeHTML}
		switch {
		case fresh && i == 0 && len(act.Prompts) > 1 && len(p.Keyboard) == 0:
			opts.ReplyMarkup = keyboard.SingleCancelMarkup(cancelCallbackKey, "", cancelButtonText)
		case len(p.Keyboard) > 0:
			opts.ReplyMarkup = keyboard.ReplyButtons(p.Keyboard...)
		default:
			opts.ReplyMarkup = keyboard.RemoveKeyboard()
		}
		if err := tghelpers.SendText(c, p.Text, opts); err != nil {
			return err
		}
	}
	return nil
}
