package form

import (
	"context"
	"fmt"

	"github.com/James202017/real-estate-bots/core/logger"

	"log/slog"
)

// Engine advances sessions through a form definition one event at a time.
// It borrows the definition and owns nothing but the transition logic:
// sessions live in the store, delivery belongs to the caller.
type Engine struct {
	def   *Definition
	store *Store
}

// NewEngine validates the definition and binds it to a session store.
func NewEngine(def *Definition, store *Store) (*Engine, error) {
	if err := def.Check(); err != nil {
		return nil, fmt.Errorf("form engine: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("form engine: nil store")
	}
	return &Engine{def: def, store: store}, nil
}

// Definition exposes the bound form for adapters (back label, done text).
func (e *Engine) Definition() *Definition { return e.def }

// InProgress reports whether the session has an active conversation.
func (e *Engine) InProgress(id int64) bool {
	_, ok := e.store.Peek(id)
	return ok
}

// Handle applies one event to the session identified by id and returns the
// prompts to send, plus the finished record when the last step was answered.
// Any event for an unknown session other than Start acts as an implicit
// Start rather than an error. The transition runs under the per-session
// lock; no I/O happens inside it.
func (e *Engine) Handle(ctx context.Context, id int64, ev Event) Action {
	var act Action
	e.store.Transact(id, func(sess *Session) *Session {
		switch {
		case ev.Kind == EventStart, sess == nil:
			act = e.begin()
			return &Session{ID: id, Answers: make(Answers)}
		case ev.Kind == EventBack:
			return e.back(sess, &act)
		default:
			return e.input(sess, ev.Text, &act)
		}
	})
	e.log(ctx, id, ev, act)
	return act
}

// Cancel drops the session, if any, and reports whether one existed.
func (e *Engine) Cancel(ctx context.Context, id int64) bool {
	existed := false
	e.store.Transact(id, func(sess *Session) *Session {
		existed = sess != nil
		return nil
	})
	if existed {
		logger.Info(ctx, "form", "session.cancelled",
			slog.String("status", "ok"),
			slog.String("form_id", e.def.ID),
			slog.Int64("user_id", id),
		)
	}
	return existed
}

func (e *Engine) begin() Action {
	var act Action
	for _, w := range e.def.Welcome {
		act.Prompts = append(act.Prompts, Prompt{Text: w})
	}
	act.Prompts = append(act.Prompts, e.def.prompt(0, nil))
	return act
}

func (e *Engine) back(sess *Session, act *Action) *Session {
	if sess.Cursor == 0 {
		// Nothing before the first step; re-issue its prompt unchanged.
		act.Prompts = []Prompt{e.def.prompt(0, sess.Answers)}
		return sess
	}
	sess.Cursor--
	if e.def.BackNotice != "" {
		act.Prompts = append(act.Prompts, Prompt{Text: e.def.BackNotice})
	}
	act.Prompts = append(act.Prompts, e.def.prompt(sess.Cursor, sess.Answers))
	return sess
}

// input validates the text against the current step. Stale answers for later
// steps left behind by back-navigation are overwritten on the way forward
// and can never reach the record unrevisited, since steps are strictly
// sequential.
func (e *Engine) input(sess *Session, text string, act *Action) *Session {
	step := e.def.Steps[sess.Cursor]
	value, err := step.Validate(text)
	if err != nil {
		act.Invalid = true
		p := e.def.prompt(sess.Cursor, sess.Answers)
		p.Text = err.Error() + "\n\n" + p.Text
		act.Prompts = []Prompt{p}
		return sess
	}
	sess.Answers[step.ID] = value
	if sess.Cursor == len(e.def.Steps)-1 {
		act.Record = e.def.Record(sess.Answers)
		if e.def.Done != "" {
			act.Prompts = []Prompt{{Text: e.def.Done}}
		}
		return nil
	}
	sess.Cursor++
	act.Prompts = []Prompt{e.def.prompt(sess.Cursor, sess.Answers)}
	return sess
}

func (e *Engine) log(ctx context.Context, id int64, ev Event, act Action) {
	if act.Record != nil {
		logger.Info(ctx, "form", "form.completed",
			slog.String("status", "ok"),
			slog.String("form_id", e.def.ID),
			slog.Int64("user_id", id),
			slog.Int("fields", len(act.Record)),
		)
		return
	}
	attrs := []slog.Attr{
		slog.String("status", "ok"),
		slog.String("form_id", e.def.ID),
		slog.Int64("user_id", id),
	}
	if sess, ok := e.store.Peek(id); ok {
		attrs = append(attrs, slog.Int("cursor", sess.Cursor),
			slog.String("step", e.def.Steps[sess.Cursor].ID))
	}
	if act.Invalid {
		attrs = append(attrs, slog.Bool("rejected", true))
	}
	logger.Debug(ctx, "form", "fsm."+ev.Kind.String(), attrs...)
}
