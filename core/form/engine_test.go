package form

import (
	"context"
	"strings"
	"sync"
	"testing"
)

func testDefinition() *Definition {
	return &Definition{
		ID:         "invest",
		Welcome:    []string{"Добро пожаловать!"},
		BackLabel:  "🔙 Назад",
		BackNotice: "⬅️ Вернулись на предыдущий шаг. Введите данные снова:",
		Done:       "✅ Спасибо! Ваша заявка отправлена.",
		Header:     "📥 Новая заявка:",
		Steps: []Step{
			{
				ID:       "direction",
				Label:    "Направление",
				Prompt:   "Выберите направление инвестиций:",
				Keyboard: [][]string{{"Зарубежная недвижимость"}, {"Вклады под 29% годовых"}, {"🔙 Назад"}},
				Validate: OneOf("❗Пожалуйста, выберите вариант из списка.", "Зарубежная недвижимость", "Вклады под 29% годовых"),
			},
			{
				ID:       "amount",
				Label:    "Сумма",
				Prompt:   "💰 Укажите желаемую сумму инвестиций:",
				Validate: Required("❗Это поле обязательно. Укажите сумму."),
			},
			{
				ID:       "comment",
				Label:    "Комментарий",
				Prompt:   "📝 Есть ли дополнительные пожелания?",
				Validate: Optional(),
			},
			{
				ID:       "contact",
				Label:    "Контакт",
				Prompt:   "📞 Укажите ваше имя и номер телефона:",
				Validate: Required("❗Контактные данные обязательны."),
			},
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, *Store) {
	t.Helper()
	store := NewStore()
	eng, err := NewEngine(testDefinition(), store)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng, store
}

func TestStartSendsWelcomeAndFirstPrompt(t *testing.T) {
	eng, store := newTestEngine(t)
	act := eng.Handle(context.Background(), 1, Event{Kind: EventStart})

	if len(act.Prompts) != 2 {
		t.Fatalf("prompts = %d, want 2", len(act.Prompts))
	}
	if act.Prompts[0].Text != "Добро пожаловать!" {
		t.Errorf("welcome = %q", act.Prompts[0].Text)
	}
	if act.Prompts[1].Text != "Выберите направление инвестиций:" {
		t.Errorf("first prompt = %q", act.Prompts[1].Text)
	}
	if len(act.Prompts[1].Keyboard) != 3 {
		t.Errorf("first prompt keyboard rows = %d, want 3", len(act.Prompts[1].Keyboard))
	}
	if !eng.InProgress(1) {
		t.Error("session not created on start")
	}
	if store.Len() != 1 {
		t.Errorf("store.Len() = %d, want 1", store.Len())
	}
}

func TestHappyPathProducesOrderedRecord(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	eng.Handle(ctx, 7, Event{Kind: EventStart})

	inputs := []string{
		"Зарубежная недвижимость",
		"5 млн рублей",
		"Интересует Дубай",
	}
	for _, in := range inputs {
		act := eng.Handle(ctx, 7, Event{Kind: EventText, Text: in})
		if act.Invalid {
			t.Fatalf("input %q rejected", in)
		}
		if act.Record != nil {
			t.Fatalf("record produced before the last step")
		}
	}

	act := eng.Handle(ctx, 7, Event{Kind: EventText, Text: "Иван, +7 999 000-00-00"})
	if act.Record == nil {
		t.Fatal("no record after final answer")
	}
	want := Record{
		{Label: "Направление", Value: "Зарубежная недвижимость"},
		{Label: "Сумма", Value: "5 млн рублей"},
		{Label: "Комментарий", Value: "Интересует Дубай"},
		{Label: "Контакт", Value: "Иван, +7 999 000-00-00"},
	}
	if len(act.Record) != len(want) {
		t.Fatalf("record fields = %d, want %d", len(act.Record), len(want))
	}
	for i := range want {
		if act.Record[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, act.Record[i], want[i])
		}
	}
	if len(act.Prompts) != 1 || act.Prompts[0].Text != "✅ Спасибо! Ваша заявка отправлена." {
		t.Errorf("done prompt = %+v", act.Prompts)
	}
	if eng.InProgress(7) {
		t.Error("session survived completion")
	}
	if store.Len() != 0 {
		t.Errorf("store.Len() = %d after completion", store.Len())
	}
}

func TestInvalidInputKeepsCursor(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	eng.Handle(ctx, 2, Event{Kind: EventStart})

	act := eng.Handle(ctx, 2, Event{Kind: EventText, Text: "что-то своё"})
	if !act.Invalid {
		t.Fatal("free text accepted by choice step")
	}
	if len(act.Prompts) != 1 {
		t.Fatalf("prompts = %d, want 1 combined message", len(act.Prompts))
	}
	text := act.Prompts[0].Text
	if !strings.HasPrefix(text, "❗Пожалуйста, выберите вариант из списка.") {
		t.Errorf("notice missing: %q", text)
	}
	if !strings.Contains(text, "\n\n") || !strings.Contains(text, "Выберите направление инвестиций:") {
		t.Errorf("prompt not re-issued with notice: %q", text)
	}
	if len(act.Prompts[0].Keyboard) == 0 {
		t.Error("step keyboard dropped on rejection")
	}

	sess, ok := store.Peek(2)
	if !ok || sess.Cursor != 0 {
		t.Fatalf("cursor moved on invalid input: %+v", sess)
	}

	act = eng.Handle(ctx, 2, Event{Kind: EventText, Text: "Вклады под 29% годовых"})
	if act.Invalid {
		t.Fatal("valid choice rejected after retry")
	}
	sess, _ = store.Peek(2)
	if sess.Cursor != 1 {
		t.Errorf("cursor = %d after valid answer, want 1", sess.Cursor)
	}
}

func TestBackAtFirstStepReissuesPrompt(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	eng.Handle(ctx, 3, Event{Kind: EventStart})

	act := eng.Handle(ctx, 3, Event{Kind: EventBack})
	if len(act.Prompts) != 1 {
		t.Fatalf("prompts = %d, want 1", len(act.Prompts))
	}
	if act.Prompts[0].Text != "Выберите направление инвестиций:" {
		t.Errorf("prompt = %q", act.Prompts[0].Text)
	}
	sess, _ := store.Peek(3)
	if sess.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", sess.Cursor)
	}
}

func TestBackRewindsAndAnswerIsOverwritten(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	eng.Handle(ctx, 4, Event{Kind: EventStart})
	eng.Handle(ctx, 4, Event{Kind: EventText, Text: "Зарубежная недвижимость"})
	eng.Handle(ctx, 4, Event{Kind: EventText, Text: "1 млн"})

	act := eng.Handle(ctx, 4, Event{Kind: EventBack})
	if len(act.Prompts) != 2 {
		t.Fatalf("prompts = %d, want back notice + prompt", len(act.Prompts))
	}
	if act.Prompts[0].Text != "⬅️ Вернулись на предыдущий шаг. Введите данные снова:" {
		t.Errorf("back notice = %q", act.Prompts[0].Text)
	}
	if act.Prompts[1].Text != "💰 Укажите желаемую сумму инвестиций:" {
		t.Errorf("re-issued prompt = %q", act.Prompts[1].Text)
	}

	sess, _ := store.Peek(4)
	if sess.Cursor != 1 {
		t.Fatalf("cursor = %d after back, want 1", sess.Cursor)
	}
	// The previous answer stays until the step is answered again.
	if sess.Answers["amount"] != "1 млн" {
		t.Errorf("stale answer purged: %q", sess.Answers["amount"])
	}

	eng.Handle(ctx, 4, Event{Kind: EventText, Text: "2 млн"})
	eng.Handle(ctx, 4, Event{Kind: EventText, Text: "без комментариев"})
	act = eng.Handle(ctx, 4, Event{Kind: EventText, Text: "Пётр, +7 111"})
	if act.Record == nil {
		t.Fatal("no record")
	}
	if act.Record[1].Value != "2 млн" {
		t.Errorf("amount = %q, want the re-entered value", act.Record[1].Value)
	}
}

func TestTextWithoutSessionActsAsStart(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	act := eng.Handle(ctx, 5, Event{Kind: EventText, Text: "Зарубежная недвижимость"})
	if len(act.Prompts) != 2 {
		t.Fatalf("prompts = %d, want welcome + first prompt", len(act.Prompts))
	}
	sess, ok := store.Peek(5)
	if !ok {
		t.Fatal("session not created")
	}
	if sess.Cursor != 0 || len(sess.Answers) != 0 {
		t.Errorf("triggering text was consumed as an answer: %+v", sess)
	}
}

func TestStartRestartsMidSession(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	eng.Handle(ctx, 6, Event{Kind: EventStart})
	eng.Handle(ctx, 6, Event{Kind: EventText, Text: "Зарубежная недвижимость"})

	eng.Handle(ctx, 6, Event{Kind: EventStart})
	sess, _ := store.Peek(6)
	if sess.Cursor != 0 || len(sess.Answers) != 0 {
		t.Errorf("restart kept old progress: %+v", sess)
	}
}

func TestCancel(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	if eng.Cancel(ctx, 8) {
		t.Error("cancel reported an existing session for a fresh id")
	}
	eng.Handle(ctx, 8, Event{Kind: EventStart})
	if !eng.Cancel(ctx, 8) {
		t.Error("cancel missed the active session")
	}
	if eng.InProgress(8) {
		t.Error("session survived cancel")
	}
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	const users = 32
	var wg sync.WaitGroup
	wg.Add(users)
	for u := int64(1); u <= users; u++ {
		go func(id int64) {
			defer wg.Done()
			eng.Handle(ctx, id, Event{Kind: EventStart})
			eng.Handle(ctx, id, Event{Kind: EventText, Text: "Зарубежная недвижимость"})
			eng.Handle(ctx, id, Event{Kind: EventText, Text: "1 млн"})
			eng.Handle(ctx, id, Event{Kind: EventText, Text: "-"})
			act := eng.Handle(ctx, id, Event{Kind: EventText, Text: "контакт"})
			if act.Record == nil {
				t.Errorf("user %d: no record", id)
			}
		}(u)
	}
	wg.Wait()

	if store.Len() != 0 {
		t.Errorf("store.Len() = %d after all sessions completed", store.Len())
	}
}

func TestSameSessionEventsSerialized(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	eng.Handle(ctx, 9, Event{Kind: EventStart})

	var wg sync.WaitGroup
	const n = 16
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			eng.Handle(ctx, 9, Event{Kind: EventText, Text: "не вариант"})
		}()
	}
	wg.Wait()

	// The choice step rejects all of them; the cursor must not move.
	sess, ok := store.Peek(9)
	if !ok || sess.Cursor != 0 {
		t.Fatalf("session corrupted under concurrency: %+v ok=%v", sess, ok)
	}
}
