package emitter

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/James202017/real-estate-bots/core/form"
	"github.com/James202017/real-estate-bots/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

type fakeSender struct {
	mu   sync.Mutex
	to   []tele.Recipient
	text []string
}

func (f *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.to = append(f.to, to)
	if s, ok := what.(string); ok {
		f.text = append(f.text, s)
	}
	return &tele.Message{}, nil
}

func sampleRecord() form.Record {
	return form.Record{
		{Label: "🔸 Направление", Value: "Зарубежная недвижимость"},
		{Label: "🔸 Сумма", Value: "5 млн"},
		{Label: "🔸 Контакт", Value: "Иван <+7 999>"},
	}
}

func TestRenderSummary(t *testing.T) {
	e := New(&fakeSender{}, nil, 42, "📥 Новая заявка на инвестиции:", nil)

	got := e.Render(Source{FormID: "invest", UserID: 100, Username: "ivan"}, sampleRecord())

	want := "<b>📥 Новая заявка на инвестиции:</b>\n" +
		"🔸 Направление: Зарубежная недвижимость\n" +
		"🔸 Сумма: 5 млн\n" +
		"🔸 Контакт: Иван &lt;+7 999&gt;\n\n" +
		"👤 @ivan (id 100)"
	if got != want {
		t.Errorf("Render =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderEscapesHeaderOnce(t *testing.T) {
	e := New(&fakeSender{}, nil, 42, "Заявка <покупка & продажа>:", nil)

	got := e.Render(Source{FormID: "property", UserID: 1}, form.Record{{Label: "Тип", Value: "Дом"}})
	if !strings.HasPrefix(got, "<b>Заявка &lt;покупка &amp; продажа&gt;:</b>") {
		t.Errorf("header not escaped exactly once: %q", got)
	}
	if strings.Contains(got, "&amp;amp;") {
		t.Errorf("header double-escaped: %q", got)
	}
}

func TestRenderWithoutUsername(t *testing.T) {
	e := New(&fakeSender{}, nil, 42, "Новая заявка:", nil)

	got := e.Render(Source{FormID: "property", UserID: 7}, form.Record{{Label: "Тип", Value: "Дом"}})
	if strings.Contains(got, "@") {
		t.Errorf("username rendered for anonymous user: %q", got)
	}
	if !strings.Contains(got, "(id 7)") {
		t.Errorf("user id missing: %q", got)
	}
}

func TestEmitDeliversToOperatorChat(t *testing.T) {
	fake := &fakeSender{}
	d := sender.NewDispatcher(sender.Options{Workers: 1})
	e := New(fake, d, -100500, "📥 Новая заявка:", nil)

	e.Emit(context.Background(), Source{FormID: "invest", UserID: 1, Username: "u"}, sampleRecord())
	d.Close()

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.text) != 1 {
		t.Fatalf("sent %d messages, want 1", len(fake.text))
	}
	if fake.to[0].Recipient() != "-100500" {
		t.Errorf("recipient = %q, want operator chat", fake.to[0].Recipient())
	}
	if !strings.HasPrefix(fake.text[0], "<b>📥 Новая заявка:</b>") {
		t.Errorf("summary header missing: %q", fake.text[0])
	}
}
