package keyboard

import "testing"

func TestSingleCancelMarkupDefaults(t *testing.T) {
	markup := SingleCancelMarkup("lead_cancel")

	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 1 {
		t.Fatalf("expected a single button, got %v", markup.InlineKeyboard)
	}
	btn := markup.InlineKeyboard[0][0]
	if btn.Text != defaultCancelButtonText {
		t.Errorf("button text = %q, want default %q", btn.Text, defaultCancelButtonText)
	}
	if btn.Unique != "lead_cancel" {
		t.Errorf("button unique = %q, want %q", btn.Unique, "lead_cancel")
	}
}

func TestSingleCancelMarkupLabelOverride(t *testing.T) {
	markup := SingleCancelMarkup("lead_cancel", "", "❌ Отменить заявку")

	btn := markup.InlineKeyboard[0][0]
	if btn.Text != "❌ Отменить заявку" {
		t.Errorf("button text = %q, want the custom label", btn.Text)
	}
	if btn.Unique != "lead_cancel" {
		t.Errorf("button unique = %q, want %q", btn.Unique, "lead_cancel")
	}
}

func TestReplyButtonsLayout(t *testing.T) {
	markup := ReplyButtons([]string{"Да", "Нет"}, []string{"🔙 Назад"})

	if !markup.ResizeKeyboard {
		t.Error("reply keyboard must be resizable")
	}
	if len(markup.ReplyKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(markup.ReplyKeyboard))
	}
	if markup.ReplyKeyboard[0][1].Text != "Нет" || markup.ReplyKeyboard[1][0].Text != "🔙 Назад" {
		t.Errorf("unexpected button layout: %v", markup.ReplyKeyboard)
	}
}
