package router

import (
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestNormalizeHandlerName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/start", "start"},
		{"  /Leads  ", "leads"},
		{"some handler", "some_handler"},
		{"", "unknown"},
	}
	for _, tc := range cases {
		if got := normalizeHandlerName(tc.in); got != tc.want {
			t.Errorf("normalizeHandlerName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type codedError struct{}

func (codedError) Error() string { return "boom" }
func (codedError) Code() string  { return "lead archive down" }

func TestDeriveErrorCode(t *testing.T) {
	if got := deriveErrorCode(nil); got != "" {
		t.Errorf("nil error code = %q", got)
	}
	if got := deriveErrorCode(codedError{}); got != "LEAD_ARCHIVE_DOWN" {
		t.Errorf("coded error = %q", got)
	}
	if got := deriveErrorCode(errors.New("plain")); got != "ERRORSTRING" {
		t.Errorf("plain error = %q", got)
	}
}

func TestParseCallback(t *testing.T) {
	key, payload := parseCallback(&tele.Callback{Data: "\fleadcancel|extra"})
	if key != "leadcancel" || payload != "extra" {
		t.Errorf("parsed = %q %q", key, payload)
	}
	key, payload = parseCallback(&tele.Callback{Unique: "lead_cancel", Data: "x"})
	if key != "lead_cancel" || payload != "x" {
		t.Errorf("unique parsed = %q %q", key, payload)
	}
	if key, _ := parseCallback(nil); key != "" {
		t.Errorf("nil callback key = %q", key)
	}
}
