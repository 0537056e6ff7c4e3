package app

import (
	"os"
	"testing"

	coreconfig "github.com/James202017/real-estate-bots/core/config"
	"github.com/James202017/real-estate-bots/core/form"
	"github.com/James202017/real-estate-bots/core/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(&coreconfig.Config{}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testApp(t *testing.T) *App {
	t.Helper()
	def := &form.Definition{
		ID:      "test",
		Welcome: []string{"Привет!"},
		Done:    "Готово.",
		Header:  "Заявка:",
		Steps: []form.Step{
			{ID: "contact", Label: "Контакт", Prompt: "Контакт?", Validate: form.Required("Укажите контакт.")},
		},
	}
	store := form.NewStore()
	engine, err := form.NewEngine(def, store)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return &App{
		cfg:    &coreconfig.Config{},
		def:    def,
		engine: engine,
		store:  store,
	}
}

func TestTelegramRunOptionsRegistersCommands(t *testing.T) {
	a := testApp(t)

	rt, err := a.TelegramRunOptions()
	if err != nil {
		t.Fatalf("TelegramRunOptions: %v", err)
	}

	for _, name := range []string{"/start", "/cancel", "/leads"} {
		if _, _, ok := rt.Registry.LookupCommand(name); !ok {
			t.Errorf("command %s is not registered", name)
		}
	}

	_, leadsCmd, ok := rt.Registry.LookupCommand("/leads")
	if !ok {
		t.Fatal("/leads is not registered")
	}
	if !leadsCmd.AdminOnly || !leadsCmd.Hidden {
		t.Errorf("/leads must be admin-only and hidden, got AdminOnly=%v Hidden=%v",
			leadsCmd.AdminOnly, leadsCmd.Hidden)
	}
}

func TestLeadsCommandStaysOutOfMenu(t *testing.T) {
	a := testApp(t)

	rt, err := a.TelegramRunOptions()
	if err != nil {
		t.Fatalf("TelegramRunOptions: %v", err)
	}

	for _, cmd := range rt.Registry.ListCommands(true) {
		if cmd.Text == "/leads" {
			t.Error("/leads leaked into the visible command menu")
		}
	}
}
