package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/James202017/real-estate-bots/core/bootstrap"
	corecmd "github.com/James202017/real-estate-bots/core/cmd"
	coreconfig "github.com/James202017/real-estate-bots/core/config"
	coredatabase "github.com/James202017/real-estate-bots/core/database"
	"github.com/James202017/real-estate-bots/core/form"
	tg "github.com/James202017/real-estate-bots/core/telegram"
	"github.com/James202017/real-estate-bots/core/telegram/commands"
	"github.com/James202017/real-estate-bots/core/telegram/router"
	"github.com/James202017/real-estate-bots/internal/emitter"
	"github.com/James202017/real-estate-bots/internal/leads"
)

const cancelCallbackKey = "lead_cancel"

const (
	defaultIdleTTL       = 45 * time.Minute
	defaultSweepInterval = time.Minute
)

// Config adapts the shared core configuration to the runner contract.
type Config struct {
	core *coreconfig.Config
}

// CoreConfig implements cmd.ConfigCarrier.
func (c *Config) CoreConfig() *coreconfig.Config { return c.core }

// LoadConfig reads the YAML config for one bot.
func LoadConfig(path string) (corecmd.ConfigCarrier, error) {
	cfg, err := coreconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return &Config{core: cfg}, nil
}

// App wires one questionnaire bot: form engine, session store, operator
// emitter, and the optional lead archive.
type App struct {
	cfg    *coreconfig.Config
	def    *form.Definition
	engine *form.Engine
	store  *form.Store
	repo   *leads.Repository
	db     *sqlx.DB

	// emit is bound on start, once the bot connection exists.
	emit *emitter.Emitter
}

// Bootstrap initializes infrastructure and builds the application for one
// questionnaire definition.
func Bootstrap(carrier corecmd.ConfigCarrier, def *form.Definition) (*App, error) {
	cfg := carrier.CoreConfig()

	dbCfg, err := coredatabase.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("app: archive config: %w", err)
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg,
		Database: dbCfg,
	})
	if err != nil {
		return nil, err
	}

	store := form.NewStore()
	engine, err := form.NewEngine(def, store)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		def:    def,
		engine: engine,
		store:  store,
		db:     res.DB,
	}
	if res.DB != nil {
		a.repo = leads.NewRepository(res.DB)
	}
	return a, nil
}

// TelegramRunOptions implements cmd.TelegramApp.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Начать заявку заново",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancelCommand,
		Description: "Отменить текущую заявку",
	})
	reg.RegisterCommand("/leads", commands.Command{
		Handler:     a.handleLeads,
		Description: "Последние заявки из архива",
		AdminOnly:   true,
		Hidden:      true,
	})

	reg.SetTextFallback(a.HandleText)
	if err := reg.RegisterCallback(cancelCallbackKey, a.handleCancelCallback); err != nil {
		return tg.RunOptions{}, err
	}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Operator.ChatID,
	})
	routes = append(routes, router.TextRoutes(a, reg, router.TextOptions{
		UnknownDocument: a.handleUnexpectedDocument,
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart:     a.onStart,
		OnStop:      a.onStop,
	}, nil
}

func (a *App) onStart(ctx context.Context, rt tg.Runtime) error {
	a.emit = emitter.New(rt.Bot, rt.Dispatcher, a.cfg.Operator.ChatID, a.def.Header, a.repo)

	ttl := defaultIdleTTL
	if a.cfg.Session.IdleTTLMinutes > 0 {
		ttl = time.Duration(a.cfg.Session.IdleTTLMinutes) * time.Minute
	}
	every := defaultSweepInterval
	if a.cfg.Session.SweepSeconds > 0 {
		every = time.Duration(a.cfg.Session.SweepSeconds) * time.Second
	}
	a.store.StartJanitor(ctx, ttl, every)
	return nil
}

func (a *App) onStop(ctx context.Context, rt tg.Runtime) error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
