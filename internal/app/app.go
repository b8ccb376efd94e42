package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/battery"
	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/difficulty"
	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/gamification"
	notebookrepo "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/notebook"
	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/question"
	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/sessionlog"
	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/subscription"
	"github.com/deviuno/ouse-passar-practice/internal/config"
	"github.com/deviuno/ouse-passar-practice/internal/service/notebook"
	"github.com/deviuno/ouse-passar-practice/internal/service/practice"
)

// App holds the wired object graph. Each UI surface (one per open
// practice screen) creates its own Engine via NewEngine; the shared
// services and repositories behind it are safe for concurrent use.
type App struct {
	Log       *slog.Logger
	Pool      *pgxpool.Pool
	Notebooks *notebook.Service

	cfg          *config.Config
	questions    *question.Repo
	ratings      *difficulty.Repo
	batteries    *battery.Service
	coefficients *gamification.Repo
	sessions     *sessionlog.Repo
	subscribers  *subscription.Repo
}

// Bootstrap loads configuration, connects to the database, and wires
// all services. The returned App must be closed with Close.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := NewLogger(cfg.Log)
	log.Info("starting practice engine",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &App{
		Log:          log,
		Pool:         pool,
		cfg:          cfg,
		questions:    question.New(pool),
		ratings:      difficulty.New(pool),
		batteries:    battery.New(log, pool, cfg.Battery),
		coefficients: gamification.New(pool),
		sessions:     sessionlog.New(pool),
		subscribers:  subscription.New(pool),
	}
	a.Notebooks = notebook.NewService(log, notebookrepo.New(pool), a.questions, postgres.NewTxManager(pool))

	return a, nil
}

// NewEngine creates a practice engine bound to the shared backends.
// One engine drives one screen; make a fresh one per session surface.
func (a *App) NewEngine() *practice.Engine {
	return practice.NewEngine(
		a.Log,
		a.questions,
		a.ratings,
		a.batteries,
		a.coefficients,
		a.sessions,
		a.subscribers,
		practice.Config{
			Practice: a.cfg.Practice,
			Battery:  a.cfg.Battery,
			Reward:   a.cfg.Reward,
		},
	)
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
