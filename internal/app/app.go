package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/cache"
	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
	"github.com/NastyaGoryachaya/slot-notifier/internal/infra/api_client"
	"github.com/NastyaGoryachaya/slot-notifier/internal/repository/memory"
	repopg "github.com/NastyaGoryachaya/slot-notifier/internal/repository/postgres"
	"github.com/NastyaGoryachaya/slot-notifier/internal/scheduler"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/detector"
	fetchsvc "github.com/NastyaGoryachaya/slot-notifier/internal/service/fetch"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/notify"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/poll"
	subsvc "github.com/NastyaGoryachaya/slot-notifier/internal/service/subscriber"
	botpkg "github.com/NastyaGoryachaya/slot-notifier/internal/transport/bot"
	"github.com/NastyaGoryachaya/slot-notifier/internal/transport/httptransport"
	"github.com/NastyaGoryachaya/slot-notifier/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db    *pgxpool.Pool
	redis *cache.LastSeenStore
	e     *echo.Echo
	serv  *http.Server

	subs  *subsvc.Service
	fetch fetchsvc.Service
	poll  *poll.Service

	updater   *scheduler.Scheduler
	schedDone chan struct{}

	bot *botpkg.Bot
}

func NewApp(ctx context.Context, cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	store, err := app.lastSeenStore(ctx)
	if err != nil {
		return nil, err
	}
	det := detector.New(store, detector.Options{ResetOnNoTerm: cfg.State.ResetOnNoTerm}, logger.Component(log, "detector"))

	provider := api_client.NewClient(cfg.Bookero)
	app.fetch = fetchsvc.NewService(provider, logger.Component(log, "fetch"))
	app.subs = subsvc.New(repopg.NewSubscriberRepository(db), logger.Component(log, "subscribers"))

	botApp, err := botpkg.New(cfg.Telegram, app.subs, app.fetch, logger.Component(log, "bot"))
	if err != nil {
		log.Error("telegram init failed", slog.String("error", err.Error()))
		return nil, err
	}
	app.bot = botApp

	notifier := notify.New(botApp.Sender(), cfg.Telegram.ReserveURL, logger.Component(log, "notify"))
	app.poll = poll.NewService(consts.Services, app.fetch, det, app.subs, notifier, logger.Component(log, "poll"))

	if cfg.Scheduler.Enabled {
		app.updater, err = scheduler.NewScheduler(app.poll, cfg.Scheduler, logger.Component(log, "scheduler"))
		if err != nil {
			return nil, err
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	app.e = e

	sh := httptransport.NewStatusHandler(log, det, cfg.Server.ReadTimeout)
	sh.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	log.Info("app initialized",
		slog.String("state_backend", cfg.State.Backend),
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
		slog.Int("services", len(consts.Services)),
	)
	return app, nil
}

// lastSeenStore - хранилище последней даты по настройке state.backend
func (a *App) lastSeenStore(ctx context.Context) (detector.Store, error) {
	switch a.cfg.State.Backend {
	case config.BackendMemory:
		return memory.NewLastSeenStore(), nil
	case config.BackendRedis:
		store, err := cache.NewLastSeenStore(ctx, a.cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis state store: %w", err)
		}
		a.redis = store
		return store, nil
	case config.BackendPostgres:
		return repopg.NewLastSeenRepository(a.db), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", a.cfg.State.Backend)
	}
}

func (a *App) Run(ctx context.Context) error {
	if a.updater != nil {
		a.log.Info("starting updater")
		a.schedDone = make(chan struct{})
		go func() {
			defer close(a.schedDone)
			a.updater.Start(ctx)
		}()
	}

	a.log.Info("starting bot")
	a.bot.Start(ctx)

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	// хранилища закрываются только после последнего цикла опроса
	a.waitScheduler(shCtx)

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return nil
}

func (a *App) waitScheduler(ctx context.Context) {
	if a.schedDone == nil {
		return
	}
	select {
	case <-a.schedDone:
	case <-ctx.Done():
		a.log.Warn("scheduler did not stop before shutdown timeout")
	}
}
