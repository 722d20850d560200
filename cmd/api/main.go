package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/hobfurniture/orderdesk-backend/api/routes"
	"github.com/hobfurniture/orderdesk-backend/internal/autosave"
	"github.com/hobfurniture/orderdesk-backend/internal/drafts"
	"github.com/hobfurniture/orderdesk-backend/internal/emails"
	"github.com/hobfurniture/orderdesk-backend/internal/export"
	"github.com/hobfurniture/orderdesk-backend/internal/snapshots"
	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/pkg/config"
	"github.com/hobfurniture/orderdesk-backend/pkg/db"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
	"github.com/hobfurniture/orderdesk-backend/pkg/metrics"
	"github.com/hobfurniture/orderdesk-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	var (
		repo    snapshots.Repository
		backend interface {
			Ping(context.Context) error
		}
		closeBackend func() error
	)
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		repo = snapshots.NewRedisRepository(redisClient)
		backend = redisClient
		closeBackend = redisClient.Close
	} else {
		dbClient, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap database", err)
			os.Exit(1)
		}
		repo = snapshots.NewGormRepository(dbClient.DB())
		backend = dbClient
		closeBackend = dbClient.Close
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logg.Error(ctx, "error closing snapshot backend", err)
		}
	}()

	store, err := snapshots.NewStore(repo, logg)
	if err != nil {
		logg.Error(ctx, "failed to create snapshot store", err)
		os.Exit(1)
	}

	// Load-on-start is synchronous: initial state (stored or defaults) is
	// complete before the server accepts traffic.
	engine, err := state.New(ctx, state.Params{Logger: logg, Store: store})
	if err != nil {
		logg.Error(ctx, "failed to initialize state engine", err)
		os.Exit(1)
	}

	autosaveMetrics := metrics.NewAutosaveMetrics(prometheus.DefaultRegisterer)
	scheduler, err := autosave.NewScheduler(autosave.Params{
		Logger:       logg,
		Metrics:      autosaveMetrics,
		Backend:      store.Backend(),
		Delay:        cfg.Autosave.Delay,
		WriteTimeout: cfg.Autosave.WriteTimeout,
		Write:        persistSnapshot(engine, store),
	})
	if err != nil {
		logg.Error(ctx, "failed to create autosave scheduler", err)
		os.Exit(1)
	}
	engine.SetAutosave(scheduler)

	draftService, err := drafts.NewService(cfg.Gemini, logg)
	if err != nil {
		logg.Error(ctx, "failed to create draft service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.Params{
		Config:   cfg,
		Logger:   logg,
		Engine:   engine,
		Autosave: scheduler,
		Thread:   emails.NewThread(emails.SeedMessages()),
		Drafts:   draftService,
		Renderer: export.NewRenderer(),
		Backend:  backend,
	})

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		startCtx := logg.WithFields(runCtx, map[string]any{
			"env":     cfg.App.Env,
			"addr":    addr,
			"backend": store.Backend(),
		})
		logg.Info(startCtx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(startCtx, "api server stopped unexpectedly", err)
			stop()
		}
	}()

	<-runCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(shutdownCtx, "error shutting down server", err)
	}

	// Flush the last edits, then cancel the debounce timer so nothing
	// writes after teardown.
	if err := scheduler.Flush(shutdownCtx); err != nil {
		logg.Error(shutdownCtx, "final snapshot flush failed", err)
	}
	scheduler.Close()
}

func persistSnapshot(engine *state.Engine, store *snapshots.Store) autosave.WriteFunc {
	return func(ctx context.Context) error {
		snapshot := engine.Snapshot()
		var err error
		err = multierr.Append(err, store.Save(ctx, snapshots.KeyCompanyInfo, snapshot.CompanyInfo))
		err = multierr.Append(err, store.Save(ctx, snapshots.KeyCustomer, snapshot.Customer))
		err = multierr.Append(err, store.Save(ctx, snapshots.KeyOrder, snapshot.Order))
		err = multierr.Append(err, store.Save(ctx, snapshots.KeyGallery, snapshot.Gallery))
		return err
	}
}
