package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mfigueira/counseldesk/api/routes"
	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/advice"
	"github.com/mfigueira/counseldesk/internal/analytics"
	"github.com/mfigueira/counseldesk/internal/auth"
	"github.com/mfigueira/counseldesk/internal/faq"
	"github.com/mfigueira/counseldesk/internal/licenses"
	"github.com/mfigueira/counseldesk/internal/users"
	"github.com/mfigueira/counseldesk/pkg/config"
	"github.com/mfigueira/counseldesk/pkg/logger"
	redisclient "github.com/mfigueira/counseldesk/pkg/redis"
	"github.com/mfigueira/counseldesk/pkg/snapshot"
	"github.com/mfigueira/counseldesk/pkg/store"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "kiosk"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "kiosk",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	storeClient, err := store.Open(context.Background(), cfg.Store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open embedded store", err)
		os.Exit(1)
	}
	defer func() {
		if err := storeClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing store", err)
		}
	}()

	var snap snapshot.Store
	switch cfg.Snapshot.Backend {
	case config.SnapshotBackendRedis:
		redisClient, err := redisclient.New(context.Background(), cfg.Redis, cfg.Snapshot, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		snap = redisclient.NewSnapshot(redisClient, cfg.Snapshot.Scope)
	default:
		snap = snapshot.NewMemory()
	}

	authManager, err := auth.NewManager(auth.ManagerParams{
		Store:    storeClient,
		Snapshot: snap,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth manager", err)
		os.Exit(1)
	}

	// A prior session in a persistent snapshot backend is picked up before
	// the first request.
	if authManager.RestoreSession(context.Background()) {
		logg.Info(context.Background(), "session restored from snapshot")
	}

	activityRepo := activity.NewRepository(storeClient.DB())
	analyticsRepo := analytics.NewRepository(storeClient.DB())
	recorder := activity.NewRecorder(activityRepo, analyticsRepo, logg)

	analyticsService, err := analytics.NewService(storeClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": cfg.App.Addr,
	})
	logg.Info(ctx, "starting kiosk server")

	server := &http.Server{
		Addr: cfg.App.Addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:    cfg,
			Logger:    logg,
			Store:     storeClient,
			Auth:      authManager,
			Recorder:  recorder,
			Advice:    advice.NewService(),
			Licenses:  licenses.NewService(),
			FAQ:       faq.NewService(),
			Analytics: analyticsService,
			Users:     users.NewRepository(storeClient.DB()),
			Activity:  activityRepo,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "kiosk server stopped unexpectedly", err)
		os.Exit(1)
	}
}
