package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/timeplan/backend/api/handler"
	"github.com/timeplan/backend/internal/config"
	"github.com/timeplan/backend/internal/infrastructure/buffer"
	"github.com/timeplan/backend/internal/infrastructure/monitor"
	pgInfra "github.com/timeplan/backend/internal/infrastructure/postgres"
	redisInfra "github.com/timeplan/backend/internal/infrastructure/redis"
	"github.com/timeplan/backend/internal/middleware"
	"github.com/timeplan/backend/internal/router"
	"github.com/timeplan/backend/internal/services"
	"github.com/timeplan/backend/internal/services/lifecycle"
	"github.com/timeplan/backend/pkg/httpcontext"
	"github.com/timeplan/backend/pkg/logger"
	"github.com/timeplan/backend/planner"
	"github.com/timeplan/backend/repository/postgres"
	redisRepo "github.com/timeplan/backend/repository/redis"
	analyticsUC "github.com/timeplan/backend/usecase/analytics"
	authUC "github.com/timeplan/backend/usecase/auth"
	goalUC "github.com/timeplan/backend/usecase/goal"
	scheduleUC "github.com/timeplan/backend/usecase/schedule"
	settingsUC "github.com/timeplan/backend/usecase/settings"
	taskUC "github.com/timeplan/backend/usecase/task"
	tipsUC "github.com/timeplan/backend/usecase/tips"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		Service:  cfg.AppName,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(appCtx, cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "pending_ops")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Planner.SessionTTL)
	scheduleCache := redisRepo.NewScheduleCache(redisClient, cfg.Planner.ScheduleTTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		taskRepo,
		goalRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	if cfg.Reminder.Enabled {
		reminder, err := services.NewReminder(userRepo, taskRepo, goalRepo, cfg.Reminder.CronSpec, zapLogger)
		if err != nil {
			zapLogger.Fatal("reminder init failed", zap.Error(err))
		}
		reminder.Start()
		manager.Register("reminder", func(ctx context.Context) error {
			reminder.Stop(ctx)
			return nil
		})
	}

	authUseCase := authUC.New(userRepo, sessionRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, analyticsRepo, scheduleCache, bufferBridge, zapLogger)
	goalUseCase := goalUC.New(goalRepo, analyticsRepo, bufferBridge, zapLogger)
	scheduleUseCase := scheduleUC.New(taskRepo, settingsRepo, scheduleCache, zapLogger)
	settingsUseCase := settingsUC.New(settingsRepo, scheduleCache, zapLogger)
	analyticsUseCase := analyticsUC.New(analyticsRepo, taskRepo, zapLogger)
	tipsUseCase := tipsUC.New(taskRepo, planner.NewTipPicker(nil), zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.Planner.SessionTTL),
		Settings:  apiHandler.NewSettingsHandler(settingsUseCase, ctxAdapter, zapLogger),
		Task:      apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Schedule:  apiHandler.NewScheduleHandler(scheduleUseCase, ctxAdapter, zapLogger),
		Goal:      apiHandler.NewGoalHandler(goalUseCase, ctxAdapter, zapLogger),
		Analytics: apiHandler.NewAnalyticsHandler(analyticsUseCase, ctxAdapter, zapLogger),
		Tips:      apiHandler.NewTipsHandler(tipsUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
