package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/database"
	"github.com/cardfolio/cardfolio/internal/handlers"
	"github.com/cardfolio/cardfolio/internal/notify"
	"github.com/cardfolio/cardfolio/internal/routes"
	"github.com/cardfolio/cardfolio/internal/scheduler"
)

func main() {
	cfg := config.Load()

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	// --- Database Connection ---
	db, err := database.Open(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connection pool established",
		zap.String("host", cfg.DB.Host),
		zap.String("database", cfg.DB.Name),
		zap.Int("pool_size", cfg.DB.PoolSize),
	)

	// --- Application Setup ---
	// All dependencies are injected into the Handlers struct.
	app := &handlers.Handlers{
		DB:        db,
		Notifier:  notify.NewLogNotifier(logger.Named("notify")),
		Logger:    logger.Named("handlers"),
		JWTSecret: cfg.Auth.JWTSecret,
	}

	// --- Background Worker ---
	// Periodic low-stock scan against the configured threshold.
	monitor := scheduler.New(db, cfg.Stock.CronSchedule, logger.Named("scheduler"))
	if err := monitor.Start(); err != nil {
		logger.Fatal("failed to start low-stock monitor", zap.Error(err))
	}
	defer monitor.Stop()

	// --- Router Setup ---
	router := routes.SetupRouter(app, logger.Named("http"))

	// --- Start Server ---
	logger.Info("CardFolio API listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newLogger builds a production zap logger with ISO8601 timestamps.
func newLogger() *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
