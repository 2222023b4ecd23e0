package app

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/uptrace/bun"

	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/config"
	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/console"
	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/db"
	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/logger"
	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/student"
)

type App struct {
	config *config.Config
	db     *bun.DB
	ui     *console.UI
	logger *slog.Logger
}

func New() *App {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() in other packages matches
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	database := db.New(cfg.Database)

	ctx := context.Background()
	if err := db.CreateSchema(ctx, database); err != nil {
		log.Fatal("failed to create schema:", err)
	}

	studentRepo := student.NewRepository(database)
	studentService := student.NewService(studentRepo, slogLogger)
	ui := console.New(os.Stdin, os.Stdout, studentService)

	slogLogger.Info("application initialized successfully")

	return &App{
		config: cfg,
		db:     database,
		ui:     ui,
		logger: slogLogger,
	}
}

// Run blocks on the console loop until the user exits.
func (a *App) Run(ctx context.Context) error {
	return a.ui.Run(ctx)
}

func (a *App) Close() {
	db.Close(a.db)
	a.logger.Info("database connection closed")
}
