package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"taskdesk/internal/application/task/usecases"
	"taskdesk/internal/infrastructure/config"
	"taskdesk/internal/infrastructure/notifier"
	"taskdesk/internal/infrastructure/sheets"
	httpRouter "taskdesk/internal/interfaces/http"
	taskhandlers "taskdesk/internal/interfaces/http/handlers/task"
	"taskdesk/internal/shared/biztime"
	"taskdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the taskdesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	biztime.MustInit(cfg.Business.Timezone)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := httpRouter.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	ctx := context.Background()
	sheetsService, err := sheets.NewService(ctx, cfg.Sheets)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}

	log := logger.NewLogger()
	clock := biztime.SystemClock()

	taskRepo := sheets.NewTaskRepository(
		sheetsService,
		cfg.Sheets.SpreadsheetID,
		cfg.Sheets.TaskSheetTitle,
		clock,
		log.Named("sheets"),
	)
	rosterRepo := sheets.NewRosterRepository(
		sheetsService,
		cfg.Sheets.SpreadsheetID,
		cfg.Sheets.RosterSheetTitle,
		clock,
		log.Named("roster"),
	)

	var chatNotifier usecases.Notifier
	if cfg.Notifier.WebhookURL != "" {
		chatNotifier = notifier.NewChatWebhook(cfg.Notifier.WebhookURL, cfg.Notifier.AppURL)
	} else {
		logger.Info("no webhook URL configured, chat notifications disabled")
		chatNotifier = notifier.NewNop()
	}

	taskHandler := taskhandlers.NewTaskHandler(
		usecases.NewCreateTaskUseCase(taskRepo, chatNotifier, clock, log),
		usecases.NewUpdateTaskUseCase(taskRepo, chatNotifier, clock, log),
		usecases.NewDeleteTaskUseCase(taskRepo, log),
		usecases.NewListTasksUseCase(taskRepo, clock, log),
		usecases.NewListAssigneesUseCase(rosterRepo, log),
	)

	router := httpRouter.NewRouter(taskHandler, log)
	router.SetupRoutes(cfg)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
