package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/foliogen/foliogen/internal/config"
	"github.com/foliogen/foliogen/internal/db"
	"github.com/foliogen/foliogen/internal/filestore"
	"github.com/foliogen/foliogen/internal/handler"
	"github.com/foliogen/foliogen/internal/job"
	"github.com/foliogen/foliogen/internal/middleware"
	"github.com/foliogen/foliogen/internal/repo"
	"github.com/foliogen/foliogen/internal/schedule"
	"github.com/foliogen/foliogen/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "foliogen",
		Short: "foliogen backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run foliogen server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("file_store", cfg.FileStore.Type),
	)

	database, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	if err := db.ApplyMigrations(database); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	store, err := filestore.New(cfg.FileStore)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	userRepo := repo.NewUserRepo(database)
	resumeRepo := repo.NewResumeRepo(database)
	portfolioRepo := repo.NewPortfolioRepo(database)

	maxUpload := cfg.Upload.MaxSizeMB * 1024 * 1024
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), time.Hour*time.Duration(cfg.JWTTTLHours))
	resumeService := service.NewResumeService(resumeRepo, store, maxUpload)
	portfolioService := service.NewPortfolioService(
		portfolioRepo,
		resumeRepo,
		cfg.PublicCache.Size,
		time.Duration(cfg.PublicCache.TTLSeconds)*time.Second,
	)

	deps := handler.RouterDeps{
		Auth:            handler.NewAuthHandler(authService),
		Resumes:         handler.NewResumeHandler(resumeService, maxUpload),
		Portfolios:      handler.NewPortfolioHandler(portfolioService),
		Public:          handler.NewPublicHandler(portfolioService),
		JWTSecret:       []byte(cfg.JWTSecret),
		UploadRateLimit: time.Duration(cfg.RateLimitMS) * time.Millisecond,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	cleanup := job.NewUploadCleanupJob(resumeRepo, store, time.Duration(cfg.Cleanup.RetentionHours)*time.Hour)
	if err := scheduler.AddJob(cleanup, cfg.Cleanup.Spec); err != nil {
		return fmt.Errorf("schedule cleanup: %w", err)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
