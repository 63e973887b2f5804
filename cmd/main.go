package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	miniolib "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/noteshare/noteshare-server/internal/api/http/handler"
	"github.com/noteshare/noteshare-server/internal/api/http/middleware"
	"github.com/noteshare/noteshare-server/internal/api/http/router"
	"github.com/noteshare/noteshare-server/internal/config"
	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
	"github.com/noteshare/noteshare-server/internal/repository/postgres"
	"github.com/noteshare/noteshare-server/internal/service"
	"github.com/noteshare/noteshare-server/internal/storage/disk"
	storage "github.com/noteshare/noteshare-server/internal/storage/minio"
	"github.com/noteshare/noteshare-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	noteRepo := postgres.NewNoteRepository(db)

	tokenManager := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL)
	authService := service.NewAuth(userRepo, sessionRepo, tokenManager, cfg.Session.TTL, logger)
	noteService := service.NewNote(noteRepo, logger)

	fileStore, err := newFileStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize file storage", "error", err, "backend", cfg.Upload.Backend)
	}
	uploadService := service.NewUpload(noteRepo, fileStore, cfg.Upload.MaxSize, cfg.Upload.StoreTimeout, logger)

	seeder := service.NewSeeder(userRepo, []service.SeedAccount{
		{Username: cfg.Seed.AdminUsername, Password: cfg.Seed.AdminPassword, Role: model.RoleAdmin},
		{Username: cfg.Seed.StudentUsername, Password: cfg.Seed.StudentPassword, Role: model.RoleStudent},
	}, logger)
	// Seeding failures are tolerated; the server still starts.
	if err := seeder.Seed(ctx); err != nil {
		logger.Error("failed to seed default accounts", "error", err)
	}

	authHandler := handler.NewAuth(authService, handler.CookieConfig{
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Session.CookieSecure,
	}, logger)
	noteHandler := handler.NewNote(noteService, uploadService, logger)
	authMiddleware := middleware.NewAuthenticate(authService, handler.SessionCookieName, logger)

	gin.SetMode(gin.ReleaseMode)
	engine := router.New(authHandler, noteHandler, authMiddleware, logger).Register()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler: engine,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Addr)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newFileStore(ctx context.Context, cfg *config.Config) (model.FileStore, error) {
	switch cfg.Upload.Backend {
	case "disk":
		return disk.New(cfg.Upload.Dir)
	case "minio":
		minioClient, err := miniolib.New(cfg.Storage.Endpoint, &miniolib.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, publicURL(cfg))
	default:
		return nil, fmt.Errorf("unknown upload backend: %s", cfg.Upload.Backend)
	}
}

func publicURL(cfg *config.Config) string {
	if cfg.Storage.PublicURL != "" {
		return cfg.Storage.PublicURL
	}
	scheme := "http"
	if cfg.Storage.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, cfg.Storage.Endpoint)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
