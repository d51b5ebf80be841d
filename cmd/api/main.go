package main

import (
	"clipshare/internal/adapters/auth/jwt"
	rediscache "clipshare/internal/adapters/cache/redis"
	"clipshare/internal/adapters/eventbroker/nats"
	"clipshare/internal/adapters/handlers/http/chi"
	imagehandler "clipshare/internal/adapters/handlers/http/chi/api/image"
	videohandler "clipshare/internal/adapters/handlers/http/chi/api/video"
	"clipshare/internal/adapters/media/cloudinary"
	"clipshare/internal/adapters/repository/postgres"
	"clipshare/internal/config"
	"clipshare/internal/core/port"
	"clipshare/internal/core/service/image"
	"clipshare/internal/core/service/video"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := config.LoadDotEnv(); err != nil {
		logger.Error("failed to read .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//repositories
	var videoRepo port.VideoRepository = postgres.NewSqlVideoRepository(db)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, listing falls through to postgres", "addr", cfg.Redis.Addr, "error", err)
		}
		videoRepo = rediscache.NewVideoRepository(videoRepo, redisClient, cfg.Redis.ListTTL, logger)
		logger.Info("video list cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.ListTTL)
	}

	//media service
	gateway, err := cloudinary.NewAdapter(cfg.Media, logger)
	if err != nil {
		logger.Error("failed to init media service", "error", err)
		os.Exit(1)
	}
	if !gateway.Configured() {
		logger.Warn("media service credentials not found, uploads will fail")
	}

	//events
	var publisher port.EventPublisher
	if cfg.NATS.URL != "" {
		natsPublisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init NATS publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := natsPublisher.Close(); err != nil {
				logger.Error("failed to close NATS publisher", "error", err)
			}
		}()
		publisher = natsPublisher
	} else {
		publisher = nats.NewNoopPublisher(logger)
	}

	//sessions
	verifier, err := jwt.NewVerifier(cfg.Auth)
	if err != nil {
		logger.Error("failed to init session verifier", "error", err)
		os.Exit(1)
	}
	if !verifier.Enabled() {
		logger.Warn("no session key configured, every session is rejected")
	}

	videoService := video.NewVideoService(gateway, videoRepo, publisher, cfg.Upload, logger)
	imageService := image.NewImageService(gateway, cfg.Upload, logger)

	//http
	videoHandler := videohandler.NewVideoHandler(videoService, cfg.Upload.VideoMaxSize, logger)
	imageHandler := imagehandler.NewImageHandler(imageService, cfg.Upload.ImageMaxSize, logger)

	router := chi.NewRouter(logger, videoHandler, imageHandler, verifier, chi.RouterOptions{
		Env:            cfg.Env.Env,
		SessionCookie:  cfg.Auth.SessionCookie,
		StaticDir:      cfg.Server.StaticDir,
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
