package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/config"
	"github.com/Shruti-ops/fitness-diet-tracker/metrics"
	"github.com/Shruti-ops/fitness-diet-tracker/routes"
	"github.com/Shruti-ops/fitness-diet-tracker/services"
	"github.com/Shruti-ops/fitness-diet-tracker/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fitness-tracker:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer closeDB(db, log)

	store, closeStore, err := openSessionStore(ctx, cfg.Session, log)
	if err != nil {
		return err
	}
	defer closeStore()

	gin.SetMode(cfg.GinMode)
	sessions := session.NewManager(store, session.ManagerConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.CookieSecure,
	})
	r := routes.SetupRouter(routes.Deps{
		DB:           db,
		Sessions:     sessions,
		Hub:          services.NewRealtimeHub(log),
		Metrics:      metrics.New(),
		Log:          log,
		PublicDir:    cfg.PublicDir,
		QueryTimeout: cfg.DB.QueryTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr),
			zap.String("db_driver", cfg.DB.Driver), zap.String("session_store", cfg.Session.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openSessionStore builds the configured store. The returned func releases it.
func openSessionStore(ctx context.Context, cfg config.SessionConfig, log *zap.Logger) (session.Store, func(), error) {
	switch cfg.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		rs := session.NewRedisStore(client, cfg.Prefix)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rs.Ping(pingCtx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect session redis %s: %w", cfg.RedisAddr, err)
		}
		return rs, func() {
			if err := client.Close(); err != nil {
				log.Warn("close session redis", zap.Error(err))
			}
		}, nil
	default:
		ms := session.NewMemoryStore()
		go ms.RunSweeper(ctx, sweepInterval)
		return ms, func() {}, nil
	}
}

func closeDB(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("close database", zap.Error(err))
	}
}
