package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Travelintrips/HRD/internal/auth"
	"github.com/Travelintrips/HRD/internal/config"
	"github.com/Travelintrips/HRD/internal/db"
	"github.com/Travelintrips/HRD/internal/logger"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/policy"
	"github.com/Travelintrips/HRD/internal/realtime"
	"github.com/Travelintrips/HRD/internal/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Run DB seed and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	dbConn, err := db.Connect(cfg.Database.DSN())
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	if *migrateOnlyFlag {
		if err := db.Migrate(dbConn); err != nil {
			zlog.Fatal("migration failed", zap.Error(err))
		}
		zlog.Info("migrations completed")
		return
	}
	if *seedOnlyFlag {
		if err := db.Seed(dbConn); err != nil {
			zlog.Fatal("seeding failed", zap.Error(err))
		}
		zlog.Info("seeding completed")
		return
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(dbConn); err != nil {
			zlog.Fatal("migration failed", zap.Error(err))
		}
		zlog.Info("migrations completed")
	}
	if err := db.Seed(dbConn); err != nil {
		zlog.Fatal("seeding failed", zap.Error(err))
	}

	// Session tokens
	auth.SetSecret(cfg.Auth.JWTSecret)
	auth.SetTokenTTL(time.Duration(cfg.Auth.TokenTTLHours) * time.Hour)
	auth.SetUserVerifier(func(ctx context.Context, uid uint) bool {
		var count int64
		dbConn.WithContext(ctx).Model(&models.User{}).Where("id = ?", uid).Count(&count)
		return count > 0
	})

	// Redis is optional: without it the realtime feed only serves in-process
	// websocket subscribers.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zlog.Warn("redis unreachable, realtime publication disabled", zap.Error(err))
			rdb = nil
		}
	}

	hub := realtime.NewHub(zlog)
	go hub.Run()
	feed := realtime.NewFeed(hub, rdb, cfg.WebhookURL, zlog)

	store := storage.NewDocumentStore(cfg.Storage.Root, cfg.Storage.BaseURL)
	routerCfg := policy.NewRouterConfig(dbConn, store, feed, zlog)

	appHandler := NewApp(routerCfg, hub, store, zlog)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      withLogging(zlog, appHandler),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("error during shutdown", zap.Error(err))
	}
	zlog.Info("server stopped gracefully")
}

// withLogging adds request logging middleware.
func withLogging(zlog *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zlog.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
