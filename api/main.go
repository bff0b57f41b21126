package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nupl21/dieta-app/internal/auth"
	"github.com/nupl21/dieta-app/internal/config"
	"github.com/nupl21/dieta-app/internal/db"
	"github.com/nupl21/dieta-app/internal/http/handlers"
	rl "github.com/nupl21/dieta-app/internal/http/rate_limiter"
	"github.com/nupl21/dieta-app/internal/http/router"
	"github.com/nupl21/dieta-app/internal/logger"
	"github.com/nupl21/dieta-app/internal/redissvc"
	"github.com/nupl21/dieta-app/internal/repo"
	"go.uber.org/zap"
)

// @title Dieta App API
// @version 1.0
// @description Household grocery planner: weekly menu, product catalog and shopping list computation.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Production())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth.Configure(cfg.JWTSecret, cfg.JWTTTL)
	rl.Configure(cfg.LoginRatePerSecond, cfg.LoginBurst)
	go rl.StartVisitorCleanupLoop(ctx)

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("could not connect to database", zap.Error(err))
		}
		defer database.Close()

		if err := db.EnsureSchema(database); err != nil {
			log.Fatal("could not prepare schema", zap.Error(err))
		}
		handlers.SetSheetRepo(repo.NewPostgresSheetRepository(database))
		handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	} else {
		log.Warn("DATABASE_URL not set, worksheets are kept in memory")
		handlers.SetSheetRepo(repo.NewInMemorySheetRepository())
		handlers.SetUserRepo(repo.NewInMemoryUserRepository())
	}

	if cfg.RedisAddr != "" {
		redisService, err := redissvc.Connect(cfg.RedisAddr)
		if err != nil {
			log.Fatal("could not connect to redis", zap.Error(err))
		}
		defer redisService.Close()
		handlers.SetCartRepo(repo.NewRedisCartRepository(redisService.Rdb(), cfg.SessionTTL))
	} else {
		log.Warn("REDIS_ADDR not set, carts are kept in memory")
		handlers.SetCartRepo(repo.NewInMemoryCartRepository())
	}

	handlers.SetLogger(log)
	handlers.SetDefaultSchedule(cfg.DefaultHorizonDays, cfg.DefaultStartWeekday)

	if err := handlers.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("could not seed admin user", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.NewRouter(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
