// main.go
package main

import (
	"context"
	"log"
	"time"

	"cinema-reservation/cmd"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/wire"
	"cinema-reservation/pkg/database"
	"cinema-reservation/pkg/metrics"
	"cinema-reservation/pkg/ratelimit"
	"cinema-reservation/pkg/telemetry"
	"cinema-reservation/pkg/utils"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName: config.App.Name,
		Environment: config.App.Env,
		Endpoint:    config.Telemetry.Endpoint,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to init tracing", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	// Apply migrations before the pool is opened
	if config.Database.Migrate {
		version, err := database.Migrate(config.Database.DSN())
		if err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema up to date", zap.Uint("version", version))
	}

	// Connect to database
	db, err := database.InitDB(ctx, config.Database, database.Options{Tracing: config.Telemetry.Endpoint != ""})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	limiter, closeRedis := newLimiter(ctx, config, logger)
	defer closeRedis()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, wire.Deps{
		Limiter: limiter,
		Metrics: metrics.NewDefault(),
	})

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

// newLimiter returns a nil limiter when no Redis URL is configured.
func newLimiter(ctx context.Context, config *utils.Config, logger *zap.Logger) (*ratelimit.Limiter, func()) {
	if config.Redis.URL == "" {
		logger.Info("REDIS_URL not set, order rate limiting disabled")
		return nil, func() {}
	}

	opts, err := redis.ParseURL(config.Redis.URL)
	if err != nil {
		logger.Fatal("Invalid REDIS_URL", zap.Error(err))
	}

	rdb := redis.NewClient(opts)
	if config.Telemetry.Endpoint != "" {
		if err := redisotel.InstrumentTracing(rdb); err != nil {
			logger.Warn("Failed to instrument redis tracing", zap.Error(err))
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}

	logger.Info("Redis connected", zap.String("addr", opts.Addr))

	return ratelimit.New(rdb, "ratelimit:orders", config.RateLimit.Orders, config.RateLimit.Window), func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("Failed to close redis", zap.Error(err))
		}
	}
}
