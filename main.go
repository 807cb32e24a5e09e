package main

import (
	"context"
	core "englishauction/internal/auction"
	"englishauction/internal/bidlog"
	"englishauction/internal/config"
	"englishauction/internal/database/db_client"
	"englishauction/internal/http/http_server"
	"englishauction/internal/redis/redis_client"
	"englishauction/internal/redis/redis_fanout"
	"englishauction/internal/services/auction"
	"englishauction/internal/syncsnap"
	"englishauction/internal/ws"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	Log, _ = zap.NewDevelopment()
)

func main() {
	defer Log.Sync()
	zap.ReplaceGlobals(Log)

	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		Log.Fatal("Failed to load configuration", zap.Error(err))
	}
	Log.Debug("Configuration loaded successfully", zap.Any("config", cfg))

	// 2. Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	// 3. Websocket hub; always an event sink
	hub := ws.NewHub()
	sinks := []auction.EventSink{hub}

	// 4. Redis fan-out (optional)
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = redis_client.NewRedisClient(cfg.RedisAuctionsHost, int(cfg.RedisAuctionsPort))
		if err != nil {
			Log.Fatal("Failed to create Redis client", zap.Error(err))
		}
		defer redisClient.Close()
		sinks = append(sinks, redis_fanout.NewPublisher(redisClient))
		Log.Debug("Redis client created successfully")
	}

	// 5. Postgres bid journal (optional)
	if cfg.PostgresEnabled() {
		pgDb, err := db_client.Open(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDb)
		if err != nil {
			Log.Fatal("pg-open", zap.Error(err))
		}
		defer pgDb.Close()
		if err := bidlog.EnsureSchema(ctx, pgDb); err != nil {
			Log.Fatal("pg-schema", zap.Error(err))
		}
		sinks = append(sinks, bidlog.NewJournal(pgDb))
	}

	// 6. The hosted auction
	auctionService := auction.NewAuctionService(core.New(cfg.AuctionName, cfg.BidMinIncrement), sinks...)
	if cfg.AuctionAutoStart {
		auctionService.StartAuction(ctx)
	}
	if redisClient != nil {
		syncsnap.Run(ctx, redisClient, auctionService, cfg.SnapshotInterval)
	}

	// 7. HTTP + WS server
	wsSrv := ws.NewWsServer(hub, auctionService)
	httpServer := http_server.NewHttpServer(ctx, cfg.HttpServerPort, wsSrv, auctionService)
	go func() {
		<-ctx.Done()
		_ = httpServer.Dispose()
	}()
	if err := httpServer.Start(); err != nil {
		Log.Fatal("Failed to start HTTP server", zap.Error(err))
	}
	Log.Info("shutdown complete")
}
