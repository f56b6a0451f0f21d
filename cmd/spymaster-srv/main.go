package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/cache/cachelru"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database/stats"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/game"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/logging"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/server"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/shutdown"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/spymaster"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/transport"
)

func main() {
	// local development convenience, absent in production
	_ = godotenv.Load()

	cfg, err := spymaster.LoadConfig()
	if err != nil {
		logging.DefaultLogger().Fatalf("config: %v", err)
	}

	logger := logging.NewLogger(cfg.Debug)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := shutdown.New()
	defer cancel()
	ctx = logging.WithLogger(ctx, logger)

	db, err := database.New(ctx, &cfg.DB)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Errorf("close database: %v", err)
		}
	}()

	statCache, err := cachelru.NewLRU(cfg.CacheSize)
	if err != nil {
		logger.Fatalf("stat cache: %v", err)
	}
	archive := spymaster.NewArchive(stats.New(db, statCache))

	hub := transport.NewHub(logger.Desugar())
	engine := game.NewEngine(
		ctx,
		logger.Desugar(),
		game.NewStore(),
		game.NewSessionManager(cfg.DisconnectGrace),
		hub,
		archive,
		cfg.GameDefaults(),
	)
	handler := transport.NewHandler(logger.Desugar(), hub, engine)
	srv := server.New(logger.Desugar(), cfg.Addr, cfg.PublicURL, handler)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return engine.Run(ctx) })
	group.Go(func() error { return srv.Run(ctx) })

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("server exited: %v", err)
	}
	logger.Info("shutdown complete")
}
