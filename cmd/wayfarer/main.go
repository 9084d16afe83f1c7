// Package main runs the single-player console adventure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/config"
	"github.com/cory-johannsen/wayfarer/internal/frontend/console"
	"github.com/cory-johannsen/wayfarer/internal/game/combat"
	"github.com/cory-johannsen/wayfarer/internal/game/content"
	"github.com/cory-johannsen/wayfarer/internal/game/dice"
	"github.com/cory-johannsen/wayfarer/internal/game/progression"
	"github.com/cory-johannsen/wayfarer/internal/game/session"
	"github.com/cory-johannsen/wayfarer/internal/observability"
	"github.com/cory-johannsen/wayfarer/internal/server"
	"github.com/cory-johannsen/wayfarer/internal/storage"
	"github.com/cory-johannsen/wayfarer/internal/storage/postgres"
	"github.com/cory-johannsen/wayfarer/internal/storage/redis"
	"github.com/cory-johannsen/wayfarer/internal/storage/savefile"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "content directory; overrides game.content_dir")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Game.ContentDir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting wayfarer",
		zap.String("content_dir", cfg.Game.ContentDir),
		zap.String("storage", cfg.Storage.Backend),
	)

	pack, err := content.Load(cfg.Game.ContentDir, logger)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	worldMgr, err := pack.World(cfg.Game.StartZone)
	if err != nil {
		logger.Fatal("building world", zap.Error(err))
	}

	rules := combat.Rules{
		HitChance:       cfg.Game.HitChance,
		DodgePerAgility: cfg.Game.DodgePerAgility,
		MaxDodge:        cfg.Game.MaxDodge,
	}
	if err := rules.Validate(); err != nil {
		logger.Fatal("invalid combat rules", zap.Error(err))
	}
	src := dice.NewCryptoSource()
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
		logger.Info("using seeded dice", zap.Uint64("seed", cfg.Game.Seed))
	}
	engine := combat.NewEngine(
		combat.NewResolver(dice.NewLoggedRoller(src, logger), rules),
		progression.NewTracker(pack.Items, logger),
		worldMgr.StartZone(),
		logger,
	)

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("opening player store", zap.Error(err))
	}

	conn := console.NewConn(os.Stdin, os.Stdout)
	render := console.NewRenderer(console.NewStyles(os.Stdout))
	login := &console.Login{
		Conn:     conn,
		Render:   render,
		Store:    store,
		Profiles: pack.Profiles,
		Items:    pack.Items,
		World:    worldMgr,
		Logger:   logger,
	}
	player, err := login.Run(ctx)
	if err != nil {
		conn.Close()
		_ = store.Close()
		logger.Fatal("logging in", zap.Error(err))
	}

	sess, err := session.New(player, session.Options{
		World:        worldMgr,
		Items:        pack.Items,
		Combat:       engine,
		MonsterNames: pack.MonsterNames(),
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("creating session", zap.Error(err))
	}

	lifecycle := server.NewLifecycle(logger)

	storeDone := make(chan struct{})
	lifecycle.Add("store", &server.FuncService{
		StartFn: func() error {
			<-storeDone
			return nil
		},
		StopFn: func() {
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Save(saveCtx, player); err != nil {
				logger.Error("final save failed", zap.String("player", player.Name), zap.Error(err))
			}
			if err := store.Close(); err != nil {
				logger.Error("closing player store", zap.Error(err))
			}
			close(storeDone)
		},
	})

	// Added last so it stops first: the final save runs once the console
	// has returned.
	ui := console.New(conn, sess, store, render, logger)
	lifecycle.Add("console", ui.Service(ctx))

	logger.Info("wayfarer ready",
		zap.String("player", player.Name),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Error("wayfarer stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

// openStore connects the configured player storage backend.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.PlayerStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := savefile.New(cfg.Storage.SaveDir, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPostgres:
		store, err := postgres.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendRedis:
		store, err := redis.New(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
