// Package main manages the players table schema in PostgreSQL.
//
// Usage:
//
//	migrate [-config path] [-source url] up|down|version [steps]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/config"
	"github.com/cory-johannsen/wayfarer/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}
	steps := 0
	if arg := flag.Arg(1); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			log.Fatalf("steps must be a positive number, got %q", arg)
		}
		steps = n
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(config.LoggingConfig{Level: cfg.Logging.Level, Format: "console", Output: "stderr"})
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	m, err := migrate.New(*source, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("creating migrator", zap.String("source", *source), zap.Error(err))
	}
	defer m.Close()

	switch cmd {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case "version":
	default:
		logger.Fatal("unknown command; use up, down, or version", zap.String("command", cmd))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("migration failed", zap.String("command", cmd), zap.Error(err))
	}

	version, dirty, verr := m.Version()
	switch {
	case errors.Is(verr, migrate.ErrNilVersion):
		fmt.Fprintln(os.Stdout, "players schema: not migrated")
	case verr != nil:
		logger.Fatal("reading schema version", zap.Error(verr))
	case errors.Is(err, migrate.ErrNoChange):
		fmt.Fprintf(os.Stdout, "players schema: version %d (dirty=%v), no changes\n", version, dirty)
	default:
		fmt.Fprintf(os.Stdout, "players schema: version %d (dirty=%v)\n", version, dirty)
	}
}
