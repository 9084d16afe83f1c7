// Package main loads a content directory and reports what it contains.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/config"
	"github.com/cory-johannsen/wayfarer/internal/game/content"
	"github.com/cory-johannsen/wayfarer/internal/observability"
)

func main() {
	dir := flag.String("content", "content", "content directory to validate")
	startZone := flag.Int("start-zone", 1, "zone new players start in")
	strict := flag.Bool("strict", false, "fail when an exit leads to a missing zone")
	flag.Parse()

	logger, err := observability.NewLogger(config.LoggingConfig{Level: "info", Format: "console", Output: "stderr"})
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	pack, err := content.Load(*dir, logger)
	if err != nil {
		logger.Fatal("content invalid", zap.String("dir", *dir), zap.Error(err))
	}
	if _, err := pack.World(*startZone); err != nil {
		logger.Fatal("start zone invalid", zap.Int("start_zone", *startZone), zap.Error(err))
	}

	fmt.Fprintf(os.Stdout, "content %s\n", *dir)
	fmt.Fprintf(os.Stdout, "  items     %d\n", pack.Items.Len())
	fmt.Fprintf(os.Stdout, "  quests    %d\n", len(pack.Quests))
	fmt.Fprintf(os.Stdout, "  npcs      %d\n", len(pack.NPCs))
	fmt.Fprintf(os.Stdout, "  monsters  %d\n", len(pack.Monsters))
	fmt.Fprintf(os.Stdout, "  zones     %d\n", len(pack.Zones))
	fmt.Fprintf(os.Stdout, "  profiles  %d\n", len(pack.Profiles))

	broken := pack.BrokenExits()
	for _, b := range broken {
		fmt.Fprintf(os.Stdout, "  blocked exit: zone %d %s -> missing zone %d\n", b.ZoneID, b.Direction, b.Destination)
	}
	if *strict && len(broken) > 0 {
		os.Exit(1)
	}
}
