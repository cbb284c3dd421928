package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"thegame/internal/config"
	"thegame/internal/game"
	"thegame/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	maps, err := game.LoadBuiltinMaps()
	if err != nil {
		logger.Fatal("load maps", zap.Error(err))
	}
	world, err := game.NewWorld(maps, game.Map1Name, cfg.Params(), logger)
	if err != nil {
		logger.Fatal("build world", zap.Error(err))
	}
	// The two built-in maps warp into each other.
	world.SetWarpHandler(func(mapName string, pos game.GridPos) {
		target := game.Map2Name
		if mapName == game.Map2Name {
			target = game.Map1Name
		}
		if err := world.LoadMap(target); err != nil {
			logger.Error("warp transition", zap.Error(err))
		}
	})

	window := ui.New(world, cfg, logger)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(window.WindowSize())
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(window); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
