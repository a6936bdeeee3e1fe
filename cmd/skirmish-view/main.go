//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"skirmish/internal/combat"
	"skirmish/internal/config"
	"skirmish/internal/logger"
	"skirmish/internal/view"
)

func main() {
	var mapPath, cfgPath, level string
	var scale, tps int
	flag.StringVar(&mapPath, "map", "", "map file")
	flag.StringVar(&cfgPath, "config", "", "rules YAML")
	flag.IntVar(&scale, "scale", 16, "pixels per square")
	flag.IntVar(&tps, "tps", 4, "rounds per second")
	flag.StringVar(&level, "log-level", "", "log level")
	flag.Parse()

	lg := logger.Init(level, os.Stderr)
	rules, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	f, err := os.Open(mapPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open map")
	}
	field, err := combat.Parse(f, rules.Rules())
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("parse map")
	}

	ebiten.SetWindowTitle("skirmish: " + mapPath)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(field.W*scale, field.H*scale)

	if err := ebiten.RunGame(view.New(field, scale, lg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("viewer")
	}
}
