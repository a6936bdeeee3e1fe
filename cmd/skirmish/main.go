package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"skirmish/internal/combat"
	"skirmish/internal/config"
	"skirmish/internal/logger"
	"skirmish/internal/util"
)

func main() {
	var mapPath, cfgPath, out, random, level string
	var seed int64
	var search, show bool
	var workers int
	flag.StringVar(&mapPath, "map", "", "map file, - for stdin")
	flag.StringVar(&cfgPath, "config", "", "rules YAML (defaults: 200 HP, power 3)")
	flag.StringVar(&out, "out", "", "write the result (with events) as JSON to this file")
	flag.StringVar(&random, "random", "", "simulate a random WxH map instead of -map")
	flag.Int64Var(&seed, "seed", 1, "seed for -random")
	flag.BoolVar(&search, "search", false, "find the lowest attack power that wins without losses")
	flag.BoolVar(&show, "show", false, "print the battlefield after every round")
	flag.IntVar(&workers, "workers", 0, "parallel trials in search mode (overrides config)")
	flag.StringVar(&level, "log-level", "", "trace|debug|info|warn|error (default $LOG_LEVEL or info)")
	flag.Parse()

	lg := logger.Init(level, os.Stderr)

	rules, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if workers > 0 {
		rules.Search.Workers = workers
	}

	field, err := loadField(mapPath, random, seed, rules)
	if err != nil {
		log.Fatal().Err(err).Msg("load map")
	}
	lg.Info().Int("w", field.W).Int("h", field.H).
		Int("elves", field.Count(combat.Elf)).Int("goblins", field.Count(combat.Goblin)).Msg("battlefield ready")

	if search {
		ctx := lg.WithContext(context.Background())
		res, err := combat.Search(ctx, field, rules.SearchOptions())
		if err != nil {
			log.Fatal().Err(err).Int("trials", res.Trials).Msg("search")
		}
		fmt.Printf("power=%d rounds=%d hp=%d outcome=%d (trials=%d)\n", res.Power, res.Rounds, res.HP, res.Outcome, res.Trials)
		writeOut(out, res)
		return
	}

	if show {
		fmt.Printf("Initial:\n%s\n", field)
	}
	b := combat.NewBattle(field)
	b.Log = lg
	b.MaxRounds = rules.MaxRounds
	b.Record = out != ""
	if show {
		b.OnRound = func(b *combat.Battle, res combat.RoundResult) {
			if res == combat.RoundCompleted {
				fmt.Printf("After round %d:\n%s\n", b.Rounds, b.Field)
			}
		}
	}
	res, err := b.Run()
	if err != nil {
		log.Fatal().Err(err).Int("rounds", res.Rounds).Msg("simulate")
	}
	if show {
		fmt.Printf("Final:\n%s\n", field)
	}
	fmt.Printf("rounds=%d hp=%d outcome=%d winner=%s\n", res.Rounds, res.HP, res.Outcome, res.Winner)
	writeOut(out, res)
}

func loadField(mapPath, random string, seed int64, rules *config.RulesConfig) (*combat.Battlefield, error) {
	if random != "" {
		w, h, err := parseSize(random)
		if err != nil {
			return nil, err
		}
		return combat.Generate(util.New(seed), w, h, 0.15, rules.Rules()), nil
	}
	var r io.Reader
	switch mapPath {
	case "":
		return nil, fmt.Errorf("-map or -random is required")
	case "-":
		r = os.Stdin
	default:
		f, err := os.Open(mapPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return combat.Parse(r, rules.Rules())
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", s, err)
	}
	return w, h, nil
}

func writeOut(path string, v any) {
	if path == "" {
		return
	}
	if err := os.WriteFile(path, combat.MarshalPretty(v), 0644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("write result")
	}
	log.Info().Str("path", path).Msg("result saved")
}
