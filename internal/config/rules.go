package config

import (
	"errors"
	"fmt"

	"skirmish/internal/combat"
)

var ErrInvalidRules = errors.New("invalid rules")

type RulesConfig struct {
	HitPoints int          `yaml:"hit_points"`
	Attack    AttackConfig `yaml:"attack"`
	Search    SearchConfig `yaml:"search"`
	MaxRounds int          `yaml:"max_rounds"`
}

type AttackConfig struct {
	Elf    int `yaml:"elf"`
	Goblin int `yaml:"goblin"`
}

type SearchConfig struct {
	Faction    combat.Faction `yaml:"faction"`
	StartPower int            `yaml:"start_power"`
	MaxPower   int            `yaml:"max_power"`
	Workers    int            `yaml:"workers"`
}

func Default() *RulesConfig {
	rc := &RulesConfig{}
	rc.fill()
	return rc
}

// fill sets defaults for zero fields. Faction defaults to elves because
// combat.Elf is the zero value.
func (rc *RulesConfig) fill() {
	if rc.HitPoints == 0 {
		rc.HitPoints = combat.DefaultHitPoints
	}
	if rc.Attack.Elf == 0 {
		rc.Attack.Elf = combat.DefaultPower
	}
	if rc.Attack.Goblin == 0 {
		rc.Attack.Goblin = combat.DefaultPower
	}
	if rc.Search.Workers == 0 {
		rc.Search.Workers = 1
	}
}

func (rc *RulesConfig) Validate() error {
	switch {
	case rc.HitPoints < 1:
		return fmt.Errorf("%w: hit_points %d < 1", ErrInvalidRules, rc.HitPoints)
	case rc.Attack.Elf < 0 || rc.Attack.Goblin < 0:
		return fmt.Errorf("%w: negative attack power", ErrInvalidRules)
	case rc.Search.StartPower < 0 || rc.Search.MaxPower < 0:
		return fmt.Errorf("%w: negative search bound", ErrInvalidRules)
	case rc.Search.MaxPower > 0 && rc.Search.MaxPower < rc.Search.StartPower:
		return fmt.Errorf("%w: max_power %d below start_power %d", ErrInvalidRules, rc.Search.MaxPower, rc.Search.StartPower)
	case rc.Search.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidRules, rc.Search.Workers)
	case rc.MaxRounds < 0:
		return fmt.Errorf("%w: negative max_rounds", ErrInvalidRules)
	}
	return nil
}

// Rules converts the config into the stats handed to parsed units.
func (rc *RulesConfig) Rules() combat.Rules {
	r := combat.Rules{HitPoints: rc.HitPoints}
	r.Power[combat.Elf] = rc.Attack.Elf
	r.Power[combat.Goblin] = rc.Attack.Goblin
	return r
}

func (rc *RulesConfig) SearchOptions() combat.SearchOptions {
	return combat.SearchOptions{
		Faction:   rc.Search.Faction,
		Start:     rc.Search.StartPower,
		Max:       rc.Search.MaxPower,
		Workers:   rc.Search.Workers,
		MaxRounds: rc.MaxRounds,
	}
}
