package combat

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrStalemate  = errors.New("combat: stalemate, no unit can act")
	ErrRoundLimit = errors.New("combat: round limit reached")
)

// Result is the outcome of one simulated battle.
type Result struct {
	Rounds  int            `json:"rounds"`
	HP      int            `json:"hp"`
	Outcome int            `json:"outcome"`
	Winner  string         `json:"winner,omitempty"`
	Guarded bool           `json:"guarded,omitempty"`
	Losses  map[string]int `json:"losses"`
	Events  []Event        `json:"events,omitempty"`
}

// Won reports whether f won without the guard tripping.
func (r Result) Won(f Faction) bool { return !r.Guarded && r.Winner == f.String() }

// Run plays rounds until one side is wiped out, the guard trips, or the
// battle cannot make progress. Only fully completed rounds are counted.
func (b *Battle) Run() (Result, error) {
	guarded := false
loop:
	for !b.Field.IsBattleOver() {
		if b.MaxRounds > 0 && b.Rounds >= b.MaxRounds {
			return b.result(false), fmt.Errorf("%w: %d rounds", ErrRoundLimit, b.Rounds)
		}
		switch b.Round() {
		case RoundBattleEnded:
			break loop
		case RoundGuardTripped:
			guarded = true
			break loop
		}
		if b.idle && !b.Field.IsBattleOver() {
			return b.result(false), fmt.Errorf("%w after %d rounds", ErrStalemate, b.Rounds)
		}
	}
	res := b.result(guarded)
	b.Log.Debug().Int("rounds", res.Rounds).Int("hp", res.HP).Int("outcome", res.Outcome).
		Str("winner", res.Winner).Bool("guarded", guarded).Msg("battle over")
	return res, nil
}

func (b *Battle) result(guarded bool) Result {
	bf := b.Field
	hp := bf.TotalHP()
	res := Result{
		Rounds:  b.Rounds,
		HP:      hp,
		Outcome: b.Rounds * hp,
		Guarded: guarded,
		Losses:  map[string]int{},
		Events:  b.events,
	}
	for _, f := range Factions {
		res.Losses[f.String()] = b.Losses[f]
	}
	if w, ok := bf.Winner(); ok && !guarded {
		res.Winner = w.String()
	}
	return res
}

// Simulate runs a fresh battle on bf to completion.
func Simulate(bf *Battlefield) (Result, error) {
	return NewBattle(bf).Run()
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
