package combat

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

var ErrNoBloodlessWin = errors.New("combat: no attack power wins without losses")

// SearchOptions configures the attack-power scan for a bloodless victory.
type SearchOptions struct {
	Faction Faction
	// Start is the first power tried. Zero means one above the faction's
	// current power on the map.
	Start int
	// Max is the last power tried. Zero means the highest enemy HP, past
	// which every hit is already lethal and more power changes nothing.
	Max int
	// Workers runs that many consecutive powers at once. The answer is the
	// same as a one-by-one scan.
	Workers   int
	MaxRounds int
}

type SearchResult struct {
	Result
	Power  int `json:"power"`
	Trials int `json:"trials"`
}

type trialOutcome struct {
	res Result
	err error
	won bool
}

// Search scans the protected faction's attack power upwards and returns the
// first power at which it wins without losing a unit. Each trial plays on a
// fresh clone of field; field itself is never mutated. Trials are logged at
// debug level to the logger carried by ctx.
func Search(ctx context.Context, field *Battlefield, opts SearchOptions) (SearchResult, error) {
	lg := zerolog.Ctx(ctx)
	f := opts.Faction
	own := field.UnitsOf(f)
	if len(own) == 0 {
		return SearchResult{}, fmt.Errorf("%w: no %s units", ErrMissingFaction, f)
	}
	if field.Count(f.Other()) == 0 {
		return SearchResult{}, fmt.Errorf("%w: no %s units", ErrMissingFaction, f.Other())
	}
	start := opts.Start
	if start <= 0 {
		start = own[0].Power + 1
	}
	last := opts.Max
	if last <= 0 {
		last = max(field.MaxHP(f.Other()), start)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	trials := 0
	for lo := start; lo <= last; lo += workers {
		if err := ctx.Err(); err != nil {
			return SearchResult{}, err
		}
		hi := min(lo+workers-1, last)
		outs := make([]trialOutcome, hi-lo+1)
		var wg sync.WaitGroup
		for i := range outs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				outs[i] = runTrial(field, f, lo+i, opts.MaxRounds)
			}(i)
		}
		wg.Wait()

		for i, o := range outs {
			trials++
			power := lo + i
			ev := lg.Debug().Int("power", power).Int("rounds", o.res.Rounds).
				Int("hp", o.res.HP).Bool("won", o.won)
			if o.err != nil {
				ev = ev.Err(o.err)
			}
			ev.Msg("trial")
			if o.won {
				return SearchResult{Result: o.res, Power: power, Trials: trials}, nil
			}
		}
	}
	return SearchResult{Trials: trials}, fmt.Errorf("%w: tried %s power %d..%d", ErrNoBloodlessWin, f, start, last)
}

func runTrial(field *Battlefield, f Faction, power, maxRounds int) trialOutcome {
	bf := field.Clone()
	bf.SetPower(f, power)
	b := NewBattle(bf)
	b.Protect = &f
	b.MaxRounds = maxRounds
	res, err := b.Run()
	// A stalemate or round limit is a lost trial, not a failed search.
	return trialOutcome{res: res, err: err, won: err == nil && res.Won(f) && res.Losses[f.String()] == 0}
}
