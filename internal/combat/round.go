package combat

import "github.com/rs/zerolog"

// RoundResult tells the driver how a round finished.
type RoundResult int

const (
	// RoundCompleted: every unit alive at round start took its turn.
	RoundCompleted RoundResult = iota
	// RoundBattleEnded: one side was wiped out before every unit had acted.
	RoundBattleEnded
	// RoundGuardTripped: a unit of the protected faction died.
	RoundGuardTripped
)

func (r RoundResult) String() string {
	switch r {
	case RoundCompleted:
		return "completed"
	case RoundBattleEnded:
		return "battle-ended"
	case RoundGuardTripped:
		return "guard-tripped"
	}
	return "unknown"
}

// Battle drives rounds against a Battlefield, mutating it in place.
type Battle struct {
	Field *Battlefield

	// Protect, when non-nil, stops the battle the moment a unit of that
	// faction dies.
	Protect *Faction
	// MaxRounds bounds Run; zero means no limit.
	MaxRounds int

	// Record keeps every event for Result.Events; Emit sees them as they happen.
	Record  bool
	Emit    func(Event)
	OnRound func(b *Battle, res RoundResult)
	Log     zerolog.Logger

	Rounds int
	Losses [2]int

	idle   bool
	events []Event
}

func NewBattle(bf *Battlefield) *Battle {
	return &Battle{Field: bf, Log: zerolog.Nop()}
}

func (b *Battle) emit(ev Event) {
	if b.Record {
		b.events = append(b.events, ev)
	}
	if b.Emit != nil {
		b.Emit(ev)
	}
}

// Idle reports whether the last completed round changed nothing.
func (b *Battle) Idle() bool { return b.idle }

// Round plays one round. The turn order is the reading order of the units
// alive when the round starts; units are tracked by identity, so moving onto
// a later square does not earn a second turn and a unit killed before its
// turn is skipped.
func (b *Battle) Round() RoundResult {
	bf := b.Field
	order := bf.Units()
	acted := false
	for _, u := range order {
		if bf.UnitAt(u.Pos) != u {
			continue
		}
		if bf.IsBattleOver() {
			b.Log.Trace().Int("round", b.Rounds+1).Str("next", u.Name()).Msg("battle ended mid-round")
			return b.finish(RoundBattleEnded)
		}
		did, tripped := b.turn(u)
		acted = acted || did
		if tripped {
			return b.finish(RoundGuardTripped)
		}
	}
	b.Rounds++
	b.idle = !acted
	b.Log.Trace().Int("round", b.Rounds).Int("hp", bf.TotalHP()).
		Int("elves", bf.Count(Elf)).Int("goblins", bf.Count(Goblin)).Msg("round complete")
	return b.finish(RoundCompleted)
}

func (b *Battle) finish(res RoundResult) RoundResult {
	if b.OnRound != nil {
		b.OnRound(b, res)
	}
	return res
}

// turn runs move-then-attack for u. It reports whether u did anything and
// whether the guard tripped.
func (b *Battle) turn(u *Unit) (acted, tripped bool) {
	bf := b.Field
	enemy := u.Faction.Other()
	round := b.Rounds + 1

	if step, ok := bf.nextStep(u.Pos, enemy); ok {
		from := u.Pos
		bf.MoveUnit(from, step)
		acted = true
		b.Log.Debug().Int("round", round).Str("unit", u.Name()).
			Stringer("from", from).Stringer("to", step).Msg("move")
		b.emit(Event{Round: round, Actor: u.Name(), Action: "move", From: &from, To: &step})
	}

	t := bf.pickTarget(u.Pos, enemy)
	if t == nil {
		return acted, false
	}
	acted = true
	at := t.Pos
	died := bf.ApplyDamage(at, u.Power)
	b.Log.Debug().Int("round", round).Str("unit", u.Name()).Str("target", t.Name()).
		Int("damage", u.Power).Int("hp", t.HP).Bool("killed", died).Msg("attack")
	b.emit(Event{Round: round, Actor: u.Name(), Action: "hit", Target: t.Name(), Damage: u.Power, HPLeft: max(t.HP, 0), To: &at})
	if !died {
		return acted, false
	}
	b.Losses[t.Faction]++
	b.emit(Event{Round: round, Actor: u.Name(), Action: "kill", Target: t.Name(), To: &at})
	return acted, b.Protect != nil && *b.Protect == t.Faction
}
