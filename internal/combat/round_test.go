package combat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dedent(s string) string {
	var out []string
	for _, l := range strings.Split(strings.TrimSpace(s), "\n") {
		out = append(out, strings.TrimSpace(l))
	}
	return strings.Join(out, "\n") + "\n"
}

func TestMovementRounds(t *testing.T) {
	want := []string{
		`#########
		#.G...G.#
		#...G...#
		#...E..G#
		#.G.....#
		#.......#
		#G..G..G#
		#.......#
		#########`,
		`#########
		#..G.G..#
		#...G...#
		#.G.E.G.#
		#.......#
		#G..G..G#
		#.......#
		#.......#
		#########`,
		`#########
		#.......#
		#..GGG..#
		#..GEG..#
		#G..G...#
		#......G#
		#.......#
		#.......#
		#########`,
	}
	b := NewBattle(mustParse(t, mapMovement))
	for i, w := range want {
		require.Equal(t, RoundCompleted, b.Round())
		assert.Equal(t, dedent(w), b.Field.Grid(), "after round %d", i+1)
	}
}

func TestSampleRoundsWithHitPoints(t *testing.T) {
	b := NewBattle(mustParse(t, mapSample))

	require.Equal(t, RoundCompleted, b.Round())
	assert.Equal(t, dedent(`
		#######
		#..G..#   G(200)
		#...EG#   E(197), G(197)
		#.#G#G#   G(200), G(197)
		#...#E#   E(197)
		#.....#
		#######`), b.Field.String())

	require.Equal(t, RoundCompleted, b.Round())
	assert.Equal(t, dedent(`
		#######
		#...G.#   G(200)
		#..GEG#   G(200), E(188), G(194)
		#.#.#G#   G(194)
		#...#E#   E(194)
		#.....#
		#######`), b.Field.String())
	assert.Equal(t, 2, b.Rounds)
}

func TestRoundStopsWhenBattleEndsMidRound(t *testing.T) {
	bf := mustParse(t, `
		######
		#EG.E#
		######`)
	bf.UnitAt(Coord{1, 2}).HP = 3
	late := bf.UnitAt(Coord{1, 4})

	b := NewBattle(bf)
	var actors []string
	b.Emit = func(ev Event) { actors = append(actors, ev.Actor) }

	assert.Equal(t, RoundBattleEnded, b.Round())
	assert.Equal(t, 0, b.Rounds, "partial round is not counted")
	assert.Equal(t, Coord{1, 4}, late.Pos, "units after the final kill do not act")
	assert.Equal(t, []string{"E1", "E1"}, actors, "hit then kill, nothing else")

	res, err := b.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Rounds)
	assert.Equal(t, 400, res.HP)
	assert.Equal(t, "elf", res.Winner)
}

func TestFinalKillByLastUnitCompletesRound(t *testing.T) {
	bf := mustParse(t, `
		####
		#GE#
		####`)
	bf.UnitAt(Coord{1, 1}).HP = 3

	res, err := Simulate(bf)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 197, res.HP)
	assert.Equal(t, 197, res.Outcome)
}

func TestDeadUnitsSkipTheirTurn(t *testing.T) {
	bf := mustParse(t, `
		#####
		#EG.#
		#.E.#
		#####`)
	bf.UnitAt(Coord{1, 2}).HP = 3
	b := NewBattle(bf)
	b.Record = true

	// E1 kills G before its turn comes up; E3 is left without an enemy.
	assert.Equal(t, RoundBattleEnded, b.Round())
	for _, ev := range b.events {
		assert.NotEqual(t, "G2", ev.Actor)
	}
}

func TestUnitMovingForwardDoesNotActTwice(t *testing.T) {
	// G1 steps east onto a square after its own in reading order; it must
	// still take exactly one turn this round.
	bf := mustParse(t, `
		#######
		#G....#
		#.....#
		#....E#
		#######`)
	b := NewBattle(bf)
	counts := map[string]int{}
	b.Emit = func(ev Event) {
		if ev.Action == "move" {
			counts[ev.Actor]++
		}
	}
	require.Equal(t, RoundCompleted, b.Round())
	assert.Equal(t, map[string]int{"G1": 1, "E2": 1}, counts)
}

func TestGuardTripsOnProtectedLoss(t *testing.T) {
	bf := mustParse(t, `
		#######
		#GE..E#
		#######`)
	bf.UnitAt(Coord{1, 2}).HP = 2
	b := NewBattle(bf)
	elf := Elf
	b.Protect = &elf

	assert.Equal(t, RoundGuardTripped, b.Round())
	assert.Equal(t, 1, b.Losses[Elf])

	res := b.result(true)
	assert.True(t, res.Guarded)
	assert.Empty(t, res.Winner)
	assert.False(t, res.Won(Elf))
}

func TestStalemateIsReported(t *testing.T) {
	_, err := Simulate(mustParse(t, `
		#######
		#E.#.G#
		#######`))
	assert.ErrorIs(t, err, ErrStalemate)
}

func TestRoundLimit(t *testing.T) {
	b := NewBattle(mustParse(t, mapSample))
	b.MaxRounds = 10
	res, err := b.Run()
	assert.ErrorIs(t, err, ErrRoundLimit)
	assert.Equal(t, 10, res.Rounds)
}
