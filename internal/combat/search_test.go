package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFixtures(t *testing.T) {
	tests := []struct {
		name   string
		m      string
		power  int
		rounds int
		hp     int
	}{
		{"sample", mapSample, 15, 29, 172},
		{"elves ahead", mapElvesAhead, 4, 33, 948},
		{"goblin cluster", mapGoblinCluster, 15, 37, 94},
		{"corridor", mapCorridor, 12, 39, 166},
		{"large", mapLarge, 34, 30, 38},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			field := mustParse(t, tc.m)
			before := field.String()

			res, err := Search(context.Background(), field, SearchOptions{Faction: Elf})
			require.NoError(t, err)
			assert.Equal(t, tc.power, res.Power)
			assert.Equal(t, tc.rounds, res.Rounds)
			assert.Equal(t, tc.hp, res.HP)
			assert.Equal(t, tc.power-DefaultPower, res.Trials)
			assert.Equal(t, "elf", res.Winner)
			assert.Zero(t, res.Losses["elf"])
			assert.Equal(t, before, field.String(), "search must not mutate the input")
		})
	}
}

func TestSearchParallelMatchesSequential(t *testing.T) {
	field := mustParse(t, mapLarge)
	seq, err := Search(context.Background(), field, SearchOptions{Faction: Elf, Workers: 1})
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8} {
		par, err := Search(context.Background(), field, SearchOptions{Faction: Elf, Workers: w})
		require.NoError(t, err)
		assert.Equal(t, seq.Power, par.Power, "workers=%d", w)
		assert.Equal(t, seq.Result, par.Result, "workers=%d", w)
	}
}

func TestSearchNoBloodlessWin(t *testing.T) {
	// The sample needs power 15; capping the scan at 10 finds nothing.
	field := mustParse(t, mapSample)
	_, err := Search(context.Background(), field, SearchOptions{Faction: Elf, Start: 4, Max: 10})
	assert.ErrorIs(t, err, ErrNoBloodlessWin)
}

func TestSearchNeedsBothFactions(t *testing.T) {
	field := mustParse(t, mapSample)
	for _, u := range field.UnitsOf(Goblin) {
		field.RemoveUnit(u.Pos)
	}
	_, err := Search(context.Background(), field, SearchOptions{Faction: Elf})
	assert.ErrorIs(t, err, ErrMissingFaction)
}

func TestSearchHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, mustParse(t, mapSample), SearchOptions{Faction: Elf})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchForGoblins(t *testing.T) {
	// Goblins already win the sample without losses, so the first
	// trial succeeds.
	res, err := Search(context.Background(), mustParse(t, mapSample), SearchOptions{Faction: Goblin})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Power)
	assert.Equal(t, "goblin", res.Winner)
}
