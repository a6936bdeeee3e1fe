package combat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	mapSample = `
		#######
		#.G...#
		#...EG#
		#.#.#G#
		#..G#E#
		#.....#
		#######`
	mapMixed = `
		#######
		#G..#E#
		#E#E.E#
		#G.##.#
		#...#E#
		#...E.#
		#######`
	mapElvesAhead = `
		#######
		#E..EG#
		#.#G.E#
		#E.##E#
		#G..#.#
		#..E#.#
		#######`
	mapGoblinCluster = `
		#######
		#E.G#.#
		#.#G..#
		#G.#.G#
		#G..#.#
		#...E.#
		#######`
	mapCorridor = `
		#######
		#.E...#
		#.#..G#
		#.###.#
		#E#G#G#
		#...#G#
		#######`
	mapLarge = `
		#########
		#G......#
		#.E.#...#
		#..##..G#
		#...##..#
		#...#...#
		#.G...G.#
		#.....G.#
		#########`
	mapMovement = `
		#########
		#G..G..G#
		#.......#
		#.......#
		#G..E..G#
		#.......#
		#.......#
		#G..G..G#
		#########`
)

func mustParse(t testing.TB, s string) *Battlefield {
	t.Helper()
	bf, err := ParseString(s, DefaultRules())
	require.NoError(t, err)
	return bf
}
