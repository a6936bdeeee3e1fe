package combat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyMap       = errors.New("combat: empty map")
	ErrRaggedMap      = errors.New("combat: map rows differ in length")
	ErrMissingFaction = errors.New("combat: faction has no units")
)

const (
	DefaultHitPoints = 200
	DefaultPower     = 3
)

// Rules are the starting stats handed to every unit on a parsed map.
type Rules struct {
	HitPoints int
	Power     [2]int // indexed by Faction
}

func DefaultRules() Rules {
	return Rules{HitPoints: DefaultHitPoints, Power: [2]int{DefaultPower, DefaultPower}}
}

// Parse reads a map where '#' is a wall, 'E' and 'G' are units and anything
// else is floor. Blank lines around the map and indentation shared by every
// row are ignored.
func Parse(r io.Reader, rules Rules) (*Battlefield, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	indent := -1
	for _, l := range lines {
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	w := len(lines[0]) - indent
	for i, l := range lines {
		if len(l)-indent != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMap, i, len(l)-indent, w)
		}
	}

	bf := NewBattlefield(w, len(lines))
	for row, l := range lines {
		for col, ch := range []byte(l[indent:]) {
			c := Coord{row, col}
			switch ch {
			case '#':
				bf.SetWall(c)
			case 'E':
				bf.AddUnit(Elf, c, rules.HitPoints, rules.Power[Elf])
			case 'G':
				bf.AddUnit(Goblin, c, rules.HitPoints, rules.Power[Goblin])
			}
		}
	}
	for _, f := range Factions {
		if bf.Count(f) == 0 {
			return nil, fmt.Errorf("%w: no %s (%c) on map", ErrMissingFaction, f, f.Glyph())
		}
	}
	return bf, nil
}

func ParseString(s string, rules Rules) (*Battlefield, error) {
	return Parse(strings.NewReader(s), rules)
}
