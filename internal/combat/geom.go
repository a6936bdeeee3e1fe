package combat

import (
	"fmt"
	"sort"
)

// Coord is a grid square. R grows downwards, C grows to the right.
type Coord struct {
	R int `json:"r"`
	C int `json:"c"`
}

func (a Coord) Add(b Coord) Coord { return Coord{a.R + b.R, a.C + b.C} }
func (a Coord) String() string    { return fmt.Sprintf("(%d,%d)", a.R, a.C) }

// dirs is north, west, east, south: the neighbours of a square in reading order.
var dirs = [4]Coord{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Adjacent returns the four orthogonal neighbours in reading order.
func (a Coord) Adjacent() [4]Coord {
	var out [4]Coord
	for i, d := range dirs {
		out[i] = a.Add(d)
	}
	return out
}

// Less reports whether a comes before b in reading order.
func Less(a, b Coord) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	return a.C < b.C
}

func SortReading(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return Less(cs[i], cs[j]) })
}

func manhattan(a, b Coord) int {
	dr := a.R - b.R
	if dr < 0 {
		dr = -dr
	}
	dc := a.C - b.C
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
