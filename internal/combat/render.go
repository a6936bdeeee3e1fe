package combat

import (
	"fmt"
	"strings"
)

// Grid renders walls, floor and units without hit points.
func (bf *Battlefield) Grid() string {
	var sb strings.Builder
	for r := 0; r < bf.H; r++ {
		bf.writeRow(&sb, r)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the map with each row's units and their HP alongside, e.g.
//
//	#G....#   G(200)
func (bf *Battlefield) String() string {
	var sb strings.Builder
	for r := 0; r < bf.H; r++ {
		units := bf.writeRow(&sb, r)
		if len(units) > 0 {
			sb.WriteString("   ")
			for i, u := range units {
				if i > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%c(%d)", u.Faction.Glyph(), u.HP)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (bf *Battlefield) writeRow(sb *strings.Builder, r int) []*Unit {
	var units []*Unit
	for c := 0; c < bf.W; c++ {
		pos := Coord{r, c}
		switch u := bf.units[pos]; {
		case bf.IsWall(pos):
			sb.WriteByte('#')
		case u != nil:
			sb.WriteByte(u.Faction.Glyph())
			units = append(units, u)
		default:
			sb.WriteByte('.')
		}
	}
	return units
}

// Cells fills dst (len W*H, row-major) with one CellXxx value per square for
// painters that work on flat buffers.
func (bf *Battlefield) Cells(dst []uint8) []uint8 {
	if len(dst) != bf.W*bf.H {
		dst = make([]uint8, bf.W*bf.H)
	}
	for i, wall := range bf.walls {
		if wall {
			dst[i] = CellWall
		} else {
			dst[i] = CellFloor
		}
	}
	for c, u := range bf.units {
		if u.Faction == Elf {
			dst[c.R*bf.W+c.C] = CellElf
		} else {
			dst[c.R*bf.W+c.C] = CellGoblin
		}
	}
	return dst
}

const (
	CellFloor uint8 = iota
	CellWall
	CellElf
	CellGoblin
)
