package combat

import (
	"fmt"
	"sort"
)

// Battlefield holds the static walls and the living units keyed by square.
// Squares outside the W x H grid behave as walls.
type Battlefield struct {
	W, H int

	walls  []bool
	units  map[Coord]*Unit
	counts [2]int
	nextID int
}

func NewBattlefield(w, h int) *Battlefield {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Battlefield{
		W: w, H: h,
		walls: make([]bool, w*h),
		units: map[Coord]*Unit{},
	}
}

func (bf *Battlefield) InBounds(c Coord) bool {
	return c.R >= 0 && c.R < bf.H && c.C >= 0 && c.C < bf.W
}

func (bf *Battlefield) IsWall(c Coord) bool {
	if !bf.InBounds(c) {
		return true
	}
	return bf.walls[c.R*bf.W+c.C]
}

// SetWall marks c impassable. Walls are only placed while building a map.
func (bf *Battlefield) SetWall(c Coord) {
	if !bf.InBounds(c) {
		panic(fmt.Sprintf("combat: wall %v outside %dx%d grid", c, bf.W, bf.H))
	}
	if _, ok := bf.units[c]; ok {
		panic(fmt.Sprintf("combat: wall %v placed on a unit", c))
	}
	bf.walls[c.R*bf.W+c.C] = true
}

// AddUnit places a new unit at c.
func (bf *Battlefield) AddUnit(f Faction, c Coord, hp, power int) *Unit {
	if bf.IsWall(c) {
		panic(fmt.Sprintf("combat: unit placed on wall %v", c))
	}
	if _, ok := bf.units[c]; ok {
		panic(fmt.Sprintf("combat: square %v already occupied", c))
	}
	bf.nextID++
	u := &Unit{ID: bf.nextID, Faction: f, HP: hp, Power: power, Pos: c}
	bf.units[c] = u
	bf.counts[f]++
	return u
}

func (bf *Battlefield) Adjacent(c Coord) [4]Coord { return c.Adjacent() }

// IsOpen reports whether c is floor with nobody standing on it.
func (bf *Battlefield) IsOpen(c Coord) bool {
	if bf.IsWall(c) {
		return false
	}
	_, taken := bf.units[c]
	return !taken
}

func (bf *Battlefield) UnitAt(c Coord) *Unit { return bf.units[c] }

// Units returns the living units in reading order of their squares.
func (bf *Battlefield) Units() []*Unit {
	out := make([]*Unit, 0, len(bf.units))
	for _, u := range bf.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i].Pos, out[j].Pos) })
	return out
}

func (bf *Battlefield) UnitsOf(f Faction) []*Unit {
	var out []*Unit
	for _, u := range bf.Units() {
		if u.Faction == f {
			out = append(out, u)
		}
	}
	return out
}

func (bf *Battlefield) Count(f Faction) int { return bf.counts[f] }

// IsBattleOver is true once either side has no living units.
func (bf *Battlefield) IsBattleOver() bool {
	return bf.counts[Elf] == 0 || bf.counts[Goblin] == 0
}

// Winner returns the surviving faction once the battle is over.
func (bf *Battlefield) Winner() (Faction, bool) {
	switch {
	case bf.counts[Elf] > 0 && bf.counts[Goblin] == 0:
		return Elf, true
	case bf.counts[Goblin] > 0 && bf.counts[Elf] == 0:
		return Goblin, true
	}
	return 0, false
}

func (bf *Battlefield) MoveUnit(from, to Coord) {
	u, ok := bf.units[from]
	if !ok {
		panic(fmt.Sprintf("combat: no unit to move at %v", from))
	}
	if !bf.IsOpen(to) {
		panic(fmt.Sprintf("combat: %s cannot move onto %v", u.Name(), to))
	}
	if manhattan(from, to) != 1 {
		panic(fmt.Sprintf("combat: %s cannot jump from %v to %v", u.Name(), from, to))
	}
	delete(bf.units, from)
	u.Pos = to
	bf.units[to] = u
}

// ApplyDamage subtracts amount from the unit at c and removes it when its HP
// drops to zero or below. It reports whether the unit died.
func (bf *Battlefield) ApplyDamage(c Coord, amount int) bool {
	u, ok := bf.units[c]
	if !ok {
		panic(fmt.Sprintf("combat: no unit to damage at %v", c))
	}
	if amount < 0 {
		panic(fmt.Sprintf("combat: negative damage %d", amount))
	}
	u.HP -= amount
	if u.HP > 0 {
		return false
	}
	bf.RemoveUnit(c)
	return true
}

func (bf *Battlefield) RemoveUnit(c Coord) {
	u, ok := bf.units[c]
	if !ok {
		panic(fmt.Sprintf("combat: no unit to remove at %v", c))
	}
	delete(bf.units, c)
	bf.counts[u.Faction]--
}

// TotalHP sums the hit points of every living unit.
func (bf *Battlefield) TotalHP() int {
	total := 0
	for _, u := range bf.units {
		total += u.HP
	}
	return total
}

// MaxHP is the largest HP among living units of f, 0 if none.
func (bf *Battlefield) MaxHP(f Faction) int {
	best := 0
	for _, u := range bf.units {
		if u.Faction == f && u.HP > best {
			best = u.HP
		}
	}
	return best
}

// SetPower overrides the attack power of every unit of f.
func (bf *Battlefield) SetPower(f Faction, power int) {
	for _, u := range bf.units {
		if u.Faction == f {
			u.Power = power
		}
	}
}

// Clone returns an independent copy; unit IDs are preserved.
func (bf *Battlefield) Clone() *Battlefield {
	cp := &Battlefield{
		W: bf.W, H: bf.H,
		walls:  append([]bool(nil), bf.walls...),
		units:  make(map[Coord]*Unit, len(bf.units)),
		counts: bf.counts,
		nextID: bf.nextID,
	}
	for c, u := range bf.units {
		uu := *u
		cp.units[c] = &uu
	}
	return cp
}
