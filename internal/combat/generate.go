package combat

import "math/rand"

// Generate builds a random walled map of size w x h. Interior squares become
// walls with probability density; then units are dropped on free squares,
// alternating factions so both sides are present. Maps smaller than 3x4
// are grown to fit.
func Generate(rng *rand.Rand, w, h int, density float64, rules Rules) *Battlefield {
	w, h = max(w, 4), max(h, 3)
	bf := NewBattlefield(w, h)
	var free []Coord
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			pos := Coord{r, c}
			border := r == 0 || c == 0 || r == h-1 || c == w-1
			if border || rng.Float64() < density {
				bf.SetWall(pos)
				continue
			}
			free = append(free, pos)
		}
	}
	if len(free) < 2 {
		// carve a corridor so both factions fit
		for c := 1; c < w-1; c++ {
			pos := Coord{1, c}
			bf.walls[pos.R*w+pos.C] = false
		}
		free = free[:0]
		for c := 1; c < w-1; c++ {
			free = append(free, Coord{1, c})
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	n := max(2, len(free)/8)
	for i := 0; i < n && i < len(free); i++ {
		f := Factions[i%2]
		bf.AddUnit(f, free[i], rules.HitPoints, rules.Power[f])
	}
	return bf
}
