package combat

// hasAdjacent reports whether any unit of faction f stands next to c.
func (bf *Battlefield) hasAdjacent(c Coord, f Faction) bool {
	for _, n := range c.Adjacent() {
		if u := bf.units[n]; u != nil && u.Faction == f {
			return true
		}
	}
	return false
}

// pickTarget returns the adjacent unit of faction f with the fewest hit points.
// Neighbours are visited in reading order, so the first minimum wins ties.
func (bf *Battlefield) pickTarget(c Coord, f Faction) *Unit {
	var best *Unit
	for _, n := range c.Adjacent() {
		u := bf.units[n]
		if u == nil || u.Faction != f {
			continue
		}
		if best == nil || u.HP < best.HP {
			best = u
		}
	}
	return best
}

// nextStep picks the square a unit at start should step onto to approach the
// nearest square adjacent to a unit of faction enemy. It returns false when
// the unit is already in contact or no such square is reachable.
//
// The search has two phases. The first is a BFS over open squares recording
// each square's distance from start; it stops at the first layer holding a
// square next to an enemy and keeps the earliest one in reading order. The
// second walks back from that square, collecting every square that lies on
// some shortest path, until it reaches the layer one step from start; the
// earliest of those in reading order is the step taken.
func (bf *Battlefield) nextStep(start Coord, enemy Faction) (Coord, bool) {
	if bf.hasAdjacent(start, enemy) {
		return Coord{}, false
	}

	dist := map[Coord]int{start: 0}
	frontier := []Coord{start}
	var target Coord
	found := false
	for len(frontier) > 0 && !found {
		var next []Coord
		for _, c := range frontier {
			for _, n := range c.Adjacent() {
				if _, seen := dist[n]; seen || !bf.IsOpen(n) {
					continue
				}
				dist[n] = dist[c] + 1
				next = append(next, n)
			}
		}
		for _, c := range next {
			if bf.hasAdjacent(c, enemy) && (!found || Less(c, target)) {
				target, found = c, true
			}
		}
		frontier = next
	}
	if !found {
		return Coord{}, false
	}

	layer := []Coord{target}
	for d := dist[target]; d > 1; d-- {
		seen := map[Coord]bool{}
		var prev []Coord
		for _, c := range layer {
			for _, n := range c.Adjacent() {
				if dn, ok := dist[n]; ok && dn == d-1 && !seen[n] {
					seen[n] = true
					prev = append(prev, n)
				}
			}
		}
		layer = prev
	}

	step := layer[0]
	for _, c := range layer[1:] {
		if Less(c, step) {
			step = c
		}
	}
	return step, true
}
