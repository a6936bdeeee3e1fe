package combat

import "fmt"

// Faction tags one of the two sides.
type Faction uint8

const (
	Elf Faction = iota
	Goblin
)

// Factions lists both sides in a stable order.
var Factions = [2]Faction{Elf, Goblin}

func (f Faction) Other() Faction {
	if f == Elf {
		return Goblin
	}
	return Elf
}

func (f Faction) Glyph() byte {
	if f == Elf {
		return 'E'
	}
	return 'G'
}

func (f Faction) String() string {
	if f == Elf {
		return "elf"
	}
	return "goblin"
}

// ParseFaction accepts "elf"/"goblin" or the map glyphs "E"/"G".
func ParseFaction(s string) (Faction, error) {
	switch s {
	case "elf", "elves", "E":
		return Elf, nil
	case "goblin", "goblins", "G":
		return Goblin, nil
	}
	return 0, fmt.Errorf("unknown faction %q", s)
}

func (f Faction) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Faction) UnmarshalText(b []byte) error {
	v, err := ParseFaction(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Unit is a living combatant. Pos is owned by the Battlefield; callers must
// use MoveUnit rather than assigning it.
type Unit struct {
	ID      int
	Faction Faction
	HP      int
	Power   int
	Pos     Coord
}

// Name is the label used in event logs, e.g. "E3".
func (u *Unit) Name() string { return fmt.Sprintf("%c%d", u.Faction.Glyph(), u.ID) }

func (u *Unit) String() string {
	return fmt.Sprintf("%s HP=%d pos=%v", u.Name(), u.HP, u.Pos)
}

// Event is one recorded action, exported as JSON for replays.
type Event struct {
	Round  int    `json:"round"`
	Actor  string `json:"actor"`
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
	Damage int    `json:"damage,omitempty"`
	HPLeft int    `json:"hpLeft,omitempty"`
	From   *Coord `json:"from,omitempty"`
	To     *Coord `json:"to,omitempty"`
}
