//go:build !ebiten

package view

import (
	"fmt"

	"github.com/rs/zerolog"

	"skirmish/internal/combat"
)

// Viewer is a placeholder that satisfies the API expected by the GUI build.
type Viewer struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*combat.Battlefield, int, zerolog.Logger) *Viewer {
	panic("view.New requires building with the 'ebiten' tag")
}

func (v *Viewer) Reset() {}

func (v *Viewer) Update() error {
	return fmt.Errorf("view.Viewer.Update requires building with the 'ebiten' tag")
}

func (v *Viewer) Draw(any) {}

func (v *Viewer) Layout(int, int) (int, int) { return 0, 0 }
