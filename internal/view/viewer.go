//go:build ebiten

package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"skirmish/internal/combat"
)

// Viewer replays a battle one round per tick.
type Viewer struct {
	pristine *combat.Battlefield
	battle   *combat.Battle
	log      zerolog.Logger

	img   *ebiten.Image
	cells []uint8
	buf   []byte
	scale int

	paused   bool
	tickOnce bool
	done     bool
}

// New prepares a viewer; field is cloned, never mutated.
func New(field *combat.Battlefield, scale int, log zerolog.Logger) *Viewer {
	v := &Viewer{
		pristine: field,
		log:      log,
		img:      ebiten.NewImage(field.W, field.H),
		buf:      make([]byte, 4*field.W*field.H),
		scale:    scale,
	}
	v.Reset()
	return v
}

func (v *Viewer) Reset() {
	v.battle = combat.NewBattle(v.pristine.Clone())
	v.battle.Log = v.log
	v.done = false
	v.tickOnce = false
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.Reset()
	}

	if v.done || (v.paused && !v.tickOnce) {
		return nil
	}
	v.tickOnce = false
	bf := v.battle.Field
	if bf.IsBattleOver() || v.battle.Round() != combat.RoundCompleted || v.battle.Idle() {
		v.done = true
		v.log.Info().Int("rounds", v.battle.Rounds).Int("hp", bf.TotalHP()).
			Int("outcome", v.battle.Rounds*bf.TotalHP()).Msg("replay finished")
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.cells = v.battle.Field.Cells(v.cells)
	fillPaletteRGBA(v.buf, v.cells, Palette)
	v.img.WritePixels(v.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.img, op)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.pristine.W * v.scale, v.pristine.H * v.scale
}
