package fallsim

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawFPS prints the current FPS and TPS in the top-left corner of screen.
func drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fpsText(ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func fpsText(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
