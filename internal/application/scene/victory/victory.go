// Package victory provides the text screen shown after the boss falls.
package victory

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/labrun/internal/application/scene"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// SceneKey is the pending-scene value that selects this screen
const SceneKey = "victory"

const lineHeight = 16

var colorBG = color.RGBA{10, 10, 16, 255}

// Screen shows the victory title and lines until Esc is pressed
type Screen struct {
	cfg     config.VictoryConfig
	screenW int
	screenH int
	elapsed float64
}

// New creates the victory screen
func New(cfg config.VictoryConfig, screenW, screenH int) *Screen {
	return &Screen{cfg: cfg, screenW: screenW, screenH: screenH}
}

// Update implements scene.Scene. Esc ends the game.
func (s *Screen) Update(dt float64) (scene.Scene, error) {
	s.elapsed += dt
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}
	return nil, nil
}

// VisibleLines returns how many lines have faded in, one per second
func (s *Screen) VisibleLines() int {
	return min(len(s.cfg.Lines), int(s.elapsed))
}

// Draw renders the title and the lines revealed so far
func (s *Screen) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	y := s.screenH/2 - (len(s.cfg.Lines)+2)*lineHeight/2
	ebitenutil.DebugPrintAt(screen, s.cfg.Title, centerX(s.cfg.Title, s.screenW), y)
	y += lineHeight * 2

	for _, line := range s.cfg.Lines[:s.VisibleLines()] {
		ebitenutil.DebugPrintAt(screen, line, centerX(line, s.screenW), y)
		y += lineHeight
	}

	ebitenutil.DebugPrintAt(screen, "ESC: Quit", 4, s.screenH-lineHeight)
}

// OnEnter implements scene.Scene
func (s *Screen) OnEnter() {
	s.elapsed = 0
}

// OnExit implements scene.Scene
func (s *Screen) OnExit() {}

// debug font glyphs are 6 pixels wide
func centerX(text string, screenW int) int {
	return (screenW - len(text)*6) / 2
}
