// internal/state/menu_state.go
package state

import (
	"go-ring-escape/internal/config"
	"go-ring-escape/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState is the title screen.
type MenuState struct {
	sm       *StateMachine
	cfg      config.Config
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, cfg config.Config) *MenuState {
	return &MenuState{
		sm:       sm,
		cfg:      cfg,
		fontFace: mustFace(24),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.cfg))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "RING ESCAPE", m.fontFace,
		config.ScreenWidth/2-80, config.ScreenHeight/2-20, config.HUDTextColor)
	text.Draw(screen, "press SPACE to start", m.fontFace,
		config.ScreenWidth/2-120, config.ScreenHeight/2+20, render.DarkenColor(config.HUDTextColor))
}

func (m *MenuState) Exit() {}
