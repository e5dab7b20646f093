// internal/state/pause_state.go
package state

import (
	"go-ring-escape/internal/app"
	"go-ring-escape/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)

// PauseState dims the frozen game behind an overlay. The simulation is
// not ticked while paused.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
	fontFace font.Face
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{
		sm:       sm,
		previous: previous,
		fontFace: mustFace(40),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.previous.Game().HandleCommand(app.Command{Type: app.CmdResume})
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	text.Draw(screen, "PAUSED", s.fontFace,
		config.ScreenWidth/2-80, config.ScreenHeight/2, config.HUDTextColor)
}

func (s *PauseState) Exit() {}
