// internal/state/gameover_state.go
package state

import (
	"fmt"

	"go-ring-escape/internal/app"
	"go-ring-escape/internal/config"
	"go-ring-escape/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*GameOverState)(nil)

// GameOverState is terminal until the player restarts the run.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
	fontFace font.Face
}

func NewGameOverState(sm *StateMachine, previous *GameState) *GameOverState {
	return &GameOverState{
		sm:       sm,
		previous: previous,
		fontFace: mustFace(40),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.previous.Game().HandleCommand(app.Command{Type: app.CmdStart})
		s.sm.SetState(s.previous)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	text.Draw(screen, "GAME OVER", s.fontFace,
		config.ScreenWidth/2-110, config.ScreenHeight/2-10, config.HUDTextColor)
	cleared := s.previous.Game().Snapshot().Cleared
	text.Draw(screen, fmt.Sprintf("gates cleared: %d, press R to retry", cleared), s.fontFace,
		config.ScreenWidth/2-230, config.ScreenHeight/2+40, render.DarkenColor(config.HUDTextColor))
}

func (s *GameOverState) Exit() {}
