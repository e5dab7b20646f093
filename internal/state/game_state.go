// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"go-ring-escape/internal/app"
	"go-ring-escape/internal/component"
	"go-ring-escape/internal/config"
	"go-ring-escape/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// GameState runs the simulation: it translates keyboard input into
// commands, ticks the game, and draws the latest snapshot.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *system.RenderSystem
	fontFace font.Face
}

func NewGameState(sm *StateMachine, cfg config.Config) *GameState {
	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	return &GameState{
		sm:       sm,
		game:     game,
		renderer: system.NewRenderSystem(),
		fontFace: mustFace(16),
	}
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.HandleCommand(app.Command{Type: app.CmdPause})
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.game.HandleCommand(app.Command{Type: app.CmdReset})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		s.game.HandleCommand(app.Command{Type: app.CmdNudge, Axis: -1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		s.game.HandleCommand(app.Command{Type: app.CmdNudge, Axis: 1})
	}

	s.game.Update(deltaTime)

	if s.game.Phase() == component.PhaseGameOver {
		s.sm.SetState(NewGameOverState(s.sm, s))
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := s.game.Snapshot()
	s.renderer.Draw(screen, snap)
	hud := fmt.Sprintf("GATES %d   DIFFICULTY %.2f", snap.Cleared, snap.Difficulty)
	text.Draw(screen, hud, s.fontFace, 12, 24, config.HUDTextColor)
}

func (s *GameState) Exit() {}

// Game exposes the simulation to the pause and game-over overlays.
func (s *GameState) Game() *app.Game {
	return s.game
}
