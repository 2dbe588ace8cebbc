package blockfall

import "github.com/vovakirdan/blockfall/internal/shapes"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Score        int
	Lines        int
	Level        int
	Piece        shapes.Kind
	PieceRow     int
	PieceCol     int
	Next         shapes.Kind
	StackHeight  int
	GravityTicks int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		Piece:        g.current.Kind,
		PieceRow:     g.current.Row,
		PieceCol:     g.current.Col,
		Next:         g.Next(),
		StackHeight:  g.board.Height(),
		GravityTicks: g.GravityTicks(),
		State:        state,
	}
}
