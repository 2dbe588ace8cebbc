// Package blockfall implements the falling-block puzzle game.
package blockfall

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// ID is the registry and score-table identifier.
const ID = "blockfall"

// lineScores is the base award for clearing 1-4 lines at once, multiplied by level+1.
var lineScores = [...]int{0, 40, 100, 300, 1200}

// Game implements Blockfall.
type Game struct {
	props      *config.Properties
	catalog    *shapes.Catalog
	colors     map[shapes.Kind]core.Color
	difficulty *config.DifficultyManager

	rng   *rand.Rand
	bag   *Bag
	board *Board
	tick  uint64
	live  int // ticks that ran the simulation; drives time progression

	current       Piece
	gravityTicker int

	score int
	lines int
	level int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

func init() {
	registry.Register(ID, "Blockfall", func(props *config.Properties) (registry.Game, error) {
		g, err := New(props)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// New creates a game bound to the given properties.
func New(props *config.Properties) (*Game, error) {
	catalog, err := props.Catalog()
	if err != nil {
		return nil, err
	}

	colors := make(map[shapes.Kind]core.Color, len(shapes.Kinds()))
	for _, k := range shapes.Kinds() {
		name, err := catalog.Color(k)
		if err != nil {
			return nil, err
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("blockfall: color %q for %s is not a terminal color", name, k)
		}
		colors[k] = c
	}

	return &Game{
		props:      props,
		catalog:    catalog,
		colors:     colors,
		difficulty: config.NewDifficultyManager(props.Difficulty),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.bag = NewBag(g.rng)
	g.board = NewBoard(g.props.Board.Cols, g.props.Board.Rows)
	g.tick = 0
	g.live = 0
	g.gravityTicker = 0
	g.score = 0
	g.lines = 0
	g.level = 0
	g.gameOver = false
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.spawn()
}

// Resize adapts to new terminal dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	lw, lh := g.layoutSize()
	g.tooSmall = w < lw || h < lh
}

// spawn makes the next kind from the bag the current piece. Spawning into
// locked cells ends the game.
func (g *Game) spawn() {
	p, err := spawnPiece(g.catalog, g.bag.Next(), g.board.Cols())
	if err != nil {
		// Bag only yields valid kinds
		panic(err)
	}
	g.current = p
	g.gravityTicker = 0
	if !p.fits(g.board) {
		g.gameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.live++

	result := core.StepResult{}

	for range input.Count(core.ActionLeft) {
		g.shift(-1)
	}
	for range input.Count(core.ActionRight) {
		g.shift(1)
	}
	for range input.Count(core.ActionRotate) {
		if p, ok := g.current.rotateOn(g.board); ok {
			g.current = p
		}
	}
	for range input.Count(core.ActionDown) {
		if p := g.current.Moved(1, 0); p.fits(g.board) {
			g.current = p
			g.score += g.props.Gameplay.SoftDropPoints
			g.gravityTicker = 0
		}
	}

	if input.Has(core.ActionDrop) {
		n := g.current.dropDistance(g.board)
		g.current = g.current.Moved(n, 0)
		g.score += n * g.props.Gameplay.HardDropPoints
		result.Cleared = g.lockPiece()
		result.Locked = true
	} else {
		g.gravityTicker++
		if g.gravityTicker >= g.GravityTicks() {
			g.gravityTicker = 0
			if p := g.current.Moved(1, 0); p.fits(g.board) {
				g.current = p
			} else {
				result.Cleared = g.lockPiece()
				result.Locked = true
			}
		}
	}

	result.State = g.State()
	return result
}

// shift moves the current piece sideways if there is room.
func (g *Game) shift(dc int) {
	if p := g.current.Moved(0, dc); p.fits(g.board) {
		g.current = p
	}
}

// lockPiece fixes the current piece, clears lines, scores, and spawns the next.
// Returns the number of lines cleared.
func (g *Game) lockPiece() int {
	if !g.board.Lock(g.current) {
		g.gameOver = true
		return 0
	}

	cleared := g.board.ClearLines()
	if cleared > 0 {
		g.lines += cleared
		g.score += lineScores[cleared] * (g.level + 1)
		g.level = g.lines / g.props.Gameplay.LinesPerLevel
	}

	g.spawn()
	return cleared
}

// GravityTicks returns the current number of ticks per one-row fall.
func (g *Game) GravityTicks() int {
	return g.difficulty.GravityTicks(g.props.Gameplay, g.level, config.Progress{
		Lines: g.lines,
		Score: g.score,
		Ticks: g.live,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Next returns the kind that spawns after the current piece.
func (g *Game) Next() shapes.Kind {
	return g.bag.Peek()
}

// ghostRow returns the row the current piece would land on.
func (g *Game) ghostRow() int {
	return g.current.Row + g.current.dropDistance(g.board)
}
