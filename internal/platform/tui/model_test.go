package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// stubGame records what the model asks of it.
type stubGame struct {
	resets  int
	resizes int
	steps   []map[core.Action]int
	state   core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	counts := make(map[core.Action]int, len(in.Actions))
	for a, n := range in.Actions {
		counts[a] = n
	}
	g.steps = append(g.steps, counts)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "stub", core.ColorPurple)
}

func (g *stubGame) State() core.GameState { return g.state }

// resizingStub also adapts to new sizes in place.
type resizingStub struct{ stubGame }

func (g *resizingStub) Resize(int, int) { g.resizes++ }

func newTestModel(g registry.Game, store *storage.Store) Model {
	props := config.DefaultProperties()
	return NewModel(g, store, &props, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	m.Init()
	require.Equal(t, 1, g.resets)

	m, _ = update(t, m, runeKey("a"))
	m, _ = update(t, m, runeKey("a"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, TickMsg(time.Now()))

	require.Len(t, g.steps, 1)
	assert.Equal(t, 2, g.steps[0][core.ActionLeft])
	assert.Equal(t, 1, g.steps[0][core.ActionRotate])
	assert.NotNil(t, cmd, "tick loop continues")

	// Input is cleared between ticks
	update(t, m, TickMsg(time.Now()))
	require.Len(t, g.steps, 2)
	assert.Empty(t, g.steps[1])
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	m.Init()

	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 1, g.resets)
	assert.NotContains(t, g.steps[0], core.ActionRestart)

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, runeKey("r"))
	update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 2, g.resets)
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	g := &stubGame{}
	m := newTestModel(g, store).WithPlayer("tester")
	m.Init()

	g.state = core.GameState{Score: 420, Lines: 5, Level: 0, GameOver: true}
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "tester", scores[0].Player)
	assert.Equal(t, 420, scores[0].Score)
	assert.Equal(t, 5, scores[0].Lines)
	assert.Equal(t, scores[0].RunID, m.LastRunID())

	saved, err := savedRun(m, store)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, m.LastRunID(), saved.RunID)
	assert.Equal(t, 420, saved.Score)
	assert.Equal(t, "tester", saved.Player)
}

func TestSavedRunWithoutResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := newTestModel(&stubGame{}, store)
	saved, err := savedRun(m, store)
	require.NoError(t, err)
	assert.Nil(t, saved, "nothing recorded")

	saved, err = savedRun(m, nil)
	require.NoError(t, err)
	assert.Nil(t, saved, "no store")
}

func TestModelResize(t *testing.T) {
	plain := &stubGame{}
	m := newTestModel(plain, nil)
	m.Init()
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 2, plain.resets, "games without Resize restart")

	resizing := &resizingStub{}
	m = newTestModel(resizing, nil)
	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, resizing.resets)
	assert.Equal(t, 1, resizing.resizes)
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelBackAndQuit(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	m.Init()

	m, cmd := update(t, m, runeKey("b"))
	assert.False(t, m.BackToMenu(), "back is ignored while playing")
	assert.Nil(t, cmd)

	g.state.Paused = true
	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd = update(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd, "standalone model exits on back")

	m, _ = update(t, newTestModel(g, nil), runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	m.Init()
	assert.Contains(t, m.View(), "stub")
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Contains(t, lines[1], "ef")
}

func TestControlsBar(t *testing.T) {
	bar := ControlsBar(config.DefaultProperties().Controls)

	for _, label := range []string{"Left", "Right", "Rotate", "Down"} {
		assert.Contains(t, bar, label)
	}
	assert.Less(t, strings.Index(bar, "Left"), strings.Index(bar, "Down"))
	assert.NotContains(t, bar, "\n")
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(60))
	assert.Equal(t, time.Second/30, tickInterval(30))
	assert.Equal(t, time.Second/60, tickInterval(0))
}
