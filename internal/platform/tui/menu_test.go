package tui

import (
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

const sessionStubID = "tui-session-stub"

func init() {
	registry.Register(sessionStubID, "Session Stub", func(*config.Properties) (registry.Game, error) {
		return &stubGame{}, nil
	})
}

func testMenu() MenuModel {
	props := config.DefaultProperties()
	return NewMenuModel(sessionStubID, nil, &props, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out
}

func TestMenuListsPresets(t *testing.T) {
	m := testMenu()
	view := m.View()

	for _, title := range []string{"Easy", "Normal", "Hard", "Fixed"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Rotate", "controls bar is shown")
}

func TestMenuSelect(t *testing.T) {
	m := testMenu()
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Stops at the last item
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, config.DifficultyFixed, m.Selected().Preset)
	assert.False(t, m.IsQuitting())
}

func TestMenuDefaultsToNormal(t *testing.T) {
	m := menuUpdate(t, testMenu(), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.Equal(t, config.DifficultyNormal, m.Selected().Preset)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, testMenu(), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())

	m = menuUpdate(t, testMenu(), runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestMenuResize(t *testing.T) {
	m := menuUpdate(t, testMenu(), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   abcd", centerText("abcd", 10))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}

func sessionUpdate(t *testing.T, s SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := s.Update(msg)
	out, ok := next.(SessionModel)
	require.True(t, ok)
	return out, cmd
}

func TestSessionFlow(t *testing.T) {
	props := config.DefaultProperties()
	s := NewSessionModel(sessionStubID, nil, &props, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "alice")
	assert.NotEmpty(t, s.SessionID())

	other := NewSessionModel(sessionStubID, nil, &props, core.RuntimeConfig{}, "bob")
	assert.NotEqual(t, s.SessionID(), other.SessionID())

	// Menu -> scoreboard -> menu
	s, _ = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewScoreboard, s.view)
	s, cmd := sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, viewMenu, s.view)
	assert.Nil(t, cmd)

	// Menu -> game
	s, cmd = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, s.view)
	assert.NotNil(t, cmd, "game starts ticking")
	assert.Equal(t, "alice", s.game.player)
	assert.True(t, s.game.embedded)

	// Pause, then back to the menu without ending the session
	s, _ = sessionUpdate(t, s, runeKey("p"))
	s, _ = sessionUpdate(t, s, TickMsg(time.Now()))
	stub := s.game.game.(*stubGame)
	stub.state.Paused = true
	s, _ = sessionUpdate(t, s, TickMsg(time.Now()))
	s, _ = sessionUpdate(t, s, runeKey("b"))
	assert.Equal(t, viewMenu, s.view)
	assert.False(t, s.quitting)

	// Quit from the menu ends the session
	s, cmd = sessionUpdate(t, s, runeKey("q"))
	assert.True(t, s.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, s.View())
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{
		{Player: "alice", Score: 900, Lines: 9, Level: 0},
		{Score: 100},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "alice", rows[0][1])
	assert.Equal(t, "900", rows[0][2])
	assert.Equal(t, anonymousPlayer, rows[1][1])
}

func TestScoreColumnsUseSpareWidth(t *testing.T) {
	narrow := scoreColumns(40)
	wide := scoreColumns(120)

	assert.Equal(t, 10, narrow[1].Width)
	assert.Greater(t, wide[1].Width, narrow[1].Width)
	assert.Equal(t, "Player", wide[1].Title)
}
