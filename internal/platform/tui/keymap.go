package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// bindingActions maps configured control actions to game actions.
var bindingActions = map[config.Action]core.Action{
	config.ActionLeft:  core.ActionLeft,
	config.ActionRight: core.ActionRight,
	config.ActionSpin:  core.ActionRotate,
	config.ActionDown:  core.ActionDown,
}

// fixedKeys are game keys that are not part of the configurable controls.
var fixedKeys = map[string]core.Action{
	" ":     core.ActionDrop,
	"enter": core.ActionConfirm,
	"p":     core.ActionPause,
	"esc":   core.ActionPause,
	"b":     core.ActionBack,
	"r":     core.ActionRestart,
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Movement keys come from the control bindings; the rest are fixed.
type KeyMapper struct {
	keys map[string]core.Action
}

// NewKeyMapper creates a key mapper for the given control bindings.
// A key bound in the controls wins over the fixed keys.
func NewKeyMapper(controls config.Controls) *KeyMapper {
	keys := make(map[string]core.Action, len(fixedKeys)+len(controls)*3)
	for k, a := range fixedKeys {
		keys[k] = a
	}
	for _, b := range controls {
		action, ok := bindingActions[b.Action]
		if !ok {
			continue
		}
		for _, k := range b.Keys {
			keys[k] = action
		}
	}
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if config.IsReservedKey(key) {
		return core.ActionQuit, true
	}

	if a, ok := km.keys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if config.IsReservedKey(key) {
		return MenuActionQuit
	}
	switch key {
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
