package core

import "time"

// Fallbacks applied by Normalized.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size, the simulation rate and the seed for its randomizer.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 picks a time-based seed in Normalized
}

// DefaultConfig returns an 80x24 config at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Normalized fills unset fields. A zero seed becomes the current time, so
// two normalized configs only replay the same game when a seed was given.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Reseeded returns c with a fresh time-based seed, for restarts.
func (c RuntimeConfig) Reseeded() RuntimeConfig {
	c.Seed = time.Now().UnixNano()
	return c
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	Lines    int // lines cleared so far
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State   GameState
	Cleared int  // lines cleared on this tick
	Locked  bool // a piece locked on this tick
}
