// Package host defines the collaborator boundary between the mod and the
// game engine: the in-game calendar, the config and save-state stores, the
// random source and the lifecycle hook. It also ships the file-backed
// implementations used by the development harness, so the mod can be
// exercised without the game.
package host

import "github.com/Pure-Winter-hue/Random-Start-Date/internal/config"

// Calendar exposes the host engine's in-game calendar.
type Calendar interface {
	// HoursPerDay is the length of an in-game day, typically 24.
	HoursPerDay() float64

	// DaysPerMonth is the host-configurable month length, typically 9.
	DaysPerMonth() int

	// TotalHours is the monotonically non-decreasing elapsed-hours counter
	// since world creation.
	TotalHours() float64

	// Advance moves the calendar forward. Callers never pass a negative
	// value; the forward-only guarantee lives on their side.
	Advance(hours float64)
}

// ConfigStore persists the mod settings through the host's config API.
// Load returns (nil, nil) when no settings file exists yet.
type ConfigStore interface {
	Load() (*config.StartConfig, error)
	Save(cfg config.StartConfig) error
}

// SaveStore is the host's save-scoped key/value store. An absent key reads
// as false.
type SaveStore interface {
	GetFlag(key string) (bool, error)
	SetFlag(key string, value bool) error
}

// RandomSource abstracts the host's RNG for deterministic testing.
type RandomSource interface {
	// UniformInt draws uniformly from [low, high); high is exclusive.
	UniformInt(low, high int) int
}

// Lifecycle registers callbacks for the host's game-ready event, which
// fires once per process after the save is loaded and strictly before any
// player may connect.
type Lifecycle interface {
	OnGameReady(fn func())
}
