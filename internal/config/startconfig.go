package config

// StartConfig is the persisted mod settings record. It is the JSON schema of
// the settings file managed through the host's config API: each calendar
// component is either randomized or pinned to a fixed value.
type StartConfig struct {
	// RandomizeMonth draws the start month uniformly; FixedMonth (1..12) is
	// used otherwise.
	RandomizeMonth bool `json:"randomizeMonth"`
	FixedMonth     int  `json:"fixedMonth"`

	// RandomizeDay draws the start day uniformly over the live calendar's
	// month length; FixedDay (1-based) is used otherwise and re-clamped
	// against the month length at resolution time.
	RandomizeDay bool `json:"randomizeDay"`
	FixedDay     int  `json:"fixedDay"`

	// RandomizeHour draws the start hour uniformly over the live calendar's
	// day length; FixedHour (0..23) is used otherwise.
	RandomizeHour bool `json:"randomizeHour"`
	FixedHour     int  `json:"fixedHour"`
}

// DefaultStartConfig returns the settings written back when no settings file
// exists yet: everything randomized, with sane fixed fallbacks.
func DefaultStartConfig() StartConfig {
	return StartConfig{
		RandomizeMonth: true,
		FixedMonth:     DefaultFixedMonth,
		RandomizeDay:   true,
		FixedDay:       DefaultFixedDay,
		RandomizeHour:  true,
		FixedHour:      DefaultFixedHour,
	}
}

// Clamp forces persisted values back into their documented ranges. Malformed
// settings are corrected, never rejected. The upper bounds for day and hour
// against the live calendar geometry are applied later, at resolution time.
func (c *StartConfig) Clamp() {
	if c.FixedMonth < MinMonth {
		c.FixedMonth = MinMonth
	}
	if c.FixedMonth > MaxMonth {
		c.FixedMonth = MaxMonth
	}
	if c.FixedDay < MinDay {
		c.FixedDay = MinDay
	}
	if c.FixedHour < MinHour {
		c.FixedHour = MinHour
	}
	if c.FixedHour > MaxHour {
		c.FixedHour = MaxHour
	}
}
