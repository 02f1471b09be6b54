package config_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pure-Winter-hue/Random-Start-Date/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or
// malformed. This prevents accidental deletion of keys required at runtime.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ConfigFileName", config.ConfigFileName},
		{"SaveKeyApplied", config.SaveKeyApplied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}

	assert.True(t, strings.HasSuffix(config.ConfigFileName, ".json"),
		"The settings file is a JSON document managed by the host config API")
}

// TestFreshStartConstants_Sanity pins the engine-default start position the
// detection heuristic depends on.
func TestFreshStartConstants_Sanity(t *testing.T) {
	assert.Equal(t, 12, config.MonthsPerYear, "The host calendar has a fixed 12-month year")
	assert.Equal(t, 4, config.FreshStartMonthIndex, "New worlds start in the 5th month (index 4)")
	assert.GreaterOrEqual(t, config.FreshStartMonthIndex, 0)
	assert.Less(t, config.FreshStartMonthIndex, config.MonthsPerYear)
	assert.Greater(t, config.FreshStartWindowHours, 0.0, "The detection window must be non-degenerate")
	assert.LessOrEqual(t, config.FreshStartWindowHours, config.DefaultHoursPerDay/2,
		"The window must stay inside the first half of a stock day")
}

// TestDefaultStartConfig verifies the settings written back when no file
// exists yet.
func TestDefaultStartConfig(t *testing.T) {
	def := config.DefaultStartConfig()

	assert.True(t, def.RandomizeMonth)
	assert.True(t, def.RandomizeDay)
	assert.True(t, def.RandomizeHour)
	assert.Equal(t, 1, def.FixedMonth)
	assert.Equal(t, 1, def.FixedDay)
	assert.Equal(t, 6, def.FixedHour)
}

// TestStartConfigClamp covers correction of malformed persisted values;
// settings are clamped, never rejected.
func TestStartConfigClamp(t *testing.T) {
	tests := []struct {
		name     string
		input    config.StartConfig
		expected config.StartConfig
		desc     string
	}{
		{
			name:     "In-range values untouched",
			input:    config.StartConfig{FixedMonth: 7, FixedDay: 20, FixedHour: 23},
			expected: config.StartConfig{FixedMonth: 7, FixedDay: 20, FixedHour: 23},
			desc:     "Day has no upper bound at load time; the live month length clamps it later",
		},
		{
			name:     "Month above range",
			input:    config.StartConfig{FixedMonth: 15, FixedDay: 1, FixedHour: 0},
			expected: config.StartConfig{FixedMonth: 12, FixedDay: 1, FixedHour: 0},
			desc:     "fixedMonth=15 must clamp to 12 before any resolution",
		},
		{
			name:     "Everything below range",
			input:    config.StartConfig{FixedMonth: -3, FixedDay: 0, FixedHour: -1},
			expected: config.StartConfig{FixedMonth: 1, FixedDay: 1, FixedHour: 0},
			desc:     "Month and day are 1-based, hour is 0-based",
		},
		{
			name:     "Hour above range",
			input:    config.StartConfig{FixedMonth: 1, FixedDay: 1, FixedHour: 99},
			expected: config.StartConfig{FixedMonth: 1, FixedDay: 1, FixedHour: 23},
			desc:     "Hour clamps to the stock 24h day at load time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			cfg.Clamp()
			assert.Equal(t, tt.expected, cfg, tt.desc)
		})
	}
}

// TestStartConfigJSONSchema pins the persisted field names; renaming one
// would orphan existing settings files.
func TestStartConfigJSONSchema(t *testing.T) {
	raw, err := json.Marshal(config.DefaultStartConfig())
	assert.NoError(t, err)

	for _, field := range []string{
		"randomizeMonth", "fixedMonth",
		"randomizeDay", "fixedDay",
		"randomizeHour", "fixedHour",
	} {
		assert.Contains(t, string(raw), `"`+field+`"`)
	}
}
