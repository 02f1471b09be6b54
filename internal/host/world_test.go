package host_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pure-Winter-hue/Random-Start-Date/internal/host"
)

func writeWorldFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadWorld(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected host.World
		desc     string
	}{
		{
			name: "Fully specified",
			content: `save_id: highlands
hours_per_day: 24
days_per_month: 9
total_hours: 864
`,
			expected: host.World{SaveID: "highlands", HoursPerDay: 24, DaysPerMonth: 9, TotalHours: 864},
			desc:     "All fields carried through unchanged",
		},
		{
			name:     "Empty descriptor falls back to stock geometry",
			content:  "{}\n",
			expected: host.World{SaveID: "world", HoursPerDay: 24, DaysPerMonth: 9, TotalHours: 0},
			desc:     "Absent fields default to the engine's stock calendar",
		},
		{
			name: "Non-positive geometry clamped",
			content: `hours_per_day: -5
days_per_month: -1
total_hours: -100
`,
			expected: host.World{SaveID: "world", HoursPerDay: 1, DaysPerMonth: 1, TotalHours: 0},
			desc:     "Degenerate values clamp to 1 so downstream math never divides by zero",
		},
		{
			name: "Fractional day length below one",
			content: `hours_per_day: 0.5
`,
			expected: host.World{SaveID: "world", HoursPerDay: 1, DaysPerMonth: 9, TotalHours: 0},
			desc:     "Sub-hour days clamp up to a single hour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := host.LoadWorld(writeWorldFile(t, tt.content))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, w, tt.desc)
		})
	}
}

func TestLoadWorld_MissingFile(t *testing.T) {
	_, err := host.LoadWorld(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWorld_MalformedYAML(t *testing.T) {
	_, err := host.LoadWorld(writeWorldFile(t, "hours_per_day: [not a number\n"))
	assert.Error(t, err)
}

func TestWorldCalendar_Advance(t *testing.T) {
	cal := host.NewWorldCalendar(host.World{SaveID: "world", HoursPerDay: 24, DaysPerMonth: 9, TotalHours: 864})

	assert.Equal(t, 24.0, cal.HoursPerDay())
	assert.Equal(t, 9, cal.DaysPerMonth())
	assert.Equal(t, 864.0, cal.TotalHours())

	cal.Advance(538)
	cal.Advance(12)
	assert.Equal(t, 864.0+538+12, cal.TotalHours(), "Advances accumulate on the elapsed-hours counter")
}

func TestHooks_FireGameReadyRunsOnce(t *testing.T) {
	hooks := &host.Hooks{}

	calls := 0
	hooks.OnGameReady(func() { calls++ })
	hooks.OnGameReady(func() { calls += 10 })

	hooks.FireGameReady()
	assert.Equal(t, 11, calls, "All registered callbacks run in order")

	hooks.FireGameReady()
	assert.Equal(t, 11, calls, "The game-ready event fires at most once per process")
}
