package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Pure-Winter-hue/Random-Start-Date/internal/config"
)

// World describes a simulated save for the development harness: the
// calendar geometry and the elapsed-hours counter the host would normally
// provide after deserializing a save.
type World struct {
	SaveID       string  `yaml:"save_id"`
	HoursPerDay  float64 `yaml:"hours_per_day"`
	DaysPerMonth int     `yaml:"days_per_month"`
	TotalHours   float64 `yaml:"total_hours"`
}

// LoadWorld reads a world descriptor file. Absent fields fall back to the
// host engine's stock calendar; non-positive geometry is clamped to 1.
func LoadWorld(path string) (World, error) {
	var w World
	raw, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("%s: %w", config.ErrWorldRead, err)
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("%s: %w", config.ErrWorldParse, err)
	}
	w.normalize()
	return w, nil
}

func (w *World) normalize() {
	if w.SaveID == "" {
		w.SaveID = config.DefaultSaveID
	}
	if w.HoursPerDay == 0 {
		w.HoursPerDay = config.DefaultHoursPerDay
	}
	if w.HoursPerDay < 1 {
		w.HoursPerDay = 1
	}
	if w.DaysPerMonth == 0 {
		w.DaysPerMonth = config.DefaultDaysPerMonth
	}
	if w.DaysPerMonth < 1 {
		w.DaysPerMonth = 1
	}
	if w.TotalHours < 0 {
		w.TotalHours = 0
	}
}

// WorldCalendar is the mutable in-memory calendar backing the harness. It
// stands in for the host engine's calendar service.
type WorldCalendar struct {
	hoursPerDay  float64
	daysPerMonth int
	totalHours   float64
}

// NewWorldCalendar builds a calendar from a normalized world descriptor.
func NewWorldCalendar(w World) *WorldCalendar {
	return &WorldCalendar{
		hoursPerDay:  w.HoursPerDay,
		daysPerMonth: w.DaysPerMonth,
		totalHours:   w.TotalHours,
	}
}

func (c *WorldCalendar) HoursPerDay() float64 { return c.hoursPerDay }

func (c *WorldCalendar) DaysPerMonth() int { return c.daysPerMonth }

func (c *WorldCalendar) TotalHours() float64 { return c.totalHours }

// Advance moves the elapsed-hours counter forward.
func (c *WorldCalendar) Advance(hours float64) {
	c.totalHours += hours
}

// Hooks is the harness Lifecycle: it collects registered callbacks and runs
// them once when the simulated save finishes loading.
type Hooks struct {
	ready []func()
}

// OnGameReady registers a callback for the game-ready event.
func (h *Hooks) OnGameReady(fn func()) {
	h.ready = append(h.ready, fn)
}

// FireGameReady runs the registered callbacks in registration order, then
// drops them; the event fires at most once per process lifetime.
func (h *Hooks) FireGameReady() {
	for _, fn := range h.ready {
		fn()
	}
	h.ready = nil
}
