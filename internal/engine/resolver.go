// Package engine resolves the one-time start date for a freshly created
// world: it detects whether a save still sits at the engine's default
// new-world calendar position and, if so, computes the forward-only hour
// delta that lands the calendar on the configured or randomized start date.
package engine

import (
	"math"

	"github.com/Pure-Winter-hue/Random-Start-Date/internal/config"
	"github.com/Pure-Winter-hue/Random-Start-Date/internal/host"
)

// deltaEpsilon absorbs floating-point drift when comparing calendar
// positions. Deltas at or below it are treated as "already there".
const deltaEpsilon = 0.001

// CalendarState is a read-only snapshot of the host calendar. Callers clamp
// HoursPerDay and DaysPerMonth to at least 1 before handing it to the
// resolver functions; Snapshot does this for live calendars.
type CalendarState struct {
	HoursPerDay  float64
	DaysPerMonth int
	TotalHours   float64
}

// Snapshot reads the live calendar, clamping degenerate geometry so the
// resolver math never divides by zero.
func Snapshot(cal host.Calendar) CalendarState {
	hpd := cal.HoursPerDay()
	if hpd < 1 {
		hpd = 1
	}
	dpm := cal.DaysPerMonth()
	if dpm < 1 {
		dpm = 1
	}
	return CalendarState{
		HoursPerDay:  hpd,
		DaysPerMonth: dpm,
		TotalHours:   cal.TotalHours(),
	}
}

func (c CalendarState) monthHours() float64 {
	return float64(c.DaysPerMonth) * c.HoursPerDay
}

func (c CalendarState) yearHours() float64 {
	return config.MonthsPerYear * c.monthHours()
}

// Date is the month/day/hour decomposition of a calendar position. Month
// and Day are 0-based indices; HoursIntoDay keeps the fractional remainder
// that Hour truncates.
type Date struct {
	Month        int
	Day          int
	Hour         int
	HoursIntoDay float64
}

// DateOf breaks the elapsed-hours counter into its position within the
// in-game year.
func DateOf(cal CalendarState) Date {
	monthHours := cal.monthHours()
	posInYear := math.Mod(cal.TotalHours, cal.yearHours())
	month := int(posInYear / monthHours)

	hoursIntoMonth := cal.TotalHours - math.Floor(cal.TotalHours/monthHours)*monthHours
	day := int(hoursIntoMonth / cal.HoursPerDay)
	hoursIntoDay := hoursIntoMonth - float64(day)*cal.HoursPerDay

	return Date{Month: month, Day: day, Hour: int(hoursIntoDay), HoursIntoDay: hoursIntoDay}
}

// IsFreshStart reports whether the calendar still sits at the engine's
// default new-world position: day 0 of month config.FreshStartMonthIndex,
// less than config.FreshStartWindowHours into the day. The half-day window
// tolerates minor engine-side initialization drift.
func IsFreshStart(cal CalendarState) bool {
	d := DateOf(cal)
	return d.Month == config.FreshStartMonthIndex &&
		d.Day == 0 &&
		d.HoursIntoDay < config.FreshStartWindowHours
}

// ResolveDelta computes the number of in-game hours to advance the calendar
// so it lands on the configured (or randomized) start date. A target that
// has already elapsed within the current year rolls over to the following
// year, so the result never moves the calendar backward.
func ResolveDelta(cal CalendarState, cfg config.StartConfig, rng host.RandomSource) float64 {
	monthIndex := clampInt(cfg.FixedMonth-1, 0, config.MonthsPerYear-1)
	if cfg.RandomizeMonth {
		monthIndex = rng.UniformInt(0, config.MonthsPerYear)
	}

	dayIndex := clampInt(cfg.FixedDay-1, 0, cal.DaysPerMonth-1)
	if cfg.RandomizeDay {
		dayIndex = rng.UniformInt(0, cal.DaysPerMonth)
	}

	maxHour := int(math.Floor(cal.HoursPerDay))
	if maxHour < 1 {
		maxHour = 1
	}
	hour := clampInt(cfg.FixedHour, 0, maxHour-1)
	if cfg.RandomizeHour {
		hour = rng.UniformInt(0, maxHour)
	}

	monthHours := cal.monthHours()
	yearHours := cal.yearHours()
	targetThisYear := float64(monthIndex)*monthHours + float64(dayIndex)*cal.HoursPerDay + float64(hour)

	now := cal.TotalHours
	yearsPassed := math.Floor(now / yearHours)
	curYearStart := yearsPassed * yearHours

	targetAbs := curYearStart + targetThisYear
	if now-curYearStart > targetThisYear-deltaEpsilon {
		// Target already elapsed this year; take it next year instead.
		targetAbs = (yearsPassed+1)*yearHours + targetThisYear
	}
	return targetAbs - now
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
