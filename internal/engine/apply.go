package engine

import (
	"fmt"
	"log/slog"

	"github.com/Pure-Winter-hue/Random-Start-Date/internal/config"
	"github.com/Pure-Winter-hue/Random-Start-Date/internal/host"
)

// Applier runs the once-per-save start date pass against the host
// collaborators. A nil Calendar means the host has no calendar for this
// save; the pass then skips silently.
type Applier struct {
	Calendar host.Calendar
	Config   host.ConfigStore
	Saves    host.SaveStore
	Random   host.RandomSource

	// cfg caches the normalized settings after the first load; settings are
	// read at most once per process lifetime.
	cfg *config.StartConfig
}

// Register hooks the applier into the host lifecycle. The callback logs and
// swallows any failure, so a broken pass never blocks world loading; the
// world simply starts unmodified.
func (a *Applier) Register(lc host.Lifecycle) {
	lc.OnGameReady(func() {
		if err := a.Run(); err != nil {
			slog.Error(config.ErrApplyFailed,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err,
			)
		}
	})
}

// Run executes the start date state machine for the loaded save:
//
//	applied flag set          -> skip, permanently
//	world not at fresh start  -> skip, re-checked on next load
//	otherwise                 -> advance the calendar, then set the flag
//
// The applied flag is written only after the advance completed, so a failed
// pass can retry on the next load.
func (a *Applier) Run() error {
	if a.Calendar == nil {
		slog.Debug(config.MsgNoCalendar, config.LogKeyComponent, config.CompEngine)
		return nil
	}

	applied, err := a.Saves.GetFlag(config.SaveKeyApplied)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrFlagRead, err)
	}
	if applied {
		slog.Debug(config.MsgAlreadyApplied, config.LogKeyComponent, config.CompEngine)
		return nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	cal := Snapshot(a.Calendar)
	if !IsFreshStart(cal) {
		slog.Info(config.MsgNotFresh,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyTotalHours, cal.TotalHours,
		)
		return nil
	}

	delta := ResolveDelta(cal, cfg, a.Random)
	if delta > deltaEpsilon {
		a.Calendar.Advance(delta)
	} else {
		slog.Debug(config.MsgNoOpDelta, config.LogKeyComponent, config.CompEngine)
	}

	if err := a.Saves.SetFlag(config.SaveKeyApplied, true); err != nil {
		return err
	}

	after := DateOf(Snapshot(a.Calendar))
	slog.Info(config.MsgApplied,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDelta, delta,
		config.LogKeyMonth, after.Month+1,
		config.LogKeyDay, after.Day+1,
		config.LogKeyHour, after.Hour,
	)
	return nil
}

// loadConfig reads the persisted settings once per process, writing the
// defaults back when no settings file exists yet. Out-of-range values are
// clamped, never rejected.
func (a *Applier) loadConfig() (config.StartConfig, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}

	loaded, err := a.Config.Load()
	if err != nil {
		return config.StartConfig{}, err
	}
	if loaded == nil {
		def := config.DefaultStartConfig()
		slog.Info(config.MsgConfigDefault, config.LogKeyComponent, config.CompEngine)
		if err := a.Config.Save(def); err != nil {
			return config.StartConfig{}, err
		}
		loaded = &def
	}

	loaded.Clamp()
	a.cfg = loaded
	return *loaded, nil
}
