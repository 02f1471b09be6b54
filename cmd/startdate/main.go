package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"

	"github.com/Pure-Winter-hue/Random-Start-Date/internal/config"
	"github.com/Pure-Winter-hue/Random-Start-Date/internal/engine"
	"github.com/Pure-Winter-hue/Random-Start-Date/internal/host"
)

// harnessEnv holds process-level settings for the development harness. The
// harness stands in for the game host: it loads a world descriptor, fires
// the game-ready lifecycle event and reports where the calendar ended up.
type harnessEnv struct {
	DataDir string `env:"STARTDATE_DATA_DIR"`
	World   string `env:"STARTDATE_WORLD"`
	Seed    int64  `env:"STARTDATE_SEED"`
}

// main delegates to runMain so deferred calls run before the process exits;
// os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages argument parsing, logging setup and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	worldPath := flag.String(config.FlagWorld, "", config.FlagDescWorld)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	setupLogging(*debugMode)

	var envCfg harnessEnv
	if err := env.Parse(&envCfg); err != nil {
		slog.Error(config.ErrEnvParse,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	if envCfg.DataDir == "" {
		envCfg.DataDir = config.DefaultDataDir
	}

	// Flag beats environment beats default for the world descriptor path.
	path := *worldPath
	if path == "" {
		path = envCfg.World
	}
	if path == "" {
		path = config.DefaultWorldFile
	}

	logStartupInfo()

	if err := run(envCfg, path); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the mod against the simulated host and drives one load cycle.
func run(envCfg harnessEnv, worldPath string) error {
	world, err := host.LoadWorld(worldPath)
	if err != nil {
		return err
	}
	slog.Info(config.MsgWorldLoaded,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyPath, worldPath,
		config.LogKeySave, world.SaveID,
		config.LogKeyTotalHours, world.TotalHours,
	)

	cal := host.NewWorldCalendar(world)

	applier := &engine.Applier{
		Calendar: cal,
		Config:   host.NewFileConfigStore(envCfg.DataDir),
		Saves:    host.NewFileSaveStore(envCfg.DataDir, world.SaveID),
		Random:   host.NewRand(envCfg.Seed),
	}

	hooks := &host.Hooks{}
	applier.Register(hooks)

	slog.Info(config.MsgGameReady,
		config.LogKeyComponent, config.CompMain,
		config.LogKeySeed, envCfg.Seed,
	)
	hooks.FireGameReady()

	after := engine.DateOf(engine.Snapshot(cal))
	slog.Info(config.MsgFinalDate,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyMonth, after.Month+1,
		config.LogKeyDay, after.Day+1,
		config.LogKeyHour, after.Hour,
		config.LogKeyTotalHours, cal.TotalHours(),
	)
	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}
