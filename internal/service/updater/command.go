package updater

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/elpinal/rainy/internal/config"
	"github.com/elpinal/rainy/internal/domain/toolchain"
	"github.com/elpinal/rainy/internal/logger"
	"github.com/elpinal/rainy/internal/process"
)

// Options are inputs accepted by the updater entry point.
type Options struct {
	// ConfigPath is the optional path to the settings YAML file.
	ConfigPath string
	// Toolchain is the requested toolchain. It is logged only.
	Toolchain toolchain.Toolchain
	// Verbose forces debug logging regardless of the configured level.
	Verbose bool
	// Runner spawns external tools. Nil means the real processes.
	Runner process.Runner
	// LookupEnv reads environment variables. Nil means os.LookupEnv.
	LookupEnv LookupEnvFunc
}

// state is the progress of one update.
type state int

const (
	stateStart state = iota
	stateRootReady
	stateRainMLSynced
	stateRainVMSynced
	stateRainMLInstalled
	stateRainVMInstalled
	stateDone
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateRootReady:
		return "root-ready"
	case stateRainMLSynced:
		return "rain-ml-synced"
	case stateRainVMSynced:
		return "rain-vm-synced"
	case stateRainMLInstalled:
		return "rain-ml-installed"
	case stateRainVMInstalled:
		return "rain-vm-installed"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// updater holds the inputs and progress of a single update.
// It is unexported: call Run(ctx, Options).
type updater struct {
	cfg       *config.Config
	toolchain toolchain.Toolchain
	runner    process.Runner
	lookupEnv LookupEnvFunc
	state     state
}

// Run performs one update and is the public entry point for the CLI.
// The first failure is returned as-is; printing it is left to the caller.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "rainy")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.DebugKV(ctx, "Unable to load settings", "path", opts.ConfigPath, "error", err)
		return err
	}

	ctx = logger.WithLevelContext(ctx, logLevel(cfg, opts.Verbose))

	u := newUpdater(cfg, opts)
	if err = u.update(ctx); err != nil {
		logger.DebugKV(ctx, "Update failed", "state", u.state, "error", err)
		return err
	}

	return nil
}

func newUpdater(cfg *config.Config, opts *Options) *updater {
	u := &updater{
		cfg:       cfg,
		toolchain: opts.Toolchain,
		runner:    opts.Runner,
		lookupEnv: opts.LookupEnv,
	}

	if u.runner == nil {
		u.runner = process.NewExecRunner(os.Stdout, os.Stderr)
	}

	if u.lookupEnv == nil {
		u.lookupEnv = os.LookupEnv
	}

	return u
}

// logLevel picks the effective level; Verbose wins over the settings file.
func logLevel(cfg *config.Config, verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}

	level, _ := logger.ParseLogLevel(cfg.LogLevel)

	return level
}

// update runs the steps in order and stops at the first failure.
// A cancelled context stops it before the next sync or install; a running tool is left to finish.
func (u *updater) update(ctx context.Context) error {
	logger.InfoKV(ctx, "Start updating", "toolchain", u.toolchain.String())
	warnIfAlreadyRunning(ctx)

	home, err := homeDirectory(u.lookupEnv)
	if err != nil {
		return err
	}

	root, err := LocateRoot(ctx, home)
	if err != nil {
		return err
	}

	u.advance(ctx, stateRootReady)

	var (
		ml, vm = companionRepositories(u.cfg)
		mlPath = filepath.Join(root, RepoDirName, ml.name)
		vmPath = filepath.Join(root, RepoDirName, vm.name)
	)

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = u.syncRepository(ctx, ml, mlPath); err != nil {
		return err
	}

	u.advance(ctx, stateRainMLSynced)

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = u.syncRepository(ctx, vm, vmPath); err != nil {
		return err
	}

	u.advance(ctx, stateRainVMSynced)

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = u.install(ctx, Stack, mlPath, filepath.Join(root, BinDirName)); err != nil {
		return err
	}

	u.advance(ctx, stateRainMLInstalled)

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = u.install(ctx, Cargo, vmPath, root); err != nil {
		return err
	}

	u.advance(ctx, stateRainVMInstalled)
	u.advance(ctx, stateDone)

	logger.InfoKV(ctx, "Finished updating", "root", root)

	return nil
}

func (u *updater) advance(ctx context.Context, next state) {
	logger.DebugKV(ctx, "Update state changed", "from", u.state, "to", next)
	u.state = next
}
