// Package app implements the application layer for extprune.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/extprune/internal/adapters/report"
	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/core/ports"
	"go.trai.ch/extprune/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// Dirs resolves the user's directories used for default locations.
type Dirs struct {
	Home   func() (string, error)
	Config func() (string, error)
	Cache  func() (string, error)
}

// OSDirs returns the Dirs of the current user.
func OSDirs() Dirs {
	return Dirs{
		Home:   os.UserHomeDir,
		Config: os.UserConfigDir,
		Cache:  os.UserCacheDir,
	}
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	keepLoader   ports.KeepListLoader
	inventory    ports.Inventory
	reconciler   *reconciler.Reconciler
	hasher       ports.Fingerprinter
	openHistory  ports.HistoryOpener
	logger       ports.Logger
	telemetry    ports.Telemetry

	stdout io.Writer
	dirs   Dirs
	now    func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	keepLoader ports.KeepListLoader,
	inventory ports.Inventory,
	rec *reconciler.Reconciler,
	hasher ports.Fingerprinter,
	openHistory ports.HistoryOpener,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		keepLoader:   keepLoader,
		inventory:    inventory,
		reconciler:   rec,
		hasher:       hasher,
		openHistory:  openHistory,
		logger:       log,
		telemetry:    telemetry,
		stdout:       os.Stdout,
		dirs:         OSDirs(),
		now:          time.Now,
	}
}

// WithOutput sets the writer reports are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDirs overrides how the user's directories are resolved.
func (a *App) WithDirs(d Dirs) *App {
	a.dirs = d
	return a
}

// WithClock overrides the clock used to timestamp run history.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// PruneOptions configuration for the Prune method.
type PruneOptions struct {
	// ConfigPath is an explicit settings file. Empty means the default location.
	ConfigPath      string
	ExtensionsDir   string
	DryRun          bool
	Verbose         bool
	KeepAllVersions bool
	// Progress prints the recorded removal progress after the run.
	Progress bool
}

// Prune removes every installed extension that is not in the keep file, and
// every superseded version of those that are.
func (a *App) Prune(ctx context.Context, keepFile string, opts PruneOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	keep, err := a.keepLoader.Load(keepFile)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(a.stdout, opts.Verbose)
	renderer.OnKeepListLoaded(keepFile, keep)

	dir, err := a.extensionsDir(opts.ExtensionsDir, settings)
	if err != nil {
		return err
	}

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
		}
	}()

	rep, err := a.reconciler.Run(ctx, keep, reconciler.Options{
		ExtensionsDir:   dir,
		KeepAllVersions: opts.KeepAllVersions || settings.KeepAllVersions,
		DryRun:          opts.DryRun,
	}, renderer)
	if err != nil {
		return err
	}

	if opts.Progress {
		a.writeProgress()
	}
	a.recordHistory(settings, rep)

	if rep.HasFailures() {
		return domain.ErrRemovalFailed
	}
	return nil
}

// HistoryOptions configuration for the History method.
type HistoryOptions struct {
	ConfigPath    string
	ExtensionsDir string
}

// History prints the last run recorded for the extensions directory and whether
// its contents changed since.
func (a *App) History(ctx context.Context, opts HistoryOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	dir, err := a.extensionsDir(opts.ExtensionsDir, settings)
	if err != nil {
		return err
	}

	store, err := a.historyStore(settings)
	if err != nil {
		return err
	}

	rec, err := store.Get(dir)
	if err != nil {
		return err
	}
	if rec == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoHistory, "nothing to show"), "path", dir)
	}

	state := report.InventoryUnknown
	names, err := a.inventory.List(ctx, dir)
	switch {
	case err != nil:
		a.logger.Warn(fmt.Sprintf("cannot compare with current inventory: %v", err))
	case a.hasher.Fingerprint(names) == rec.Fingerprint:
		state = report.InventoryUnchanged
	default:
		state = report.InventoryChanged
	}

	return report.WriteHistory(a.stdout, rec, state)
}

// loadSettings reads the settings file. A missing file at the default location
// yields empty settings; a missing explicit file is an error.
func (a *App) loadSettings(explicit string) (*domain.Settings, error) {
	path := explicit
	if path == "" {
		configDir, err := a.dirs.Config()
		if err != nil {
			return &domain.Settings{}, nil
		}
		path = domain.DefaultSettingsPath(configDir)
	}

	settings, err := a.configLoader.Load(path)
	if err != nil {
		if explicit == "" && errors.Is(err, fs.ErrNotExist) {
			return &domain.Settings{}, nil
		}
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

func (a *App) extensionsDir(flag string, settings *domain.Settings) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if settings.ExtensionsDir != "" {
		return settings.ExtensionsDir, nil
	}

	home, err := a.dirs.Home()
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrHomeDirUnavailable, "cannot locate extensions directory"), "detail", err.Error())
	}
	return domain.DefaultExtensionsDir(home), nil
}

func (a *App) historyStore(settings *domain.Settings) (ports.HistoryStore, error) {
	path := settings.HistoryFile
	if path == "" {
		cacheDir, err := a.dirs.Cache()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrHistoryReadFailed, "cannot locate history file"), "detail", err.Error())
		}
		path = domain.DefaultHistoryPath(cacheDir)
	}
	return a.openHistory(path)
}

// writeProgress prints what the telemetry recorded, when it can print itself.
func (a *App) writeProgress() {
	progress, ok := a.telemetry.(io.WriterTo)
	if !ok {
		return
	}
	if _, err := progress.WriteTo(a.stdout); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to print removal progress: %v", err))
	}
}

// recordHistory stores the run. Failures only produce a warning.
func (a *App) recordHistory(settings *domain.Settings, rep *domain.Report) {
	store, err := a.historyStore(settings)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("run history not saved: %v", err))
		return
	}

	rec := domain.NewRunRecord(rep, a.hasher.Fingerprint(remaining(rep)), a.now().UTC())
	if err := store.Put(rec); err != nil {
		a.logger.Warn(fmt.Sprintf("run history not saved: %v", err))
	}
}

// remaining returns the raw names expected in the directory after the run.
func remaining(rep *domain.Report) []string {
	names := make([]string, 0, len(rep.Decisions))
	if rep.DryRun {
		for _, d := range rep.Decisions {
			names = append(names, d.Entry.RawName)
		}
		return names
	}

	for _, e := range rep.Kept {
		names = append(names, e.RawName)
	}
	for _, f := range rep.Failures {
		names = append(names, f.Entry.RawName)
	}
	return names
}
