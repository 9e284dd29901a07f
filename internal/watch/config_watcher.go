// Package watch reloads the site configuration when its file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// ReloadFunc receives each newly loaded, valid configuration.
type ReloadFunc func(ctx context.Context, cfg *config.SiteConfig) error

// DefaultDebounce collapses bursts of editor writes into one reload.
const DefaultDebounce = 500 * time.Millisecond

// ConfigWatcher monitors the configuration file and triggers reloads
type ConfigWatcher struct {
	configPath   string
	onReload     ReloadFunc
	recorder     metrics.Recorder
	watcher      *fsnotify.Watcher
	debounceTime time.Duration

	mu           sync.Mutex
	lastSnapshot string
	stopped      bool

	stopChan   chan struct{}
	reloadChan chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// Option configures a ConfigWatcher.
type Option func(*ConfigWatcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(cw *ConfigWatcher) { cw.debounceTime = d }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(cw *ConfigWatcher) {
		if r != nil {
			cw.recorder = r
		}
	}
}

// NewConfigWatcher creates a watcher for configPath. initial is the configuration
// currently in effect; reloads producing the same snapshot are skipped.
func NewConfigWatcher(configPath string, initial *config.SiteConfig, onReload ReloadFunc, opts ...Option) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, derrors.WatchFailed(configPath, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, derrors.WatchFailed(configPath, fmt.Errorf("failed to create file watcher: %w", err))
	}

	cw := &ConfigWatcher{
		configPath:   absPath,
		onReload:     onReload,
		recorder:     metrics.NoopRecorder{},
		watcher:      watcher,
		debounceTime: DefaultDebounce,
		lastSnapshot: initial.Snapshot(),
		stopChan:     make(chan struct{}),
		reloadChan:   make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(cw)
	}
	return cw, nil
}

// Start begins monitoring the configuration file
func (cw *ConfigWatcher) Start(ctx context.Context) error {
	// Watch the directory containing the config file (more reliable than watching
	// the file directly when editors replace it on save)
	configDir := filepath.Dir(cw.configPath)
	if err := cw.watcher.Add(configDir); err != nil {
		return derrors.WatchFailed(cw.configPath, fmt.Errorf("failed to watch directory %s: %w", configDir, err))
	}

	slog.Info("Starting configuration watcher", logfields.Path(cw.configPath))

	cw.wg.Add(2)
	go cw.watchLoop(ctx)
	go cw.reloadLoop(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutines to exit.
func (cw *ConfigWatcher) Stop() error {
	var err error
	cw.stopOnce.Do(func() {
		slog.Info("Stopping configuration watcher")
		cw.mu.Lock()
		cw.stopped = true
		cw.mu.Unlock()
		close(cw.stopChan)
		err = cw.watcher.Close()
		cw.wg.Wait()
	})
	return err
}

func (cw *ConfigWatcher) watchLoop(ctx context.Context) {
	defer cw.wg.Done()
	configFile := filepath.Base(cw.configPath)

	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopChan:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.Path(event.Name), "op", event.Op.String())
				cw.triggerReload()
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (cw *ConfigWatcher) reloadLoop(ctx context.Context) {
	defer cw.wg.Done()
	var reloadTimer *time.Timer
	stopTimer := func() {
		if reloadTimer != nil {
			reloadTimer.Stop()
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-cw.stopChan:
			stopTimer()
			return
		case <-cw.reloadChan:
			stopTimer()
			reloadTimer = time.AfterFunc(cw.debounceTime, func() {
				if err := cw.Reload(ctx); err != nil {
					slog.Error("Failed to reload configuration", logfields.Error(err))
				}
			})
		}
	}
}

// triggerReload schedules a debounced reload; a pending reload absorbs new triggers.
func (cw *ConfigWatcher) triggerReload() {
	select {
	case cw.reloadChan <- struct{}{}:
	default:
	}
}

// Reload loads the configuration file and hands it to the reload callback when
// it is valid and differs from the configuration in effect.
func (cw *ConfigWatcher) Reload(ctx context.Context) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.stopped {
		return nil
	}

	start := time.Now()
	defer func() { cw.recorder.ObserveReloadDuration(time.Since(start)) }()

	cfg, err := config.Read(cw.configPath)
	if err != nil {
		cw.recorder.IncReload(metrics.ResultInvalid)
		return err
	}
	report := config.Validate(cfg)
	cw.recorder.SetConfigIssues(len(report.Issues))
	if !report.OK() {
		cw.recorder.IncReload(metrics.ResultInvalid)
		slog.Warn("Ignoring invalid configuration", logfields.Path(cw.configPath), logfields.Issues(len(report.Issues)))
		return report.Err()
	}

	snap := cfg.Snapshot()
	if snap == cw.lastSnapshot {
		cw.recorder.IncReload(metrics.ResultUnchanged)
		slog.Debug("Configuration unchanged", logfields.Snapshot(snap))
		return nil
	}

	if cw.onReload != nil {
		if err := cw.onReload(ctx, cfg); err != nil {
			cw.recorder.IncReload(metrics.ResultFailed)
			return fmt.Errorf("apply reloaded configuration: %w", err)
		}
	}
	cw.lastSnapshot = snap
	cw.recorder.IncReload(metrics.ResultSuccess)
	slog.Info("Configuration reloaded", logfields.Path(cw.configPath), logfields.Snapshot(snap))
	return nil
}
