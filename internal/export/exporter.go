// Package export renders a SiteConfig into the configuration files read by
// external site generators and writes them atomically.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/renameio/v2"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// Exporter renders a configuration for one generator.
type Exporter interface {
	// Name is the target identifier used on the command line.
	Name() string
	// FileName is the file the generator expects, relative to the output directory.
	FileName() string
	Render(cfg *config.SiteConfig) ([]byte, error)
}

var registry = map[string]Exporter{}

func register(e Exporter) { registry[e.Name()] = e }

func init() {
	register(VitePress{})
	register(Hugo{})
}

// ByName returns the exporter registered under name.
func ByName(name string) (Exporter, error) {
	e, ok := registry[name]
	if !ok {
		return nil, derrors.UnknownTarget(name)
	}
	return e, nil
}

// Names returns the registered target names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Writer writes rendered configs into a directory.
type Writer struct {
	dir      string
	recorder metrics.Recorder
	perm     os.FileMode
}

// Option configures a Writer.
type Option func(*Writer)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(w *Writer) {
		if r != nil {
			w.recorder = r
		}
	}
}

// NewWriter returns a Writer targeting dir.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{dir: dir, recorder: metrics.NoopRecorder{}, perm: 0o644}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Write renders cfg with e and atomically replaces the target file. It returns the written path.
func (w *Writer) Write(ctx context.Context, e Exporter, cfg *config.SiteConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()
	path := filepath.Join(w.dir, e.FileName())

	data, err := e.Render(cfg)
	if err != nil {
		w.recorder.IncExport(e.Name(), false)
		return "", derrors.ExportFailed(e.Name(), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		w.recorder.IncExport(e.Name(), false)
		return "", derrors.WriteFailed(path, err)
	}
	if err := renameio.WriteFile(path, data, w.perm); err != nil {
		w.recorder.IncExport(e.Name(), false)
		return "", derrors.WriteFailed(path, err)
	}

	elapsed := time.Since(start)
	w.recorder.IncExport(e.Name(), true)
	w.recorder.ObserveExportDuration(e.Name(), elapsed)
	slog.Info("Generated site configuration",
		logfields.Target(e.Name()),
		logfields.Path(path),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return path, nil
}

// WriteAll writes cfg for every named target, stopping at the first failure.
func (w *Writer) WriteAll(ctx context.Context, cfg *config.SiteConfig, targets ...string) ([]string, error) {
	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		e, err := ByName(t)
		if err != nil {
			return paths, err
		}
		p, err := w.Write(ctx, e, cfg)
		if err != nil {
			return paths, fmt.Errorf("export %s: %w", t, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
