package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/export"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Target      []string      `short:"t" default:"vitepress" enum:"vitepress,hugo" help:"Generator to export for (repeatable)"`
	Output      string        `short:"o" default:"." help:"Output directory"`
	Debounce    time.Duration `default:"500ms" help:"Delay before reloading after a change"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

func (w *WatchCmd) Run(root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, root)
}

func (w *WatchCmd) run(ctx context.Context, root *CLI) error {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var srv *http.Server
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		srv = &http.Server{Addr: w.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			slog.Info("Serving metrics", "addr", w.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	writer := export.NewWriter(w.Output, export.WithRecorder(recorder))
	if _, err := writer.WriteAll(ctx, cfg, w.Target...); err != nil {
		return err
	}

	onReload := func(ctx context.Context, next *config.SiteConfig) error {
		_, err := writer.WriteAll(ctx, next, w.Target...)
		return err
	}
	cw, err := watch.NewConfigWatcher(root.Config, cfg, onReload,
		watch.WithDebounce(w.Debounce), watch.WithRecorder(recorder))
	if err != nil {
		return err
	}
	if err := cw.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping watcher")
	return cw.Stop()
}
