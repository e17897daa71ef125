package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-countryselect/components/countries"
	"github.com/goliatone/go-countryselect/pkg/render"
	"github.com/goliatone/go-countryselect/pkg/selection"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr        string `help:"Listen address (overrides config)"`
	BasePath    string `name:"base-path" help:"Path prefix for every route (overrides config)"`
	MetricsPath string `name:"metrics-path" help:"Path of the Prometheus endpoint (overrides config)"`
}

func (s *ServeCmd) Run(g *Global) error {
	if s.Addr != "" {
		g.Config.Server.Addr = s.Addr
	}
	if s.BasePath != "" {
		g.Config.Server.BasePath = s.BasePath
	}
	if s.MetricsPath != "" {
		g.Config.Server.MetricsPath = s.MetricsPath
	}

	handler, err := NewServerHandler(g, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              g.Config.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		g.Logger.WithField("addr", srv.Addr).Info("countryselect server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := time.Duration(g.Config.Server.ShutdownTimeout) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	g.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// NewServerHandler wires the catalog endpoint, the field render routes, the
// metrics endpoint and a health check onto a fresh mux.
func NewServerHandler(g *Global, reg *prometheus.Registry) (http.Handler, error) {
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := countries.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	basePath := strings.TrimRight(g.Config.Server.BasePath, "/")
	mux := http.NewServeMux()

	component := countries.New(
		countries.WithTranslator(g.Translator),
		countries.WithDefaultLocale(g.Config.Locale),
		countries.WithMetrics(metrics),
		countries.WithLogger(g.Logger),
	)
	endpoint, err := component.Mount(mux, basePath)
	if err != nil {
		return nil, err
	}
	g.Logger.WithFields(logrus.Fields{
		"url":     endpoint.URL,
		"results": endpoint.ResultsPath,
	}).Info("country catalog mounted")

	renderer, err := newRenderer(g)
	if err != nil {
		return nil, err
	}
	mux.Handle("GET "+basePath+"/fields/{handle}", fieldHandler(g, renderer))

	metricsPath := g.Config.Server.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle(metricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET "+basePath+"/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux, nil
}

// fieldHandler renders a configured field. The stored value comes from the
// "value" query parameter; "namespace" and "placeholder" map to the render
// options.
func fieldHandler(g *Global, renderer *render.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handle := r.PathValue("handle")
		f, ok := g.Config.Field(handle)
		if !ok {
			http.Error(w, fmt.Sprintf("unknown field %q", handle), http.StatusNotFound)
			return
		}

		query := r.URL.Query()
		value := selection.Normalize(query.Get("value"), g.Catalog(), f.Multi())
		html, err := renderer.Render(r.Context(), f, value, render.RenderOptions{
			Namespace:   query.Get("namespace"),
			Placeholder: query.Get("placeholder"),
		})
		if err != nil {
			g.Logger.WithError(err).WithField("field", handle).Error("render field")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", renderer.ContentType())
		_, _ = w.Write([]byte(html))
	})
}
