// Command fotz-pdf serves the FOTZ ebook generation API over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"

	fotzpdf "github.com/adam420412/fotz-pdf-microservice"
	"github.com/adam420412/fotz-pdf-microservice/internal/config"
)

const shutdownGrace = 10 * time.Second

func main() {
	configPath := pflag.StringP("config", "c", "", "path to YAML config file")
	addr := pflag.String("addr", "", "listen address (overrides config)")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *addr, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(configPath, addrFlag string, logger *slog.Logger) error {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Listen address precedence: PORT env (platform convention), then the
	// --addr flag, then config.
	addr := cfg.Server.Addr
	if addrFlag != "" {
		addr = addrFlag
	}
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	opts := []fotzpdf.Option{
		fotzpdf.WithTheme(fotzpdf.Theme{
			Primary:   cfg.Theme.PrimaryColor,
			Secondary: cfg.Theme.SecondaryColor,
			Accent:    cfg.Theme.AccentColor,
		}),
		fotzpdf.WithFetchTimeout(cfg.FetchTimeout()),
		fotzpdf.WithRenderTimeout(cfg.RenderTimeout()),
	}
	if len(cfg.Normalizer.ProperNouns) > 0 {
		opts = append(opts, fotzpdf.WithProperNouns(cfg.Normalizer.ProperNouns))
	}
	if cfg.Normalizer.SuffixAlphabet != "" || cfg.Normalizer.SuffixWindow > 0 {
		opts = append(opts, fotzpdf.WithSuffixMatching(cfg.Normalizer.SuffixAlphabet, cfg.Normalizer.SuffixWindow))
	}

	svc := fotzpdf.New(opts...)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("service close", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:    addr,
		Handler: newServer(svc, logger).routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return nil
}
