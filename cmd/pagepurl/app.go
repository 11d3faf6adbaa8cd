package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/pagepurl"
	_ "github.com/git-pkgs/pagepurl/all"
	"github.com/git-pkgs/pagepurl/config"
	"github.com/git-pkgs/pagepurl/fetch"
)

// app holds what every subcommand needs once flags and config are merged.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	if err := cfg.Register(pagepurl.DefaultCatalog()); err != nil {
		return nil, err
	}
	if n := len(cfg.Registries); n > 0 {
		logger.Debug("registered configured registries", "count", n)
	}

	return &app{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func (a *app) fetcher() *fetch.CircuitBreakerFetcher {
	f := fetch.NewFetcher(
		fetch.WithUserAgent(a.cfg.Fetch.UserAgent),
		fetch.WithTimeout(a.cfg.Fetch.Timeout),
		fetch.WithMaxRetries(a.cfg.Fetch.MaxRetries),
		fetch.WithLogger(a.logger),
	)
	return fetch.NewCircuitBreakerFetcher(f)
}

func (a *app) identifier() *pagepurl.Identifier {
	return pagepurl.NewIdentifier(pagepurl.WithLogger(a.logger))
}

func (a *app) jsonOutput() bool {
	return strings.EqualFold(a.cfg.Output, "json")
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readHTML(path string) (*pagepurl.HTMLDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return pagepurl.NewHTMLDocument(f)
}
