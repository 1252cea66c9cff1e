// CLAUDE:SUMMARY CLI demo — preserves keyed islands across a simulated swap between two HTML files.
// Command domswap demonstrates island preservation across a document swap.
//
// Usage:
//
//	domswap -before a.html -after b.html            # swap with defaults
//	domswap -before a.html -after b.html -config domswap.yaml
//
// The before document is loaded into an in-memory environment, a keeper is
// attached, and a swap to the after document is performed. The merged
// document — preserved wrappers reinstated in place of their fresh
// duplicates — is written to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/net/html"

	"github.com/hazyhaar/domswap"
	"github.com/hazyhaar/domswap/dom/htmldom"
)

func main() {
	beforePath := flag.String("before", "", "path to the document before navigation")
	afterPath := flag.String("after", "", "path to the document after navigation")
	configPath := flag.String("config", "", "path to domswap.yaml config file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *beforePath == "" || *afterPath == "" {
		fmt.Fprintln(os.Stderr, "usage: domswap -before <file> -after <file> [-config <file>]")
		os.Exit(2)
	}

	if err := run(logger, *beforePath, *afterPath, *configPath); err != nil {
		logger.Error("domswap: fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, beforePath, afterPath, configPath string) error {
	cfg := &domswap.Config{}
	if configPath != "" {
		loaded, err := domswap.LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	env, err := parseFile(beforePath)
	if err != nil {
		return err
	}
	next, err := parseDoc(afterPath)
	if err != nil {
		return err
	}

	k := domswap.New(env, cfg, logger)
	k.Init()
	defer k.Destroy()

	env.Swap(next, cfg.BeforeEvent, cfg.AfterEvent)

	stats := k.Stats()
	logger.Info("domswap: swap complete",
		"held", stats.Held, "pending_snapshots", stats.PendingSnapshots,
		"rejected", stats.Rejected, "collisions", stats.Collisions)

	return env.Render(os.Stdout)
}

func parseFile(path string) (*htmldom.Env, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmldom.Parse(f)
}

func parseDoc(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return html.Parse(f)
}
