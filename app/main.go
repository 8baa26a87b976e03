package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alastairrushworth/meditation/app/cfg"
	"github.com/alastairrushworth/meditation/app/config"
	"github.com/alastairrushworth/meditation/app/feed"
	"github.com/alastairrushworth/meditation/app/page"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)

	sources, err := config.NewLoader(appCfg.FeedsFile).Load()
	if err != nil {
		slog.Error("Failed to load feeds file", "file", appCfg.FeedsFile, "error", err)
		os.Exit(1)
	}
	slog.Debug("Feed list loaded", "file", appCfg.FeedsFile, "feeds", len(sources))

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.FetchTimeout) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			MaxIdleConnsPerHost: 5,
		},
	}

	processor := feed.NewProcessor(httpClient, feed.NewParser(), feed.NewClassifier(), feed.NewExtractor())

	// Feeds are processed sequentially; one failing feed contributes zero
	// records and never aborts the run
	ctx := context.Background()
	records := make([]feed.Record, 0)
	for _, source := range sources {
		found, err := processor.Run(ctx, source)
		if err != nil {
			fmt.Printf("  Error fetching %s: %v\n", source.Name, err)
			continue
		}
		records = append(records, found...)
	}

	renderer := page.NewRenderer()
	html, err := renderer.Run(records)
	if err != nil {
		slog.Error("Failed to render page", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(appCfg.OutputFile, []byte(html), 0644); err != nil {
		slog.Error("Failed to write output file", "file", appCfg.OutputFile, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d meditations\n", appCfg.OutputFile, len(records))
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
