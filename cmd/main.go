package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"podlinks/internal/config"
	"podlinks/internal/feed"
	"podlinks/internal/pages"
	"podlinks/internal/rss"
)

const feedFileName = "generated_feed.xml"

var cli struct {
	FeedURLs  string `name:"feed-urls" help:"Whitespace-separated podcast feed URLs (overrides FEED_URLS)."`
	DaysLimit string `name:"days-limit" help:"Include episodes from the last N days (overrides DAYS_LIMIT)."`
	OutputDir string `name:"output-dir" help:"Directory for the generated feed and pages (overrides OUTPUT_DIR)."`
	Debug     bool   `help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("podlinks"),
		kong.Description("Republishes article links from FT podcast show notes as an RSS feed and HTML pages."))

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if cli.FeedURLs != "" {
		cfg.FeedURLs = cli.FeedURLs
	}
	if cli.DaysLimit != "" {
		cfg.DaysLimit = cli.DaysLimit
	}
	if cli.OutputDir != "" {
		cfg.OutputDir = cli.OutputDir
	}

	feedURLs := cfg.ResolveFeedURLs()
	daysLimit := cfg.ResolveDaysLimit()
	cutoff := time.Now().Add(-time.Duration(daysLimit) * 24 * time.Hour)

	log.InfoContext(ctx, "Collecting article links",
		"feedURLs", feedURLs,
		"daysLimit", daysLimit,
		"outputDir", cfg.OutputDir)

	aggregator := feed.NewAggregator(log)

	items, episodes, err := aggregator.Aggregate(ctx, feedURLs, cutoff)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch some feeds",
			"error", err,
			"episodeCount", len(episodes))
	}

	feedXML, err := rss.Render(items, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "Failed to render feed",
			"error", err,
			"itemCount", len(items))

		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.ErrorContext(ctx, "Failed to create output directory",
			"error", err,
			"outputDir", cfg.OutputDir)

		os.Exit(1)
	}

	feedPath := filepath.Join(cfg.OutputDir, feedFileName)
	if err := os.WriteFile(feedPath, []byte(feedXML), 0644); err != nil {
		log.ErrorContext(ctx, "Failed to write feed",
			"error", err,
			"path", feedPath)

		os.Exit(1)
	}
	log.InfoContext(ctx, "Feed is written",
		"path", feedPath,
		"itemCount", len(items))

	pageCount, err := pages.Write(episodes, cfg.OutputDir, pages.DefaultPerPage)
	if err != nil {
		log.ErrorContext(ctx, "Failed to write HTML pages",
			"error", err,
			"outputDir", cfg.OutputDir)

		os.Exit(1)
	}
	log.InfoContext(ctx, "HTML pages are written",
		"outputDir", cfg.OutputDir,
		"pageCount", pageCount,
		"episodeCount", len(episodes),
		"elapsedSeconds", time.Since(start).Seconds())
}
