package config

import (
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"mvdan.cc/xurls/v2"
)

// DefaultDaysLimit is the episode age cutoff applied when DAYS_LIMIT is
// unset or unusable.
const DefaultDaysLimit = 5

// DefaultFeedURLs are the FT podcast feeds read when FEED_URLS is unset.
var DefaultFeedURLs = []string{
	"https://feeds.acast.com/public/shows/ft-tech-tonic",
	"https://feeds.acast.com/public/shows/ftnewsbriefing",
}

var feedURLRe = xurls.Strict()

// Config carries the raw environment values. DAYS_LIMIT stays a string so
// that unusable values can fall back silently instead of failing the parse.
type Config struct {
	FeedURLs  string `env:"FEED_URLS"`
	DaysLimit string `env:"DAYS_LIMIT"`
	OutputDir string `env:"OUTPUT_DIR" envDefault:"output"`
}

func LoadConfig() Config {
	var cfg Config
	env.Must(cfg, env.Parse(&cfg))
	return cfg
}

// ResolveFeedURLs mines FEED_URLS for absolute URLs, keeping first
// occurrences in order. Unset, blank and URL-free values all fall back to
// the default feeds.
func (c Config) ResolveFeedURLs() []string {
	raw := strings.TrimSpace(c.FeedURLs)
	if raw == "" {
		return DefaultFeedURLs
	}

	var urls []string
	seen := make(map[string]struct{})

	for _, u := range feedURLRe.FindAllString(raw, -1) {
		trimmed := strings.TrimSpace(u)
		if trimmed == "" {
			continue
		}

		if _, ok := seen[trimmed]; ok {
			continue
		}

		urls = append(urls, trimmed)
		seen[trimmed] = struct{}{}
	}

	if len(urls) == 0 {
		return DefaultFeedURLs
	}

	return urls
}

// ResolveDaysLimit parses DAYS_LIMIT as a positive day count. Empty,
// non-numeric and sub-1 values silently fall back to DefaultDaysLimit.
func (c Config) ResolveDaysLimit() int {
	raw := strings.TrimSpace(c.DaysLimit)
	if raw == "" {
		return DefaultDaysLimit
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return DefaultDaysLimit
	}

	return days
}
