package config

import (
	"slices"
	"testing"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("FEED_URLS", "https://example.com/feed.xml")
	t.Setenv("DAYS_LIMIT", "3")
	t.Setenv("OUTPUT_DIR", "out")

	cfg := LoadConfig()

	if cfg.FeedURLs != "https://example.com/feed.xml" {
		t.Fatalf("unexpected FeedURLs: %q", cfg.FeedURLs)
	}
	if cfg.DaysLimit != "3" {
		t.Fatalf("unexpected DaysLimit: %q", cfg.DaysLimit)
	}
	if cfg.OutputDir != "out" {
		t.Fatalf("unexpected OutputDir: %q", cfg.OutputDir)
	}
}

func TestLoadConfigOutputDirDefault(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "")

	cfg := LoadConfig()

	if cfg.OutputDir != "output" {
		t.Fatalf("unexpected default output dir: %q", cfg.OutputDir)
	}
}

func TestResolveFeedURLs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"unset falls back to defaults",
			"",
			DefaultFeedURLs,
		},
		{
			"blank falls back to defaults",
			"   ",
			DefaultFeedURLs,
		},
		{
			"no URLs falls back to defaults",
			"not a feed list",
			DefaultFeedURLs,
		},
		{
			"space delimited list",
			"https://a.example/feed https://b.example/feed",
			[]string{"https://a.example/feed", "https://b.example/feed"},
		},
		{
			"surrounding whitespace and newlines",
			"\n  https://a.example/feed \t https://b.example/feed  \n",
			[]string{"https://a.example/feed", "https://b.example/feed"},
		},
		{
			"duplicates keep first occurrence",
			"https://a.example/feed https://b.example/feed https://a.example/feed",
			[]string{"https://a.example/feed", "https://b.example/feed"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Config{FeedURLs: test.raw}

			got := cfg.ResolveFeedURLs()
			if !slices.Equal(got, test.want) {
				t.Fatalf("resolved URLs mismatch: got %v want %v", got, test.want)
			}
		})
	}
}

func TestResolveDaysLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"unset", "", DefaultDaysLimit},
		{"blank", "  ", DefaultDaysLimit},
		{"non-numeric", "soon", DefaultDaysLimit},
		{"zero", "0", DefaultDaysLimit},
		{"negative", "-2", DefaultDaysLimit},
		{"valid", "14", 14},
		{"valid with whitespace", " 7 ", 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Config{DaysLimit: test.raw}

			if got := cfg.ResolveDaysLimit(); got != test.want {
				t.Fatalf("resolved days limit mismatch: got %d want %d", got, test.want)
			}
		})
	}
}
