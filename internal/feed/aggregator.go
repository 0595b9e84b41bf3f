package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"podlinks/internal/domain"
	"podlinks/internal/rfc822"
)

const (
	fetchTimeout      = 30 * time.Second
	fetchUserAgent    = "podlinks/1.0"
	fallbackFeedTitle = "Unknown Podcast"
)

type Aggregator struct {
	parser *gofeed.Parser
	log    *slog.Logger
}

func NewAggregator(log *slog.Logger) *Aggregator {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: fetchTimeout}
	parser.UserAgent = fetchUserAgent

	return &Aggregator{
		parser: parser,
		log:    log,
	}
}

// Aggregate fetches each feed in order and collects the episodes whose
// descriptions yield article links, together with one feed item per link.
// A feed that cannot be fetched or parsed is skipped; its error is joined
// into the returned error while the remaining feeds still contribute.
// Both result slices come back sorted newest first.
func (a *Aggregator) Aggregate(
	ctx context.Context,
	feedURLs []string,
	cutoff time.Time,
) ([]domain.Item, []domain.Episode, error) {
	var (
		items    []domain.Item
		episodes []domain.Episode
		errs     []error
	)

	now := time.Now()

	for _, feedURL := range feedURLs {
		parsed, err := a.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse feed (URL = %s): %w", feedURL, err))
			continue
		}

		feedTitle := strings.TrimSpace(parsed.Title)
		if feedTitle == "" {
			a.log.WarnContext(ctx, "Empty feed title",
				"feedURL", feedURL,
				"fallbackTitle", fallbackFeedTitle)

			feedTitle = fallbackFeedTitle
		}

		kept := 0
		for _, item := range parsed.Items {
			episode, ok := episodeFromItem(now, cutoff, feedTitle, item)
			if !ok {
				continue
			}

			episodes = append(episodes, episode)
			items = append(items, articleItems(episode)...)
			kept++
		}

		a.log.DebugContext(ctx, "Parsed feed",
			"feedURL", feedURL,
			"feedTitle", feedTitle,
			"entries", len(parsed.Items),
			"episodesKept", kept)
	}

	slices.SortStableFunc(items, func(x, y domain.Item) int {
		return rfc822.Parse(y.PubDate).Compare(rfc822.Parse(x.PubDate))
	})
	slices.SortStableFunc(episodes, func(x, y domain.Episode) int {
		return rfc822.Parse(y.PubDate).Compare(rfc822.Parse(x.PubDate))
	})

	return items, episodes, errors.Join(errs...)
}

// episodeFromItem turns one feed entry into an episode, reporting whether
// it belongs in the output. Entries whose descriptions yield no article
// links are dropped before any date handling, so the cutoff never sees
// them. Entries without a parsable publication date count as published
// now and are always kept.
func episodeFromItem(
	now time.Time,
	cutoff time.Time,
	feedTitle string,
	item *gofeed.Item,
) (domain.Episode, bool) {
	description := item.Description
	if strings.TrimSpace(description) == "" {
		description = item.Content
	}

	links := ExtractArticleLinks(description)
	if len(links) == 0 {
		return domain.Episode{}, false
	}

	published := now
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	}
	if published.Before(cutoff) {
		return domain.Episode{}, false
	}

	return domain.Episode{
		Podcast: feedTitle,
		Title:   strings.TrimSpace(item.Title),
		PubDate: rfc822.Format(published),
		Links:   links,
	}, true
}

func articleItems(episode domain.Episode) []domain.Item {
	description := fmt.Sprintf("Article mentioned in '%s' from %s.",
		episode.Title, episode.Podcast)

	items := make([]domain.Item, 0, len(episode.Links))
	for _, link := range episode.Links {
		items = append(items, domain.Item{
			Title:       link.Title,
			Link:        link.URL,
			PubDate:     episode.PubDate,
			Description: description,
		})
	}

	return items
}
