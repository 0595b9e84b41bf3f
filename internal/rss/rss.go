// Package rss renders the generated article feed as an RSS 2.0 document.
package rss

import (
	"encoding/xml"
	"fmt"
	"time"

	"podlinks/internal/domain"
	"podlinks/internal/rfc822"
)

const (
	channelTitle = "FT Podcast Articles Feed"
	channelLink  = "https://example.com/generated_feed.xml"

	channelDescription = "An automatically generated feed of articles mentioned in FT " +
		"podcasts. Each item corresponds to a free-to-read or mentioned " +
		"article extracted from the podcast RSS feeds."
)

type document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	LastBuildDate string `xml:"lastBuildDate"`
	Items         []item `xml:"item"`
}

// Field order here fixes the element order inside each rendered item.
type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        guid   `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Render builds the RSS document for the collected article items, stamping
// the channel with now as its last build date. The result carries a UTF-8
// declaration and is safe to write out as-is.
func Render(items []domain.Item, now time.Time) (string, error) {
	doc := document{
		Version: "2.0",
		Channel: channel{
			Title:         channelTitle,
			Link:          channelLink,
			Description:   channelDescription,
			LastBuildDate: rfc822.Format(now),
			Items:         make([]item, 0, len(items)),
		},
	}

	for _, it := range items {
		doc.Channel.Items = append(doc.Channel.Items, item{
			Title:       it.Title,
			Link:        it.Link,
			GUID:        guid{IsPermaLink: "true", Value: it.Link},
			PubDate:     it.PubDate,
			Description: it.Description,
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal feed: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}
