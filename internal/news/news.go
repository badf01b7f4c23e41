// Package news fetches the latest scene headlines from an RSS feed.
package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Fetcher pulls and formats headlines from one feed URL.
type Fetcher struct {
	parser  *gofeed.Parser
	feedURL string
	limit   int
}

func NewFetcher(feedURL string, limit int) *Fetcher {
	if limit <= 0 {
		limit = 5
	}
	return &Fetcher{parser: gofeed.NewParser(), feedURL: feedURL, limit: limit}
}

// Latest returns the newest headlines as a "• Title (link)" list.
func (f *Fetcher) Latest(ctx context.Context) (string, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return "", fmt.Errorf("fetching feed: %w", err)
	}

	items := feed.Items
	if len(items) > f.limit {
		items = items[:f.limit]
	}
	if len(items) == 0 {
		return "", fmt.Errorf("feed %s has no items", f.feedURL)
	}

	return FormatItems(items), nil
}

// FormatItems renders feed items one per line.
func FormatItems(items []*gofeed.Item) string {
	var b strings.Builder
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		if item.Link != "" {
			b.WriteString("• " + title + " (" + item.Link + ")\n")
		} else {
			b.WriteString("• " + title + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}
