package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Parser) Run(data []byte) ([]Item, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, p.normalizeItem(item))
	}

	return items, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Item {
	normalized := Item{
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
	}

	if item.PublishedParsed != nil {
		normalized.PublishedAt = item.PublishedParsed
	}

	// itunes:duration arrives unparsed; formatting happens at render time
	if item.ITunesExt != nil {
		normalized.Duration = item.ITunesExt.Duration
	}

	// Extract first enclosure if available (RSS 2.0 spec allows only one per item)
	if len(item.Enclosures) > 0 && item.Enclosures[0] != nil {
		normalized.EnclosureURL = item.Enclosures[0].URL
	}

	if len(item.Links) > 0 {
		normalized.LinkURLs = item.Links
	}

	return normalized
}
