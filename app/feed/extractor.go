package feed

import (
	"strings"
	"time"

	"github.com/alastairrushworth/meditation/app/config"
)

// Extractor builds renderable records from classified feed items
type Extractor struct {
	now func() time.Time
}

func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorWithClock creates an extractor with an injected clock,
// used by tests to pin the missing-publish-date fallback
func NewExtractorWithClock(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

func (e *Extractor) Run(item Item, source config.Source) Record {
	return Record{
		Title:       item.Title,
		Description: item.Description,
		Date:        e.extractDate(item),
		EpisodeURL:  e.resolveEpisodeURL(item, source),
		FeedName:    source.Name,
		FeedWebsite: source.Website,
		Duration:    item.Duration,
	}
}

func (e *Extractor) extractDate(item Item) time.Time {
	if item.PublishedAt != nil {
		return item.PublishedAt.Truncate(time.Second)
	}
	return e.now()
}

// resolveEpisodeURL picks the best click-through target for an episode.
// The entry link points at the episode page on the podcast's website, which
// keeps attribution and traffic with the podcast. art19.com feeds carry no
// episode page links, so those fall back to the podcast's main website
// rather than a direct MP3 URL.
func (e *Extractor) resolveEpisodeURL(item Item, source config.Source) string {
	if item.Link != "" {
		return item.Link
	}

	if strings.Contains(source.URL, "art19.com") {
		return source.Website
	}

	if item.EnclosureURL != "" {
		return item.EnclosureURL
	}

	if len(item.LinkURLs) > 0 {
		return item.LinkURLs[0]
	}

	return ""
}
