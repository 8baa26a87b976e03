package feed

import (
	"time"
)

// Item is a normalized feed entry, pre-classification
type Item struct {
	Title        string
	Description  string
	Link         string
	PublishedAt  *time.Time
	Duration     string // raw itunes:duration value, empty if absent
	EnclosureURL string
	LinkURLs     []string // every link URL the entry carries, in feed order
}

// Record is a classified guided meditation ready for rendering
type Record struct {
	Title       string
	Description string
	Date        time.Time
	EpisodeURL  string
	FeedName    string
	FeedWebsite string
	Duration    string // raw, empty if absent
}
