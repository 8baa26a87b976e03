package page

import (
	"html"
	"html/template"
	"strings"

	"github.com/alastairrushworth/meditation/app/feed"
)

// cardView is the render-ready form of one meditation record
type cardView struct {
	FeedName    string
	FeedWebsite string
	EpisodeURL  string
	Date        string
	Duration    string // formatted, empty when absent or unparseable
	Title       string
	TitleLower  string
	SearchText  string // plain-text description for the search data attribute
	Description template.HTML
}

// pageView is everything the page template needs
type pageView struct {
	TotalCount     int
	CountText      string
	Pills          []string
	Cards          []cardView
	UpdatedAt      string
	StructuredData template.JS
}

func newCardView(record feed.Record) cardView {
	title := StripTags(record.Title)
	descriptionHTML := ProcessDescription(record.Description)

	// Plain-text twin of the processed description, link markup removed
	// and entities folded back, so client-side search sees what the
	// reader sees
	searchText := html.UnescapeString(StripTags(descriptionHTML))

	view := cardView{
		FeedName:    record.FeedName,
		FeedWebsite: record.FeedWebsite,
		EpisodeURL:  record.EpisodeURL,
		Date:        record.Date.Format("January 02, 2006"),
		Title:       title,
		TitleLower:  strings.ToLower(title),
		SearchText:  strings.ToLower(searchText),
		Description: template.HTML(descriptionHTML),
	}

	if formatted, ok := FormatDuration(record.Duration); ok {
		view.Duration = formatted
	}

	return view
}
