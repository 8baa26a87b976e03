package page

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alastairrushworth/meditation/app/feed"
)

var pageTmpl = template.Must(template.New("page").Parse(
	pageTemplate + cardTemplate + stylesTemplate + scriptTemplate))

var countPrinter = message.NewPrinter(language.English)

// Renderer assembles the static listing page from extracted records
type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// NewRendererWithClock creates a renderer with an injected clock, so the
// "Last updated" footer is deterministic under test
func NewRendererWithClock(now func() time.Time) *Renderer {
	return &Renderer{now: now}
}

// Run sorts records most recent first and renders the full page.
// The sort is stable, so records published at the same instant keep
// their feed-processing order.
func (r *Renderer) Run(records []feed.Record) (string, error) {
	sorted := make([]feed.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	cards := make([]cardView, 0, len(sorted))
	for _, record := range sorted {
		cards = append(cards, newCardView(record))
	}

	structured, err := structuredData(len(sorted))
	if err != nil {
		return "", fmt.Errorf("failed to build structured data: %w", err)
	}

	view := pageView{
		TotalCount:     len(sorted),
		CountText:      countPrinter.Sprintf("%d", len(sorted)),
		Pills:          podcastNames(sorted),
		Cards:          cards,
		UpdatedAt:      r.now().Format("January 02, 2006 at 03:04 PM"),
		StructuredData: structured,
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}

	return buf.String(), nil
}

// podcastNames returns the distinct feed names, alphabetically sorted,
// for the filter pill row
func podcastNames(records []feed.Record) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, record := range records {
		if !seen[record.FeedName] {
			seen[record.FeedName] = true
			names = append(names, record.FeedName)
		}
	}
	sort.Strings(names)
	return names
}

type structuredPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type structuredWebsite struct {
	Context     string           `json:"@context"`
	Type        string           `json:"@type"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	URL         string           `json:"url"`
	Author      structuredPerson `json:"author"`
	Publisher   structuredPerson `json:"publisher"`
	InLanguage  string           `json:"inLanguage"`
	Keywords    string           `json:"keywords"`
}

func structuredData(count int) (template.JS, error) {
	site := structuredWebsite{
		Context:     "https://schema.org",
		Type:        "WebSite",
		Name:        "Guided Meditations",
		Description: fmt.Sprintf("A curated collection of %d guided meditations from dharma podcasts", count),
		URL:         "https://alastairrushworth.github.io/meditation/",
		Author: structuredPerson{
			Type: "Person",
			Name: "Alastair Rushworth",
			URL:  "https://alastairrushworth.com",
		},
		Publisher: structuredPerson{
			Type: "Person",
			Name: "Alastair Rushworth",
		},
		InLanguage: "en-US",
		Keywords:   "guided meditation, mindfulness, dharma, buddhist meditation, meditation practice",
	}

	data, err := json.MarshalIndent(site, "    ", "  ")
	if err != nil {
		return "", err
	}

	return template.JS(data), nil
}
