package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alastairrushworth/meditation/app/cfg"
	"github.com/alastairrushworth/meditation/app/config"
)

// Processor handles one feed end to end: fetch, parse, classify, extract
type Processor struct {
	httpClient *http.Client
	parser     *Parser
	classifier *Classifier
	extractor  *Extractor
	userAgent  string
	timeout    time.Duration
	entryLimit int
}

func NewProcessor(httpClient *http.Client, parser *Parser, classifier *Classifier, extractor *Extractor) *Processor {
	cfg := cfg.Get()

	return &Processor{
		httpClient: httpClient,
		parser:     parser,
		classifier: classifier,
		extractor:  extractor,
		userAgent:  cfg.UserAgent,
		timeout:    time.Duration(cfg.FetchTimeout) * time.Second,
		entryLimit: cfg.EntryLimit,
	}
}

// Run fetches a feed and returns the guided meditation records found in it.
// Entries are inspected in feed order, capped at the configured limit so a
// deep archive doesn't dominate the run.
func (p *Processor) Run(ctx context.Context, source config.Source) ([]Record, error) {
	fmt.Printf("Parsing feed: %s\n", source.Name)

	data, err := p.fetchFeed(ctx, source.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	items, err := p.parser.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	if p.entryLimit > 0 && len(items) > p.entryLimit {
		items = items[:p.entryLimit]
	}

	records := make([]Record, 0)
	for _, item := range items {
		if !p.classifier.Run(item.Title, item.Description) {
			continue
		}
		records = append(records, p.extractor.Run(item, source))
	}

	slog.Debug("Feed processed",
		"feed", source.Name,
		"entries", len(items),
		"meditations", len(records))

	fmt.Printf("Found %d guided meditations from %s\n", len(records), source.Name)
	return records, nil
}

func (p *Processor) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
