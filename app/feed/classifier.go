package feed

import (
	"strings"
)

// Phrases that identify a guided meditation episode
var meditationKeywords = []string{
	"guided meditation",
	"guided meditaton", // common typo in feed
	"body scan",
	"breath meditation",
	"mindfulness meditation",
	"sitting meditation",
	"walking meditation",
	"compassion meditation",
	"awareness meditation",
}

// Phrases that mark an episode as a talk rather than a meditation
var excludeKeywords = []string{
	"dharmette",
	"practice notes",
	"dharma talk",
	"questions and answers",
	"q&a",
	"discussion",
}

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Run reports whether an episode is a guided meditation. Exclusion phrases
// are matched against the title only; inclusion phrases against title and
// description combined. All matching is case-insensitive substring search.
func (c *Classifier) Run(title, description string) bool {
	titleLower := strings.ToLower(title)
	textLower := titleLower + " " + strings.ToLower(description)

	for _, exclude := range excludeKeywords {
		if strings.Contains(titleLower, exclude) {
			return false
		}
	}

	for _, keyword := range meditationKeywords {
		if strings.Contains(textLower, keyword) {
			return true
		}
	}

	return false
}
