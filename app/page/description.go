package page

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

const truncateWords = 150

var (
	tagPattern      = regexp.MustCompile(`<[^<]+?>`)
	asteriskPattern = regexp.MustCompile(`\*{3,}`)

	// Bare http(s):// and www. URLs, stopping at whitespace and the usual
	// delimiter characters. Runs over already-escaped text, so escaped
	// ampersands (&amp;) inside query strings stay part of the match.
	urlPattern = regexp.MustCompile(`(https?://[^\s<>"{}|\\^` + "`" + `\[\]]+|www\.[^\s<>"{}|\\^` + "`" + `\[\]]+)`)
)

// StripTags removes markup from text using a permissive non-greedy
// tag match
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// ProcessDescription prepares an episode description for embedding:
// strip markup, drop asterisk-run artifacts, truncate to 150 words,
// escape, then linkify bare URLs. Linkification must run after escaping
// so the generated anchor markup itself is not escaped.
func ProcessDescription(description string) string {
	description = StripTags(description)
	description = asteriskPattern.ReplaceAllString(description, "")

	words := strings.Fields(description)
	if len(words) > truncateWords {
		description = strings.Join(words[:truncateWords], " ") + "..."
	} else {
		description = strings.Join(words, " ")
	}

	description = html.EscapeString(description)

	return urlPattern.ReplaceAllStringFunc(description, makeLink)
}

func makeLink(url string) string {
	// www. links need a scheme synthesized for the href
	href := url
	if !strings.HasPrefix(url, "http") {
		href = "https://" + url
	}

	// Trim long labels for display only, never the href
	display := url
	if len(url) > 50 {
		display = url[:47] + "..."
	}

	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer" onclick="event.stopPropagation();">%s</a>`, href, display)
}
