package page

import (
	"strings"
	"testing"
)

func TestProcessDescriptionPipeline(t *testing.T) {
	input := `<b>hello</b> *** world http://example.com/a/b/c`
	result := ProcessDescription(input)

	if strings.Contains(result, "<b>") || strings.Contains(result, "&lt;b&gt;") {
		t.Errorf("Expected tags stripped before escaping, got: %s", result)
	}
	if strings.Contains(result, "***") {
		t.Errorf("Expected asterisk run removed, got: %s", result)
	}

	expectedLink := `<a href="http://example.com/a/b/c" target="_blank" rel="noopener noreferrer" onclick="event.stopPropagation();">http://example.com/a/b/c</a>`
	if !strings.Contains(result, expectedLink) {
		t.Errorf("Expected URL converted to anchor, got: %s", result)
	}
	if !strings.HasPrefix(result, "hello world ") {
		t.Errorf("Expected 'hello world' prefix, got: %s", result)
	}
}

func TestProcessDescriptionEscapes(t *testing.T) {
	result := ProcessDescription(`Practice & rest: "be still" <now>`)

	if !strings.Contains(result, "&amp;") {
		t.Errorf("Expected ampersand escaped, got: %s", result)
	}
	if !strings.Contains(result, "&#34;") && !strings.Contains(result, "&quot;") {
		t.Errorf("Expected quotes escaped, got: %s", result)
	}
	if strings.Contains(result, "<now>") {
		t.Errorf("Expected angle-bracket content stripped, got: %s", result)
	}
}

func TestProcessDescriptionTruncates(t *testing.T) {
	words := make([]string, 151)
	for i := range words {
		words[i] = "word"
	}
	input := strings.Join(words, " ")

	result := ProcessDescription(input)

	if !strings.HasSuffix(result, "...") {
		t.Errorf("Expected ellipsis suffix, got tail: %s", result[len(result)-10:])
	}

	kept := strings.Fields(strings.TrimSuffix(result, "..."))
	if len(kept) != 150 {
		t.Errorf("Expected exactly 150 words before the ellipsis, got %d", len(kept))
	}
}

func TestProcessDescriptionShortInputUntouched(t *testing.T) {
	result := ProcessDescription("just a few words")

	if result != "just a few words" {
		t.Errorf("Expected input unchanged, got: %s", result)
	}
}

func TestProcessDescriptionWWWLinks(t *testing.T) {
	result := ProcessDescription("visit www.example.com for more")

	if !strings.Contains(result, `href="https://www.example.com"`) {
		t.Errorf("Expected https:// synthesized for www href, got: %s", result)
	}
	if !strings.Contains(result, `>www.example.com</a>`) {
		t.Errorf("Expected original text preserved as label, got: %s", result)
	}
}

func TestProcessDescriptionLongURLLabel(t *testing.T) {
	url := "https://example.com/" + strings.Repeat("x", 60)
	result := ProcessDescription("see " + url)

	if !strings.Contains(result, `href="`+url+`"`) {
		t.Errorf("Expected full URL in href, got: %s", result)
	}
	if !strings.Contains(result, ">"+url[:47]+"...</a>") {
		t.Errorf("Expected label truncated to 47 chars plus ellipsis, got: %s", result)
	}
}

func TestProcessDescriptionEscapedAmpersandInURL(t *testing.T) {
	// Linkification runs over escaped text, so query-string ampersands
	// arrive as &amp; and must stay inside the match
	result := ProcessDescription("listen at https://example.com/ep?a=1&b=2 today")

	if !strings.Contains(result, `href="https://example.com/ep?a=1&amp;b=2"`) {
		t.Errorf("Expected escaped ampersand kept inside href, got: %s", result)
	}
	if !strings.Contains(result, " today") {
		t.Errorf("Expected trailing text preserved, got: %s", result)
	}
}

func TestStripTags(t *testing.T) {
	result := StripTags("<p>hello <b>world</b></p>")
	if result != "hello world" {
		t.Errorf("Expected 'hello world', got: %s", result)
	}
}
