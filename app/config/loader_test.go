package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidFeeds(t *testing.T) {
	tempDir := t.TempDir()

	content := `
feeds:
  - name: "Tara Brach"
    url: "https://example.com/tarabrach/feed.xml"
    website: "https://www.tarabrach.com"
  - name: "Audio Dharma"
    url: "https://example.com/audiodharma/feed.xml"
    website: "https://www.audiodharma.org"
`

	path := filepath.Join(tempDir, "feeds.yml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(path)
	sources, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}

	if sources[0].Name != "Tara Brach" {
		t.Errorf("Expected name 'Tara Brach', got '%s'", sources[0].Name)
	}
	if sources[0].URL != "https://example.com/tarabrach/feed.xml" {
		t.Errorf("Expected URL 'https://example.com/tarabrach/feed.xml', got '%s'", sources[0].URL)
	}
	if sources[1].Website != "https://www.audiodharma.org" {
		t.Errorf("Expected website 'https://www.audiodharma.org', got '%s'", sources[1].Website)
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	tempDir := t.TempDir()

	content := `
feeds:
  - name: "Zen Mountain"
    url: "https://example.com/a.xml"
    website: "https://example.com/a"
  - name: "Audio Dharma"
    url: "https://example.com/b.xml"
    website: "https://example.com/b"
  - name: "Metta Hour"
    url: "https://example.com/c.xml"
    website: "https://example.com/c"
`

	path := filepath.Join(tempDir, "feeds.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sources, err := NewLoader(path).Load()
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"Zen Mountain", "Audio Dharma", "Metta Hour"}
	for i, name := range expected {
		if sources[i].Name != name {
			t.Errorf("Expected source %d to be '%s', got '%s'", i, name, sources[i].Name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.yml"))

	_, err := loader.Load()
	if err == nil {
		t.Error("Expected error for missing feeds file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "feeds.yml")
	if err := os.WriteFile(path, []byte("feeds: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(path).Load()
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadValidation(t *testing.T) {
	tempDir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{
			name: "missing name",
			content: `
feeds:
  - url: "https://example.com/feed.xml"
    website: "https://example.com"
`,
		},
		{
			name: "missing url",
			content: `
feeds:
  - name: "Test Feed"
    website: "https://example.com"
`,
		},
		{
			name: "non-http url",
			content: `
feeds:
  - name: "Test Feed"
    url: "ftp://example.com/feed.xml"
    website: "https://example.com"
`,
		},
		{
			name: "missing website",
			content: `
feeds:
  - name: "Test Feed"
    url: "https://example.com/feed.xml"
`,
		},
		{
			name:    "empty list",
			content: "feeds: []",
		},
	}

	for _, tc := range cases {
		path := filepath.Join(tempDir, "feeds.yml")
		if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := NewLoader(path).Load()
		if err == nil {
			t.Errorf("Expected validation error for case '%s'", tc.name)
		}
	}
}
