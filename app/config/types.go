package config

// Feeds represents the top-level structure of the feeds file
type Feeds struct {
	Feeds []Source `yaml:"feeds"`
}

// Source describes one podcast feed to process
type Source struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Website string `yaml:"website"`
}
