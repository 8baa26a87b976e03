package cfg

type Cfg struct {
	// Input/output paths
	FeedsFile  string
	OutputFile string

	// Fetch behavior
	FetchTimeout int // seconds
	EntryLimit   int
	UserAgent    string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
