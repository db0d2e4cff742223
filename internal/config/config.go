package config

type Config struct {
	AnalyzePath   string `json:"analyzePath"`
	Top           int    `json:"top"`
	TUI           bool   `json:"tui"`
	AssumeYes     bool   `json:"assumeYes"`
	Theme         string `json:"theme"`
	CacheListings bool   `json:"cacheListings"`
}

type fileConfig struct {
	AnalyzePath   *string `json:"analyzePath"`
	Top           *int    `json:"top"`
	TUI           *bool   `json:"tui"`
	AssumeYes     *bool   `json:"assumeYes"`
	Theme         *string `json:"theme"`
	CacheListings *bool   `json:"cacheListings"`
}
