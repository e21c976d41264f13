package config

// Config holds all CLI options for a style-check run.
type Config struct {
	Root     string // tldr root directory, resolved once at startup
	Language string // locale ("ll" or "ll_CC") to restrict checking to; empty = all locales
}
