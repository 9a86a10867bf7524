package config

import "strings"

// LanguageSeed is a language registered at startup
type LanguageSeed struct {
	Name    string
	Version string
}

// ParseLanguageSeeds reads "python:3.12,go:1.23"; malformed items are skipped
func ParseLanguageSeeds(raw string) []LanguageSeed {
	seeds := make([]LanguageSeed, 0)
	for _, item := range strings.Split(raw, ",") {
		name, version, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok || name == "" || version == "" {
			continue
		}
		seeds = append(seeds, LanguageSeed{Name: name, Version: version})
	}
	return seeds
}
