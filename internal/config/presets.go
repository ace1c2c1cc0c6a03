package config

import (
	"sort"

	"github.com/san-kum/trigtab/internal/emit"
)

var Presets = map[string]*Config{
	// float tables included by the Hough accumulator
	"hough": DefaultConfig(),
	// 10.10 tables for the integer lane-center pass
	"fixed": withFormat(DefaultConfig(), emit.FormatQ16),
	"fine":  withResolution(DefaultConfig(), 360),
	"go":    withFormat(DefaultConfig(), emit.FormatGo),
}

func withFormat(c *Config, format string) *Config {
	c.Format = format
	return c
}

func withResolution(c *Config, n int) *Config {
	c.Resolution = n
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
