package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type config struct {
	TempDir    string `toml:"temp_dir"`
	MaxPayload int    `toml:"max_payload"`
	Codec      string `toml:"codec"`
	NoColor    bool   `toml:"no_color"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

type styles struct {
	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, key: plain, value: plain, warn: plain}
	}
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		key:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func (s styles) row(key, value string) string {
	return "  " + s.key.Render(key) + " " + s.value.Render(value)
}
