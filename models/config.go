package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme selects the widget color scheme served to the page.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Options holds the fixed construction-time configuration: the inference
// endpoint, the model identifier, and the widget theme. There are no
// environment variables; values come from flags or an optional YAML file.
type Options struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	Theme    Theme  `yaml:"theme"`
	DBPath   string `yaml:"db"`
	Port     int    `yaml:"port"`
}

// DefaultOptions returns the built-in defaults: a local Ollama endpoint
// and the light theme.
func DefaultOptions() Options {
	return Options{
		Endpoint: "http://localhost:11434",
		Model:    "llama2",
		Theme:    ThemeLight,
		Port:     3000,
	}
}

// LoadConfig reads options from a YAML file, layered over the defaults.
// A missing file is not an error; it just yields the defaults.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}
	if opts.Theme != ThemeLight && opts.Theme != ThemeDark {
		return opts, fmt.Errorf("unknown theme: %q", opts.Theme)
	}
	return opts, nil
}
