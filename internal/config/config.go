package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidFormat is returned when the output format is not one of Formats
var ErrInvalidFormat = errors.New("invalid output format")

// Formats lists the accepted output formats
var Formats = []string{"terminal", "json"}

// Config holds the settings shared by every postlint command.
type Config struct {
	// Format selects the reporter (terminal, json)
	Format string `yaml:"format"`

	// MinScore makes check fail when a draft scores below it
	MinScore int `yaml:"min_score"`

	// Media marks text and stdin posts as carrying media
	Media bool `yaml:"media"`
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w %q (want one of %v)", ErrInvalidFormat, c.Format, Formats)
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score must be between 0 and 100, got %d", c.MinScore)
	}
	return nil
}
