package config

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLibraryRoot indicates a missing library root
	ErrEmptyLibraryRoot = errors.New("empty library root")

	// ErrEmptyOutputDir indicates a missing output directory
	ErrEmptyOutputDir = errors.New("empty output directory")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Paths.LibraryRoot == "" {
		return ErrEmptyLibraryRoot
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: set output.dir or pass --output", ErrEmptyOutputDir)
	}
	return nil
}
