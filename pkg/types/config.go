// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Format selects the conversion target.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatScript   Format = "js"
)

// Extension returns the file extension, including the dot, written for f.
func (f Format) Extension() string {
	return "." + string(f)
}

// Valid reports whether f is one of the supported targets.
func (f Format) Valid() bool {
	return f == FormatMarkdown || f == FormatScript
}

const (
	DefaultSpacing      = 2
	DefaultWrapWidth    = 79
	DefaultLogLevel     = "warn"
	DefaultPreviewStyle = "dark"
	DefaultPreviewWidth = 80
)

// PreviewConfig holds settings for terminal previews of the Markdown output.
type PreviewConfig struct {
	// Style is a glamour standard style name (dark, light, notty, ...).
	Style string `json:"style" yaml:"style"`

	// Width is the word-wrap column used by the preview.
	Width int `json:"width" yaml:"width"`
}

// Config groups every setting the converter reads from flags, environment
// and the optional config file.
type Config struct {
	// Spacing is the number of newline characters placed between rendered
	// cells (default 2).
	Spacing int `json:"spacing" yaml:"spacing"`

	// WrapWidth is the column after which script comments are broken
	// (default 79). Zero disables rewrapping.
	WrapWidth int `json:"wrap_width" yaml:"wrap_width"`

	// Frontmatter prefixes Markdown output with a YAML header.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	Preview PreviewConfig `json:"preview" yaml:"preview"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Spacing:   DefaultSpacing,
		WrapWidth: DefaultWrapWidth,
		LogLevel:  DefaultLogLevel,
		Preview: PreviewConfig{
			Style: DefaultPreviewStyle,
			Width: DefaultPreviewWidth,
		},
	}
}

// Validate checks value ranges. It does not check the log level or preview
// style names; their consumers report those.
func (c Config) Validate() error {
	var errs []error
	if c.Spacing < 0 {
		errs = append(errs, fmt.Errorf("spacing must be >= 0, got %d", c.Spacing))
	}
	if c.WrapWidth < 0 {
		errs = append(errs, fmt.Errorf("wrap_width must be >= 0, got %d", c.WrapWidth))
	}
	if c.Preview.Width <= 0 {
		errs = append(errs, fmt.Errorf("preview.width must be > 0, got %d", c.Preview.Width))
	}
	return errors.Join(errs...)
}
