// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns notebook cells into Markdown documents or plain
// scripts. Renderers are pure functions of their cells and Options.
package render

import (
	"strings"

	"github.com/josemreis/nnb-converter/pkg/types"
)

// outputLanguage tags every captured-output fence, whatever the cell language.
const outputLanguage = "bash"

// outputPrefix marks each captured-output line.
const outputPrefix = "## "

// Options controls layout and is passed explicitly to every renderer.
type Options struct {
	// Spacing is the number of newlines between rendered cells.
	Spacing int

	// WrapWidth is the column after which script comments are broken.
	// Zero disables rewrapping.
	WrapWidth int
}

// DefaultOptions returns the layout used by the original converter.
func DefaultOptions() Options {
	return Options{Spacing: types.DefaultSpacing, WrapWidth: types.DefaultWrapWidth}
}

// OptionsFromConfig extracts the renderer settings from cfg.
func OptionsFromConfig(cfg types.Config) Options {
	return Options{Spacing: cfg.Spacing, WrapWidth: cfg.WrapWidth}
}

func (o Options) separator() string {
	if o.Spacing <= 0 {
		return ""
	}
	return strings.Repeat("\n", o.Spacing)
}

// join renders each cell with fn and joins the results with the spacing
// separator, preserving cell order.
func join(cells []types.Cell, opts Options, fn func(types.Cell) string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fn(c)
	}
	return strings.Join(out, opts.separator())
}
