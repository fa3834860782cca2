// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders converted Markdown for display in a terminal.
package preview

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/josemreis/nnb-converter/pkg/types"
)

// Render styles markdown with glamour using the configured standard style
// and word-wrap width.
func Render(markdown string, cfg types.PreviewConfig) (string, error) {
	style := cfg.Style
	if style == "" {
		style = types.DefaultPreviewStyle
	}
	width := cfg.Width
	if width <= 0 {
		width = types.DefaultPreviewWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating preview renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return out, nil
}
