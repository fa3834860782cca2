// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/josemreis/nnb-converter/internal/textutil"
	"github.com/josemreis/nnb-converter/pkg/types"
)

// Script renders cells as a plain script. Markdown cells become block
// comments; code cells are emitted verbatim and their outputs dropped.
func Script(cells []types.Cell, opts Options) string {
	return join(cells, opts, func(c types.Cell) string {
		if c.IsMarkdown() {
			return commentCell(c, opts.WrapWidth)
		}
		return strings.Join(c.Source, "\n")
	})
}

func commentCell(c types.Cell, width int) string {
	var lines []string
	for _, frag := range c.Source {
		lines = append(lines, textutil.NonEmptyLines(frag)...)
	}
	body := textutil.Rewrap(strings.Join(lines, "\n"), width)
	return strings.Join([]string{"/*", body, "*/"}, "\n")
}
