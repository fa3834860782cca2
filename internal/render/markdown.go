// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/josemreis/nnb-converter/internal/textutil"
	"github.com/josemreis/nnb-converter/pkg/types"
)

// Markdown renders cells as one Markdown document. Markdown cells are emitted
// as text; code cells become a fenced source block followed by fenced output
// blocks.
func Markdown(cells []types.Cell, opts Options) string {
	return join(cells, opts, func(c types.Cell) string {
		if c.IsMarkdown() {
			return markdownCell(c)
		}
		return codeCellMarkdown(c)
	})
}

// markdownCell returns the first source fragment without its empty lines.
func markdownCell(c types.Cell) string {
	if len(c.Source) == 0 {
		return ""
	}
	return strings.Join(textutil.NonEmptyLines(c.Source[0]), "\n")
}

// codeCellMarkdown pairs source fragments with outputs positionally. The
// shorter list bounds the pairing.
func codeCellMarkdown(c types.Cell) string {
	n := min(len(c.Source), len(c.Outputs))
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(textutil.CodeBlock(c.Source[i], c.Language))
		b.WriteByte('\n')
		for _, item := range c.Outputs[i].Items {
			b.WriteString(outputBlock(item))
		}
	}
	return b.String()
}

// outputBlock fences the non-empty lines of an item, stripped of ANSI
// sequences and prefixed with "## ".
func outputBlock(item types.Item) string {
	lines := make([]string, 0, len(item.Value))
	for _, v := range item.Value {
		if v == "" {
			continue
		}
		lines = append(lines, outputPrefix+textutil.StripANSI(v))
	}
	return textutil.CodeBlock(strings.Join(lines, "\n"), outputLanguage)
}
