// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LanguageMarkdown is the cell language that marks prose cells. Every other
// language identifies a code cell.
const LanguageMarkdown = "markdown"

// Cell is one entry of a notebook's cell list.
type Cell struct {
	// Language is "markdown" for prose cells or a source language tag
	// (e.g. "javascript", "bash") for code cells.
	Language string `json:"language" yaml:"language"`

	// Source holds the cell content. Markdown cells conventionally carry a
	// single fragment with embedded newlines; code cells carry one fragment
	// per executed sub-block.
	Source []string `json:"source" yaml:"source"`

	// Outputs pairs positionally with Source. Only code cells have outputs.
	Outputs []Output `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// IsMarkdown reports whether the cell is a prose cell.
func (c Cell) IsMarkdown() bool {
	return c.Language == LanguageMarkdown
}

// Output is the captured result of executing one source fragment.
type Output struct {
	Items []Item `json:"items" yaml:"items"`
}

// Item holds raw output lines. Lines may contain ANSI escape sequences and
// may be empty.
type Item struct {
	// MIME is the item's media type when the notebook records one.
	MIME string `json:"mime,omitempty" yaml:"mime,omitempty"`

	Value []string `json:"value" yaml:"value"`
}
