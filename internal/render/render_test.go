// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/josemreis/nnb-converter/pkg/types"
)

func mdCell(source ...string) types.Cell {
	return types.Cell{Language: types.LanguageMarkdown, Source: source}
}

func echoCell() types.Cell {
	return types.Cell{
		Language: "bash",
		Source:   []string{"echo hi"},
		Outputs: []types.Output{
			{Items: []types.Item{{Value: []string{"hi\n"}}}},
		},
	}
}

func TestMarkdown(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name  string
		cells []types.Cell
		want  string
	}{
		{
			name:  "single markdown cell",
			cells: []types.Cell{mdCell("# Title")},
			want:  "# Title",
		},
		{
			name:  "markdown cell drops empty lines",
			cells: []types.Cell{mdCell("# Title\n\nBody text\n")},
			want:  "# Title\nBody text",
		},
		{
			name:  "markdown cell uses only the first fragment",
			cells: []types.Cell{mdCell("first", "second")},
			want:  "first",
		},
		{
			name:  "markdown cell without fragments",
			cells: []types.Cell{mdCell()},
			want:  "",
		},
		{
			name:  "code cell with output",
			cells: []types.Cell{echoCell()},
			want:  "```bash\necho hi\n```\n```bash\n## hi\n\n```",
		},
		{
			name: "ansi colors and empty lines removed from output",
			cells: []types.Cell{{
				Language: "javascript",
				Source:   []string{"console.log(2)"},
				Outputs: []types.Output{
					{Items: []types.Item{{Value: []string{"\x1b[33m2\x1b[39m", ""}}}},
				},
			}},
			want: "```javascript\nconsole.log(2)\n```\n```bash\n## 2\n```",
		},
		{
			name: "empty item value yields empty fence",
			cells: []types.Cell{{
				Language: "bash",
				Source:   []string{"true"},
				Outputs:  []types.Output{{Items: []types.Item{{Value: []string{}}}}},
			}},
			want: "```bash\ntrue\n```\n```bash\n\n```",
		},
		{
			name: "output without items",
			cells: []types.Cell{{
				Language: "bash",
				Source:   []string{"true"},
				Outputs:  []types.Output{{}},
			}},
			want: "```bash\ntrue\n```\n",
		},
		{
			name: "several items and fragments concatenate without separator",
			cells: []types.Cell{{
				Language: "bash",
				Source:   []string{"a", "b"},
				Outputs: []types.Output{
					{Items: []types.Item{{Value: []string{"1"}}, {Value: []string{"2", "3"}}}},
					{Items: []types.Item{{Value: []string{"4"}}}},
				},
			}},
			want: "```bash\na\n```\n```bash\n## 1\n``````bash\n## 2\n## 3\n```" +
				"```bash\nb\n```\n```bash\n## 4\n```",
		},
		{
			name: "fewer outputs than fragments truncates",
			cells: []types.Cell{{
				Language: "bash",
				Source:   []string{"a", "b"},
				Outputs:  []types.Output{{Items: []types.Item{{Value: []string{"1"}}}}},
			}},
			want: "```bash\na\n```\n```bash\n## 1\n```",
		},
		{
			name: "empty source renders nothing",
			cells: []types.Cell{{
				Language: "bash",
				Source:   []string{},
				Outputs:  []types.Output{{Items: []types.Item{{Value: []string{"1"}}}}},
			}},
			want: "",
		},
		{
			name:  "cells joined by two newlines",
			cells: []types.Cell{mdCell("# Title"), echoCell()},
			want:  "# Title\n\n```bash\necho hi\n```\n```bash\n## hi\n\n```",
		},
		{
			name:  "no cells",
			cells: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Markdown(tt.cells, opts))
		})
	}
}

func TestMarkdown_Spacing(t *testing.T) {
	cells := []types.Cell{mdCell("a"), mdCell("b"), mdCell("c")}

	assert.Equal(t, "abc", Markdown(cells, Options{Spacing: 0}))
	assert.Equal(t, "a\nb\nc", Markdown(cells, Options{Spacing: 1}))
	assert.Equal(t, "a\n\n\n\nb\n\n\n\nc", Markdown(cells, Options{Spacing: 4}))
}

func TestScript(t *testing.T) {
	opts := DefaultOptions()
	long := strings.Repeat("x", 100)

	tests := []struct {
		name  string
		cells []types.Cell
		want  string
	}{
		{
			name:  "code cell emits source only",
			cells: []types.Cell{echoCell()},
			want:  "echo hi",
		},
		{
			name:  "code fragments joined by newline",
			cells: []types.Cell{{Language: "javascript", Source: []string{"let a = 1;", "a++;"}, Outputs: []types.Output{}}},
			want:  "let a = 1;\na++;",
		},
		{
			name:  "markdown cell becomes block comment",
			cells: []types.Cell{mdCell("# Title\n\nSome notes\n")},
			want:  "/*\n# Title\nSome notes\n*/",
		},
		{
			name:  "every markdown fragment is used",
			cells: []types.Cell{mdCell("one\n", "\ntwo")},
			want:  "/*\none\ntwo\n*/",
		},
		{
			name:  "long markdown text is broken every 79 characters",
			cells: []types.Cell{mdCell(long)},
			want:  "/*\n" + long[:79] + "\n" + long[79:] + "\n*/",
		},
		{
			name:  "empty markdown cell",
			cells: []types.Cell{mdCell()},
			want:  "/*\n\n*/",
		},
		{
			name:  "cells joined by two newlines",
			cells: []types.Cell{mdCell("intro"), echoCell()},
			want:  "/*\nintro\n*/\n\necho hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Script(tt.cells, opts))
		})
	}
}

func TestScript_WrapWidth(t *testing.T) {
	cells := []types.Cell{mdCell("abcdefgh")}

	assert.Equal(t, "/*\nabc\ndef\ngh\n*/", Script(cells, Options{WrapWidth: 3}))
	assert.Equal(t, "/*\nabcdefgh\n*/", Script(cells, Options{WrapWidth: 0}))
}

func TestRenderers_PreserveCellOrder(t *testing.T) {
	var cells []types.Cell
	var markers []string
	for i := 0; i < 6; i++ {
		marker := "cell-marker-" + string(rune('a'+i))
		markers = append(markers, marker)
		if i%2 == 0 {
			cells = append(cells, mdCell(marker))
			continue
		}
		cells = append(cells, types.Cell{
			Language: "bash",
			Source:   []string{"echo " + marker},
			Outputs:  []types.Output{{Items: []types.Item{{Value: []string{marker}}}}},
		})
	}

	for name, out := range map[string]string{
		"markdown": Markdown(cells, DefaultOptions()),
		"script":   Script(cells, DefaultOptions()),
	} {
		last := -1
		for _, m := range markers {
			idx := strings.Index(out, m)
			require.GreaterOrEqual(t, idx, 0, "%s output lacks %s", name, m)
			assert.Greater(t, idx, last, "%s output out of order at %s", name, m)
			last = idx
		}
	}
}

func TestRenderers_DoNotMutateCells(t *testing.T) {
	cells := []types.Cell{mdCell("# T\n\nx"), echoCell()}
	before := []types.Cell{mdCell("# T\n\nx"), echoCell()}

	Markdown(cells, DefaultOptions())
	Script(cells, DefaultOptions())

	assert.Equal(t, before, cells)
}

func TestWithFrontmatter(t *testing.T) {
	meta := Metadata{
		Source:      "notes/sample.nnb",
		Format:      types.FormatMarkdown,
		Cells:       3,
		ConvertedAt: time.Date(2026, 3, 4, 5, 6, 7, 890, time.FixedZone("X", 3600)),
	}

	out, err := WithFrontmatter(meta, "# Title")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "---\n"))
	require.True(t, strings.HasSuffix(out, "---\n\n# Title"))

	header := strings.TrimSuffix(strings.TrimPrefix(out, "---\n"), "---\n\n# Title")
	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(header), &got))
	assert.Equal(t, "notes/sample.nnb", got["source"])
	assert.Equal(t, "md", got["format"])
	assert.Equal(t, 3, got["cells"])
	assert.Contains(t, header, "converted_at: 2026-03-04T04:06:07Z")
}
