// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the notebook conversion pipeline: validate the
// request, load the cells, render them, and write the result next to the
// input file.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/josemreis/nnb-converter/internal/notebook"
	"github.com/josemreis/nnb-converter/internal/render"
	"github.com/josemreis/nnb-converter/pkg/types"
)

// NotebookExt is the extension every input must carry.
const NotebookExt = ".nnb"

// ParseFormat maps a target selector to a Format.
func ParseFormat(s string) (types.Format, error) {
	f := types.Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w %q: accepts %q or %q", ErrInvalidTarget, s, types.FormatMarkdown, types.FormatScript)
	}
	return f, nil
}

// CheckExtension rejects paths that do not look like notebook files.
func CheckExtension(path string) error {
	if !strings.EqualFold(filepath.Ext(path), NotebookExt) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}
	return nil
}

// OutputPath returns the sibling path of input with its extension replaced
// by the target format's.
func OutputPath(input string, format types.Format) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + format.Extension()
}

// Converter holds the settings for one conversion run.
type Converter struct {
	Options render.Options

	// Frontmatter prefixes Markdown output with a YAML header.
	Frontmatter bool

	// Logger receives debug records. Nil disables logging.
	Logger *zap.Logger

	// Now stamps frontmatter. Nil means time.Now.
	Now func() time.Time
}

// New returns a Converter configured from cfg.
func New(cfg types.Config, logger *zap.Logger) *Converter {
	return &Converter{
		Options:     render.OptionsFromConfig(cfg),
		Frontmatter: cfg.Frontmatter,
		Logger:      logger,
	}
}

func (c *Converter) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Converter) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Render loads the notebook at input and returns the converted text without
// writing anything.
func (c *Converter) Render(input string, format types.Format) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("%w %q", ErrInvalidTarget, format)
	}
	if err := CheckExtension(input); err != nil {
		return "", err
	}

	cells, err := notebook.Load(input)
	if err != nil {
		return "", err
	}
	c.logger().Debug("loaded notebook", zap.String("path", input), zap.Int("cells", len(cells)))

	if format == types.FormatScript {
		return render.Script(cells, c.Options), nil
	}

	out := render.Markdown(cells, c.Options)
	if !c.Frontmatter {
		return out, nil
	}
	return render.WithFrontmatter(render.Metadata{
		Source:      input,
		Format:      format,
		Cells:       len(cells),
		ConvertedAt: c.now(),
	}, out)
}

// ConvertFile converts input and writes the result to OutputPath(input,
// format). Nothing is written unless rendering succeeds in full. It returns
// the output path.
func (c *Converter) ConvertFile(input string, format types.Format) (string, error) {
	content, err := c.Render(input, format)
	if err != nil {
		return "", err
	}

	outPath := OutputPath(input, format)
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	c.logger().Debug("wrote output", zap.String("path", outPath), zap.Int("bytes", len(content)))
	return outPath, nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of notebooks processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any notebook failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts every input in order, printing per-file status to w
// and returning a summary. Extensions are checked for all inputs before any
// file is read; a failing notebook does not stop the ones after it.
func (c *Converter) ConvertBatch(inputs []string, format types.Format, w io.Writer) (BatchResult, error) {
	if !format.Valid() {
		return BatchResult{}, fmt.Errorf("%w %q", ErrInvalidTarget, format)
	}
	for _, in := range inputs {
		if err := CheckExtension(in); err != nil {
			return BatchResult{}, err
		}
	}

	var result BatchResult
	for _, in := range inputs {
		outPath, err := c.ConvertFile(in, format)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", in, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s\n", outPath)
		result.Converted++
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}
