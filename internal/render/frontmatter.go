// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/josemreis/nnb-converter/pkg/types"
)

// Metadata describes a conversion for the optional YAML frontmatter.
type Metadata struct {
	Source      string       `yaml:"source"`
	Format      types.Format `yaml:"format"`
	Cells       int          `yaml:"cells"`
	ConvertedAt time.Time    `yaml:"converted_at"`
}

// WithFrontmatter prepends a YAML frontmatter block describing meta to body.
func WithFrontmatter(meta Metadata, body string) (string, error) {
	meta.ConvertedAt = meta.ConvertedAt.UTC().Truncate(time.Second)
	data, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
