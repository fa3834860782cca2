// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.True(t, FormatMarkdown.Valid())
	assert.True(t, FormatScript.Valid())
	assert.False(t, Format("pdf").Valid())
	assert.False(t, Format("").Valid())

	assert.Equal(t, ".md", FormatMarkdown.Extension())
	assert.Equal(t, ".js", FormatScript.Extension())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "zero spacing and wrap width are allowed",
			mutate: func(c *Config) { c.Spacing = 0; c.WrapWidth = 0 },
		},
		{
			name:    "negative spacing",
			mutate:  func(c *Config) { c.Spacing = -1 },
			wantErr: []string{"spacing must be >= 0"},
		},
		{
			name: "all violations reported together",
			mutate: func(c *Config) {
				c.WrapWidth = -3
				c.Preview.Width = 0
			},
			wantErr: []string{"wrap_width must be >= 0, got -3", "preview.width must be > 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestCellIsMarkdown(t *testing.T) {
	assert.True(t, Cell{Language: "markdown"}.IsMarkdown())
	assert.False(t, Cell{Language: "javascript"}.IsMarkdown())
	assert.False(t, Cell{Language: "Markdown"}.IsMarkdown())
}
