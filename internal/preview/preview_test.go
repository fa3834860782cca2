// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josemreis/nnb-converter/internal/textutil"
	"github.com/josemreis/nnb-converter/pkg/types"
)

func TestRender(t *testing.T) {
	md := "# Sample\n\nSome prose.\n\n```bash\necho hi\n```\n```bash\n## hi\n```"

	out, err := Render(md, types.PreviewConfig{Style: "notty", Width: 60})
	require.NoError(t, err)

	plain := textutil.StripANSI(out)
	assert.Contains(t, plain, "Sample")
	assert.Contains(t, plain, "Some prose.")
	assert.Contains(t, plain, "echo hi")
	assert.Contains(t, plain, "## hi")
}

func TestRender_Defaults(t *testing.T) {
	out, err := Render("plain words", types.PreviewConfig{})
	require.NoError(t, err)
	assert.Contains(t, textutil.StripANSI(out), "plain words")
}

func TestRender_UnknownStyle(t *testing.T) {
	_, err := Render("# x", types.PreviewConfig{Style: "no-such-style", Width: 80})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating preview renderer")
}
