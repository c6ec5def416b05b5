package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderSafeHTML(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderSafeHTML("# Renewal offer\n\nRenew **before** expiry.")
	require.NoError(t, err)
	assert.Contains(t, html, "Renewal offer")
	assert.Contains(t, html, "<strong>before</strong>")
}

func TestRenderer_StripsScripts(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderSafeHTML("hello <script>alert(1)</script> world")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert(1)")
	assert.Contains(t, html, "hello")
}
