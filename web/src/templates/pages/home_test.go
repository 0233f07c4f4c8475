package pages

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderHome(t *testing.T, d HomeData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Home(d).Render(&buf))
	return buf.String()
}

func TestHome_Sections(t *testing.T) {
	out := renderHome(t, HomeData{
		Methods:       catalog.Default().Methods(),
		PlaygroundURL: "https://nextjs.zbd.dev",
	})

	for _, id := range []string{"setup", "auth", "playground", "goals", "api", "community", "sdks", "content"} {
		assert.Contains(t, out, `id="`+id+`"`, "missing anchor %s", id)
	}

	assert.Contains(t, out, "<h1>"+HomeTitle+"</h1>")
	assert.Contains(t, out, "npm install @zbd/node --save")
	assert.Contains(t, out, `href="https://nextjs.zbd.dev"`)
	assert.Contains(t, out, `src="/static/img/zbd-node-logo.svg"`)
	assert.Contains(t, out, `<footer class="site-footer">`)
}

func TestHome_RendersEveryMethod(t *testing.T) {
	methods := catalog.Default().Methods()
	out := renderHome(t, HomeData{Methods: methods, PlaygroundURL: "https://nextjs.zbd.dev"})

	assert.Equal(t, len(methods), strings.Count(out, `data-method="`))
}

func TestHome_StaticOmitsFilter(t *testing.T) {
	methods := catalog.Default().Methods()
	out := renderHome(t, HomeData{Methods: methods, PlaygroundURL: "https://nextjs.zbd.dev", Static: true})

	assert.Equal(t, len(methods), strings.Count(out, `data-method="`))
	assert.NotContains(t, out, "hx-get=")
	assert.NotContains(t, out, `href="/?entity=`)
}

func TestHome_AssetPrefix(t *testing.T) {
	out := renderHome(t, HomeData{AssetPrefix: "static", PlaygroundURL: "https://nextjs.zbd.dev"})
	assert.Contains(t, out, `src="static/img/playground.svg"`)
}
