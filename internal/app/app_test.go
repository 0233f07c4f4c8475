package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/config"
	"github.com/nfrund/zbd-node-docs/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(env, catalogPath string) *config.Config {
	return &config.Config{
		Addr:          ":0",
		AppBaseURL:    "http://localhost:8080",
		Env:           env,
		LogFormat:     "text",
		LogLevel:      "info",
		CatalogPath:   catalogPath,
		PlaygroundURL: "https://nextjs.zbd.dev",
		APIRateLimit:  60,
	}
}

func TestLoadCatalog(t *testing.T) {
	memFs := afero.NewMemMapFs()

	builtin, err := LoadCatalog(memFs, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceBuiltin, builtin.Source())

	override := catalog.New([]catalog.Method{
		{Name: "getWallet", Entity: catalog.EntityWallet, Description: "Wallet balance"},
	}, "test")
	require.NoError(t, catalog.WriteFile(memFs, "/methods.json", override))

	loaded, err := LoadCatalog(memFs, "/methods.json")
	require.NoError(t, err)
	assert.Equal(t, "/methods.json", loaded.Source())
	assert.Equal(t, override.Version(), loaded.Version())

	_, err = LoadCatalog(memFs, "/missing.json")
	assert.Error(t, err)
}

func TestNew_WiresServer(t *testing.T) {
	tests := []struct {
		env        string
		liveReload bool
	}{
		{config.EnvDevelopment, true},
		{config.EnvProduction, false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			a := New(testConfig(tt.env, ""), afero.NewMemMapFs())
			t.Cleanup(a.Shutdown)

			srv, err := do.Invoke[*server.Server](a.injector)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.liveReload, strings.Contains(rec.Body.String(), "livereload.js"))

			store, err := a.Store()
			require.NoError(t, err)
			assert.Equal(t, catalog.Default().Version(), store.Current().Version())
		})
	}
}

func TestNew_BadCatalogFailsServerBuild(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/methods.json", []byte(`{"methods":[]}`), 0o644))

	a := New(testConfig(config.EnvProduction, "/methods.json"), memFs)
	t.Cleanup(a.Shutdown)

	_, err := do.Invoke[*server.Server](a.injector)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}
