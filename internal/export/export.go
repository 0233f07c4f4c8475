package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/handlers"
	"github.com/nfrund/zbd-node-docs/internal/rendering"
	"github.com/nfrund/zbd-node-docs/internal/storage"
	"github.com/nfrund/zbd-node-docs/web/src/templates/layouts"
	"github.com/nfrund/zbd-node-docs/web/src/templates/pages"
)

// Options configure an export.
type Options struct {
	PlaygroundURL string
	// Clean empties the destination first.
	Clean bool
}

// Manifest describes one export. It is written as manifest.json.
type Manifest struct {
	BuildID        string    `json:"build_id"`
	CatalogVersion string    `json:"catalog_version"`
	GeneratedAt    time.Time `json:"generated_at"`
	Files          []string  `json:"files"`
}

// Exporter writes the page as a static site: index.html, methods.json and
// the static asset tree minus development-only scripts.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
	assets   fs.FS
}

// New creates an Exporter writing to store. assets is the static tree,
// normally web.Static().
func New(store storage.Store, renderer rendering.Renderer, assets fs.FS) *Exporter {
	return &Exporter{store: store, renderer: renderer, assets: assets}
}

// Export renders cat and writes every file. The manifest lists files in the
// order they were written.
func (x *Exporter) Export(ctx context.Context, cat *catalog.Catalog, opts Options) (*Manifest, error) {
	if opts.Clean {
		if err := x.store.Clean(ctx); err != nil {
			return nil, fmt.Errorf("failed to clean destination: %w", err)
		}
	}

	m := &Manifest{
		BuildID:        uuid.NewString(),
		CatalogVersion: cat.Version(),
		GeneratedAt:    time.Now().UTC(),
	}

	page := handlers.HomePage(cat, "", opts.PlaygroundURL, layouts.Options{
		Description: pages.HomeDescription,
		AssetPrefix: "static",
		Static:      true,
	})
	html, err := x.renderer.RenderComponent(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to render index.html: %w", err)
	}
	if err := x.write(ctx, m, "index.html", html); err != nil {
		return nil, err
	}

	methods, err := json.MarshalIndent(handlers.NewMethodListResponse(cat.Version(), cat.Methods()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode methods.json: %w", err)
	}
	if err := x.write(ctx, m, "methods.json", methods); err != nil {
		return nil, err
	}

	err = fs.WalkDir(x.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || p == layouts.LiveReloadScript {
			return err
		}
		data, err := fs.ReadFile(x.assets, p)
		if err != nil {
			return err
		}
		return x.write(ctx, m, path.Join("static", p), data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}

	manifest, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if _, err := x.store.Save(ctx, "/manifest.json", bytes.NewReader(manifest)); err != nil {
		return nil, fmt.Errorf("failed to write manifest.json: %w", err)
	}

	slog.Info("Static export complete", "build_id", m.BuildID, "files", len(m.Files), "catalog_version", m.CatalogVersion)
	return m, nil
}

func (x *Exporter) write(ctx context.Context, m *Manifest, name string, data []byte) error {
	if _, err := x.store.Save(ctx, "/"+name, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	m.Files = append(m.Files, name)
	slog.Debug("Exported file", "path", name, "bytes", len(data))
	return nil
}
