package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

// catalogFile is the on-disk shape of a method list override.
type catalogFile struct {
	Methods []Method `json:"methods"`
}

// LoadFile reads and validates a JSON method list from fsys. Warnings are
// logged; structural problems are returned as a *ValidationError.
func LoadFile(fsys afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	// Unknown keys are rejected so a misspelled field does not silently drop
	// a section from the page.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}
	if len(file.Methods) == 0 {
		return nil, fmt.Errorf("%w: %s has no methods", ErrInvalidCatalog, path)
	}

	warnings, err := Validate(file.Methods)
	for _, w := range warnings {
		slog.Warn("Catalog warning", "path", path, "warning", w)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return New(file.Methods, path), nil
}

// WriteFile stores c as a JSON method list, the format LoadFile reads.
func WriteFile(fsys afero.Fs, path string, c *Catalog) error {
	data, err := json.MarshalIndent(catalogFile{Methods: c.methods}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return afero.WriteFile(fsys, path, data, 0o644)
}
