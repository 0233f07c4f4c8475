package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Method documents one call exposed by the SDK client.
type Method struct {
	Name        string    `json:"name" validate:"required"`
	Entity      Entity    `json:"entity" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Params      []Param   `json:"params,omitempty" validate:"dive"`
	Examples    []Example `json:"examples,omitempty" validate:"dive"`
}

// Param is a single argument of a Method. Extra is an optional note shown
// under the parameter name.
type Param struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Extra       string `json:"extra,omitempty"`
}

// Example links to a resource showing the method in use.
type Example struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

// HasParams reports whether the Parameters section should be shown.
func (m Method) HasParams() bool { return len(m.Params) > 0 }

// HasExamples reports whether the Resources section should be shown.
func (m Method) HasExamples() bool { return len(m.Examples) > 0 }

// Catalog is an immutable snapshot of the method list.
type Catalog struct {
	methods []Method
	version string
	source  string
}

// New builds a snapshot from methods. The slice is copied; callers may reuse
// theirs afterwards.
func New(methods []Method, source string) *Catalog {
	cp := make([]Method, len(methods))
	copy(cp, methods)
	return &Catalog{
		methods: cp,
		version: fingerprint(cp),
		source:  source,
	}
}

// Methods returns the methods in source order.
func (c *Catalog) Methods() []Method {
	out := make([]Method, len(c.methods))
	copy(out, c.methods)
	return out
}

// Len is the number of methods in the snapshot.
func (c *Catalog) Len() int { return len(c.methods) }

// Version is a content hash of the snapshot.
func (c *Catalog) Version() string { return c.version }

// Source names where the snapshot came from ("builtin" or a file path).
func (c *Catalog) Source() string { return c.source }

// Filter returns the methods of the given entity, keeping source order.
func (c *Catalog) Filter(e Entity) []Method {
	var out []Method
	for _, m := range c.methods {
		if m.Entity == e {
			out = append(out, m)
		}
	}
	return out
}

// Lookup finds a method by name.
func (c *Catalog) Lookup(name string) (Method, error) {
	for _, m := range c.methods {
		if m.Name == name {
			return m, nil
		}
	}
	return Method{}, fmt.Errorf("%w: %s", ErrMethodNotFound, name)
}

func fingerprint(methods []Method) string {
	b, err := json.Marshal(methods)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:12]
}
