package web

import (
	"embed"
	"io/fs"
)

// FS contains the embedded static assets served under /static.
//
//go:embed static
var FS embed.FS

// Static returns the static tree rooted at its own directory, so paths look
// like "css/site.css".
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		// The directory is embedded at build time; a failure here is a build defect.
		panic(err)
	}
	return sub
}
