package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*.css
var staticFS embed.FS

// FS returns an http.FileSystem for the embedded assets.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Should never happen with a literal embed pattern.
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
