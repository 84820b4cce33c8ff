// Package site serves the static assets used by the HTML pages.
package site

import (
	"context"
	"net/http"
)

// Prefix is the URL path the assets are mounted under.
const Prefix = "/static/"

// Stylesheet is the URL of the page stylesheet.
const Stylesheet = Prefix + "squads.css"

// Register attaches the asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle(Prefix, NewAssetHandler())
}

// AssetHandler serves embedded assets. Directory listings are not served.
type AssetHandler struct {
	files http.Handler
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler() *AssetHandler {
	return &AssetHandler{files: http.StripPrefix(Prefix, http.FileServer(FS()))}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path == Prefix {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	h.files.ServeHTTP(w, r)
}
