package api

import (
	"errors"
	"net/http"

	"github.com/okian/squads/internal/adapters/http/site"
	"github.com/okian/squads/internal/adapters/render"
	"github.com/okian/squads/internal/adapters/repository"
)

// IndexDependencies defines what the index page reads.
type IndexDependencies interface {
	PlayersDependencies
	SquadsDependencies
}

// IndexHandler serves the HTML overview page.
type IndexHandler struct {
	deps IndexDependencies
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(deps IndexDependencies) *IndexHandler {
	return &IndexHandler{deps: deps}
}

// HandleIndex handles GET / requests.
func (h *IndexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	page := render.Page{Title: "Squad Builder", Stylesheet: site.Stylesheet}
	waiting, err := h.deps.Players(r.Context(), "")
	if err != nil {
		writeFailure(w, err)
		return
	}
	page.Waiting = waiting
	res, err := h.deps.LatestResult(r.Context())
	switch {
	case err == nil:
		page.Squads = res.Squads
	case !errors.Is(err, repository.ErrNoResult):
		writeFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = render.Index(w, page)
}
