package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/squads/internal/adapters/render"
	"github.com/okian/squads/internal/domain/types"
)

// SquadsDependencies defines the balancing operations.
type SquadsDependencies interface {
	Balance(ctx context.Context, count int, strategy string) (types.Result, error)
	LatestResult(ctx context.Context) (types.Result, error)
	Squad(ctx context.Context, n int) (types.SquadView, error)
}

// SquadsHandler handles squad requests.
type SquadsHandler struct {
	deps SquadsDependencies
}

// NewSquadsHandler creates a new squads handler.
func NewSquadsHandler(deps SquadsDependencies) *SquadsHandler {
	return &SquadsHandler{deps: deps}
}

// balanceRequest mirrors the OpenAPI schema for POST /squads.
type balanceRequest struct {
	Count    int    `json:"count"`
	Strategy string `json:"strategy"`
}

// HandleSquads handles POST /squads and GET /squads.
func (h *SquadsHandler) HandleSquads(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		res, err := h.deps.LatestResult(r.Context())
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	case http.MethodPost:
		var req balanceRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeFailure(w, fmt.Errorf("%w: %w", ErrBadRequest, err))
			return
		}
		res, err := h.deps.Balance(r.Context(), req.Count, req.Strategy)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, res)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

// HandleSquad handles GET /squads/{n} and GET /squads/{n}/table.
func (h *SquadsHandler) HandleSquad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/squads/")
	num, tail, _ := strings.Cut(rest, "/")
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || (tail != "" && tail != "table") {
		writeFailure(w, fmt.Errorf("%w: %q", ErrBadPath, r.URL.Path))
		return
	}
	view, err := h.deps.Squad(r.Context(), n)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if tail == "" {
		writeJSON(w, http.StatusOK, view)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = render.Squad(w, view)
}
