package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/okian/squads/internal/adapters/roster"
	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
)

// PlayersDependencies defines the waiting list operations.
type PlayersDependencies interface {
	Players(ctx context.Context, sortKey string) ([]model.Player, error)
	ImportRoster(ctx context.Context, r io.Reader, format roster.Format) (int, error)
}

// PlayersHandler handles waiting list requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type playersResponse struct {
	Count   int         `json:"count"`
	Players []types.Row `json:"players"`
}

type importResponse struct {
	Added int `json:"added"`
}

// HandlePlayers handles GET /players?sort=KEY and POST /players.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		players, err := h.deps.Players(r.Context(), r.URL.Query().Get("sort"))
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, playersResponse{Count: len(players), Players: types.PlayerRows(players)})
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		added, err := h.deps.ImportRoster(r.Context(), body, formatOf(r))
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, importResponse{Added: added})
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

// formatOf picks YAML for yaml content types and JSON otherwise.
func formatOf(r *http.Request) roster.Format {
	if strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "yaml") {
		return roster.YAML
	}
	return roster.JSON
}
