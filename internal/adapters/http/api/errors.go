package api

import (
	"errors"
	"net/http"

	service "github.com/okian/squads/internal/app"
	"github.com/okian/squads/internal/adapters/repository"
	"github.com/okian/squads/internal/adapters/roster"
	"github.com/okian/squads/internal/domain/balance"
	"github.com/okian/squads/internal/domain/model"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrBadPath    = errors.New("invalid squad path")
)

// statusFor maps upstream errors to an HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, balance.ErrInvalidSquadCount):
		return http.StatusUnprocessableEntity, "invalid_squad_count"
	case errors.Is(err, balance.ErrUnknownStrategy):
		return http.StatusBadRequest, "unknown_strategy"
	case errors.Is(err, service.ErrInvalidSort):
		return http.StatusBadRequest, "invalid_sort"
	case errors.Is(err, roster.ErrInvalidRoster), errors.Is(err, roster.ErrUnsupportedFormat):
		return http.StatusBadRequest, "invalid_roster"
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrBadPath):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, model.ErrDuplicatePlayer):
		return http.StatusConflict, "duplicate_player"
	case errors.Is(err, repository.ErrStale):
		return http.StatusConflict, "conflict"
	case errors.Is(err, repository.ErrNoResult),
		errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrSquadNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
