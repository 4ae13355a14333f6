package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/lineup-service/internal/domain/formations"
	"github.com/preston-bernstein/lineup-service/internal/domain/players"
	"github.com/preston-bernstein/lineup-service/internal/search"
)

// PlayerService is the read side of the player catalog.
type PlayerService interface {
	Search(q search.Query) search.Result
	PlayerByID(id string) (players.Player, bool)
	Clubs() []string
	Nationalities() []string
	Leagues() []string
	Ready() bool
}

// FormationService serves formation templates.
type FormationService interface {
	All() []formations.Formation
	ByID(id string, flipH, flipV bool) (formations.Formation, bool)
	ByCategory(category string) []formations.Formation
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	players    PlayerService
	formations FormationService
	logger     *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(playerSvc PlayerService, formationSvc FormationService, logger *slog.Logger) *Handler {
	return &Handler{
		players:    playerSvc,
		formations: formationSvc,
		logger:     logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: a non-empty corpus must be loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.players != nil && h.players.Ready() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "player corpus not loaded", h.logger)
}
