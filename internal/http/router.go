package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/lineup-service/internal/http/handlers"
)

// NewRouter registers the API routes. admin may be nil, in which case the
// reload endpoint is not mounted.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = handlers.NotFound(logger)
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed(logger)

	r.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(nethttp.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = r.NotFoundHandler
	api.MethodNotAllowedHandler = r.MethodNotAllowedHandler
	api.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)

	// Literal player routes are registered before /{id} so they win.
	api.HandleFunc("/players/search", h.SearchPlayers).Methods(nethttp.MethodGet)
	api.HandleFunc("/players/clubs", h.Clubs).Methods(nethttp.MethodGet)
	api.HandleFunc("/players/nationalities", h.Nationalities).Methods(nethttp.MethodGet)
	api.HandleFunc("/players/leagues", h.Leagues).Methods(nethttp.MethodGet)
	if admin != nil {
		api.HandleFunc("/players/reload", admin.Reload).Methods(nethttp.MethodPost)
	}
	api.HandleFunc("/players/{id}", h.PlayerByID).Methods(nethttp.MethodGet)

	api.HandleFunc("/formations", h.Formations).Methods(nethttp.MethodGet)
	api.HandleFunc("/formations/category/{category}", h.FormationsByCategory).Methods(nethttp.MethodGet)
	api.HandleFunc("/formations/{id}", h.FormationByID).Methods(nethttp.MethodGet)

	api.HandleFunc("/lineup/export", h.PrepareExport).Methods(nethttp.MethodPost)
	api.HandleFunc("/lineup/export/svg", h.ExportSVG).Methods(nethttp.MethodPost)

	return r
}
