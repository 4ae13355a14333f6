package handlers

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/lineup-service/internal/http/requestutil"
	"github.com/preston-bernstein/lineup-service/internal/logging"
	"github.com/preston-bernstein/lineup-service/internal/search"
)

// SearchPlayers runs a faceted, ranked search. Bad paging values are clamped, never rejected.
func (h *Handler) SearchPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	query := search.Query{
		Text:        q.Get("query"),
		Club:        q.Get("club"),
		Nationality: q.Get("nationality"),
		League:      q.Get("league"),
		Position:    q.Get("position"),
		Page:        requestutil.IntQuery(r, "page", 0),
		Size:        requestutil.IntQuery(r, "size", search.DefaultPageSize),
	}

	res := h.players.Search(query)
	logging.Info(loggerFromContext(r, h.logger), "served player search",
		logging.FieldCount, len(res.Items),
		"total", res.Total,
	)
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// PlayerByID returns a single player.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := mux.Vars(r)["id"]
	p, ok := h.players.PlayerByID(id)
	if !ok {
		logging.Info(loggerFromContext(r, h.logger), "player not found", logging.FieldPlayerID, id)
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// Clubs lists the distinct clubs of the corpus.
func (h *Handler) Clubs(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.players.Clubs(), h.logger)
}

// Nationalities lists the distinct nationalities of the corpus.
func (h *Handler) Nationalities(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.players.Nationalities(), h.logger)
}

// Leagues lists the distinct leagues of the corpus.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.players.Leagues(), h.logger)
}
