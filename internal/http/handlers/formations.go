package handlers

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/lineup-service/internal/http/requestutil"
)

// Formations lists every formation template.
func (h *Handler) Formations(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.formations.All(), h.logger)
}

// FormationByID returns one formation, mirrored when flipH/flipV are set.
func (h *Handler) FormationByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := mux.Vars(r)["id"]
	f, ok := h.formations.ByID(id, requestutil.BoolQuery(r, "flipH"), requestutil.BoolQuery(r, "flipV"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "formation not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, f, h.logger)
}

// FormationsByCategory lists the formations of one category.
func (h *Handler) FormationsByCategory(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.formations.ByCategory(mux.Vars(r)["category"]), h.logger)
}
