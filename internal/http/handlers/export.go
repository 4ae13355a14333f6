package handlers

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"

	"github.com/preston-bernstein/lineup-service/internal/export"
	"github.com/preston-bernstein/lineup-service/internal/logging"
)

const maxExportBody = 1 << 20

// PrepareExport validates a lineup and returns the image metadata.
func (h *Handler) PrepareExport(w nethttp.ResponseWriter, r *nethttp.Request) {
	req, ok := h.decodeExport(w, r)
	if !ok {
		return
	}
	resp, err := export.Prepare(req)
	if errors.Is(err, export.ErrNoPlayers) {
		writeJSON(w, nethttp.StatusBadRequest, resp, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// ExportSVG renders the lineup as an SVG attachment.
func (h *Handler) ExportSVG(w nethttp.ResponseWriter, r *nethttp.Request) {
	req, ok := h.decodeExport(w, r)
	if !ok {
		return
	}
	svg := export.RenderSVG(req)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", `attachment; filename="lineup.svg"`)
	w.WriteHeader(nethttp.StatusOK)
	if _, err := io.WriteString(w, svg); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "failed to write svg", err)
	}
}

func (h *Handler) decodeExport(w nethttp.ResponseWriter, r *nethttp.Request) (export.Request, bool) {
	var req export.Request
	body := nethttp.MaxBytesReader(w, r.Body, maxExportBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "invalid export request", "error", err)
		writeError(w, r, nethttp.StatusBadRequest, "invalid export request", h.logger)
		return export.Request{}, false
	}
	return req, true
}
