package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/lineup-service/internal/http/requestutil"
	"github.com/preston-bernstein/lineup-service/internal/ingest"
	"github.com/preston-bernstein/lineup-service/internal/logging"
)

// Reloader replaces the player corpus.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	reloader Reloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token leaves the endpoints open.
func NewAdminHandler(reloader Reloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		token:    token,
		logger:   logger,
	}
}

// Reload re-reads the player corpus. The previous corpus stays live on failure.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reload not configured", logger)
		return
	}

	count, err := h.reloader.Reload(r.Context())
	switch {
	case errors.Is(err, ingest.ErrSourceUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, "player source unavailable", logger)
		return
	case errors.Is(err, ingest.ErrUnreadableFile):
		writeError(w, r, http.StatusInternalServerError, "player file unreadable", logger)
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "reload failed", logger)
		return
	}

	logging.Info(logger, "admin reload complete", slog.Int(logging.FieldCount, count))
	writeJSON(w, http.StatusOK, map[string]int{"count": count}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return true
	}
	got, ok := requestutil.BearerToken(r)
	return ok && subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
