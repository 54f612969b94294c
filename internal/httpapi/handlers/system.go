package handlers

import (
	"context"
	"log"
	"net/http"

	"flavors/backend/internal/httpapi/response"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	DB Pinger
}

func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{DB: db}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"message": "Flavors API"})
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.Ping(r.Context()); err != nil {
		log.Printf("health check failed: %v", err)
		response.ErrorWithDetails(w, r, http.StatusInternalServerError, "database unavailable", err.Error())
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
