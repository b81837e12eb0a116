package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports connectivity of the underlying database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check runs a trivial query against the database and reports connectivity.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, http.StatusOK, map[string]string{"message": "database is reachable"})
}
