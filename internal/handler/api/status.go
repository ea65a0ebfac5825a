package api

import (
	"net/http"
	"time"

	"MarketBell/internal/domain/market"
	"MarketBell/internal/domain/models"
	xhttp "MarketBell/pkg/http"
	xlogger "MarketBell/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StatusHandler serves the ops endpoints: liveness and the derived session
// status of every tracked market.
type StatusHandler struct {
	logger   *xlogger.Logger
	registry *market.Registry
}

func NewStatusHandler(logger *xlogger.Logger, registry *market.Registry) *StatusHandler {
	return &StatusHandler{logger: logger, registry: registry}
}

func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/status", h.Status)
}

func (h *StatusHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Status returns all sessions, or a single one when ?market= is given.
func (h *StatusHandler) Status(c echo.Context) error {
	req := &models.StatusRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	now := time.Now()
	if req.Market != "" {
		def, ok := h.registry.Get(req.Market)
		if !ok {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("unknown market %q", req.Market))
		}
		return xhttp.SuccessResponse(c, market.Status(def, now))
	}
	return xhttp.SuccessResponse(c, market.Statuses(h.registry, now))
}
