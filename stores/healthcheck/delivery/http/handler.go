package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/delivery"
	hcdomain "github.com/x-xyz/warplet/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check godoc
// @Summary      service health
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  delivery.ErrorResponse
// @Router       /health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		return c.JSON(http.StatusServiceUnavailable, delivery.ErrorResponse{
			Error: "cache unavailable",
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
