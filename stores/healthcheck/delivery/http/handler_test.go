package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain/healthcheck/mocks"
	"github.com/x-xyz/warplet/stores/healthcheck/usecase"
)

func serveHealth(repo *mocks.HealthCheckRepo) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, usecase.New(repo))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHealthy(t *testing.T) {
	req := require.New(t)
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingCache", mock.Anything).Return(nil).Once()

	rec := serveHealth(repo)
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"healthy":"ok"}`, rec.Body.String())
}

func TestUnhealthy(t *testing.T) {
	req := require.New(t)
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingCache", mock.Anything).Return(errors.New("dial tcp: refused")).Once()

	rec := serveHealth(repo)
	req.Equal(http.StatusServiceUnavailable, rec.Code)
	req.JSONEq(`{"error":"cache unavailable"}`, rec.Body.String())
}
