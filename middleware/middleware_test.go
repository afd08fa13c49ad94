package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/warplet/base/ctx"
)

func TestAddContext(t *testing.T) {
	req := require.New(t)
	m := InitMiddleware()
	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-1" },
	}))
	e.Use(m.AddContext())

	var got interface{}
	e.GET("/", func(c echo.Context) error {
		cont := c.Get("ctx").(ctx.Ctx)
		got = cont.Value("requestID")
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("req-1", got)
	req.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestResponseLoggerWritesHandlerError(t *testing.T) {
	req := require.New(t)
	m := InitMiddleware()
	e := echo.New()
	e.Use(m.ResponseLogger())
	e.Use(m.AddContext())
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	req.Equal(http.StatusInternalServerError, rec.Code)
}

func TestResponseLoggerWithoutContext(t *testing.T) {
	req := require.New(t)
	m := InitMiddleware()
	e := echo.New()
	e.Use(m.ResponseLogger())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("ok", rec.Body.String())
}

func TestStatusClass(t *testing.T) {
	req := require.New(t)
	req.Equal("2xx", statusClass(200))
	req.Equal("3xx", statusClass(304))
	req.Equal("4xx", statusClass(404))
	req.Equal("5xx", statusClass(503))
}
