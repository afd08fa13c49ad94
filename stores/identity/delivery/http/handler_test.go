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
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/identity/mocks"
)

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newEcho(uc *mocks.UseCase) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc)
	return e
}

func TestResolve(t *testing.T) {
	req := require.New(t)
	uc := &mocks.UseCase{}
	uc.On("Resolve", mock.Anything, "vitalik.eth").Return(domain.Address("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"), nil).Once()

	rec := serve(newEcho(uc), "/resolve?q=vitalik.eth")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"address":"0xd8da6bf26964af9d7eed9e03e53415d37aa96045"}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestResolveMissingQuery(t *testing.T) {
	req := require.New(t)
	rec := serve(newEcho(&mocks.UseCase{}), "/resolve")
	req.Equal(http.StatusBadRequest, rec.Code)
	req.Contains(rec.Body.String(), `"error"`)
}

func TestResolveNotFound(t *testing.T) {
	req := require.New(t)
	uc := &mocks.UseCase{}
	uc.On("Resolve", mock.Anything, "ghost").Return(domain.Address(""), errors.New("anything")).Once()

	rec := serve(newEcho(uc), "/resolve?q=ghost")
	req.Equal(http.StatusNotFound, rec.Code)
	req.JSONEq(`{"error":"Not found"}`, rec.Body.String())
}
