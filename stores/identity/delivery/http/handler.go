package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/delivery"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/identity"
)

type handler struct {
	resolver identity.UseCase
}

// ResolveResponse is the body of a successful resolution
type ResolveResponse struct {
	Address domain.Address `json:"address"`
}

func New(e *echo.Echo, resolver identity.UseCase) {
	h := &handler{
		resolver,
	}

	e.GET("/resolve", h.Resolve)
}

// Resolve godoc
// @Summary      resolve a query to a wallet address
// @Description  accepts an address, an ENS name, a farcaster fid or username
// @Tags         identity
// @Produce      json
// @Param        q    query     string  true  "query"
// @Success      200  {object}  ResolveResponse
// @Failure      400  {object}  delivery.ErrorResponse
// @Failure      404  {object}  delivery.ErrorResponse
// @Router       /resolve [get]
func (h *handler) Resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Q string `query:"q"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err))
	}
	if p.Q == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%w: missing q", domain.ErrBadParamInput))
	}

	address, err := h.resolver.Resolve(ctx, p.Q)
	if err != nil {
		if xerrors.Is(err, domain.ErrBadParamInput) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%w: missing q", domain.ErrBadParamInput))
		}
		// every other failure is reported as not found
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, ResolveResponse{address})
}
