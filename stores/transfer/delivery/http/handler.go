package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/delivery"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/transfer"
)

type handler struct {
	transfer transfer.UseCase
}

func New(e *echo.Echo, uc transfer.UseCase) {
	h := &handler{
		transfer: uc,
	}

	g := e.Group("/transfer")
	g.POST("/prepare", h.prepare)
}

// prepare godoc
// @Summary      build an unsigned safeTransferFrom call
// @Description  the recipient may be any query /resolve understands
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        body  body      transfer.PrepareParams  true  "token and recipient"
// @Success      200   {object}  transfer.Call
// @Failure      400   {object}  delivery.ErrorResponse
// @Failure      500   {object}  delivery.ErrorResponse
// @Router       /transfer/prepare [post]
func (h *handler) prepare(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := transfer.PrepareParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err))
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err))
	}

	call, err := h.transfer.Prepare(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, call)
}
