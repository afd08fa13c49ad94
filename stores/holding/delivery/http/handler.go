package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/delivery"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
	"github.com/x-xyz/warplet/domain/collection"
	"github.com/x-xyz/warplet/domain/holding"
	"github.com/x-xyz/warplet/domain/nftitem"
)

type handler struct {
	holding holding.UseCase
	chains  []chain.Chain
}

type CollectionsResponse struct {
	Collections []collection.Summary `json:"collections"`
}

type TokensResponse struct {
	Nfts []nftitem.NftItem `json:"nfts"`
}

// New registers the holding routes, supported is the chain list /holdings
// fans out to when none is given
func New(e *echo.Echo, uc holding.UseCase, supported []chain.Chain) {
	if len(supported) == 0 {
		supported = chain.All()
	}
	h := &handler{
		holding: uc,
		chains:  supported,
	}

	e.GET("/collections", h.getCollections)
	e.GET("/tokens", h.getTokens)
	e.GET("/holdings", h.getHoldings)
}

func badParam(msg string) error {
	return xerrors.Errorf("%w: %s", domain.ErrBadParamInput, msg)
}

func parseOwner(raw string) (domain.Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", badParam("missing address")
	}
	owner := domain.Address(raw)
	if !owner.IsValid() {
		return "", domain.ErrInvalidAddress
	}
	return owner.ToLower(), nil
}

// getCollections godoc
// @Summary      collections held on one chain
// @Tags         holding
// @Produce      json
// @Param        address  query     string  true   "owner address"
// @Param        chain    query     string  false  "chain, defaults to base"
// @Success      200      {object}  CollectionsResponse
// @Failure      400      {object}  delivery.ErrorResponse
// @Failure      500      {object}  delivery.ErrorResponse
// @Router       /collections [get]
func (h *handler) getCollections(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address string `query:"address"`
		Chain   string `query:"chain"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, badParam(err.Error()))
	}
	owner, err := parseOwner(p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	list, err := h.holding.GetCollections(ctx, owner, chain.Normalize(p.Chain))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if list == nil {
		list = []collection.Summary{}
	}

	return delivery.MakeJsonResp(c, http.StatusOK, CollectionsResponse{list})
}

// getTokens godoc
// @Summary      tokens held within one collection
// @Tags         holding
// @Produce      json
// @Param        address   query     string  true   "owner address"
// @Param        chain     query     string  false  "chain, defaults to base"
// @Param        contract  query     string  true   "collection contract"
// @Success      200       {object}  TokensResponse
// @Failure      400       {object}  delivery.ErrorResponse
// @Failure      500       {object}  delivery.ErrorResponse
// @Router       /tokens [get]
func (h *handler) getTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address  string `query:"address"`
		Chain    string `query:"chain"`
		Contract string `query:"contract"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, badParam(err.Error()))
	}
	owner, err := parseOwner(p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	contract := domain.Address(strings.ToLower(strings.TrimSpace(p.Contract)))
	if contract == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, badParam("missing contract"))
	}
	if !contract.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	items, err := h.holding.GetTokens(ctx, owner, chain.Normalize(p.Chain), contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if items == nil {
		items = []nftitem.NftItem{}
	}

	return delivery.MakeJsonResp(c, http.StatusOK, TokensResponse{items})
}

// getHoldings godoc
// @Summary      collections held across chains
// @Description  merged by chain and contract, sorted by token count
// @Tags         holding
// @Produce      json
// @Param        address  query     string  true   "owner address"
// @Param        chains   query     string  false  "comma separated chains, defaults to every supported chain"
// @Success      200      {object}  CollectionsResponse
// @Failure      400      {object}  delivery.ErrorResponse
// @Failure      500      {object}  delivery.ErrorResponse
// @Router       /holdings [get]
func (h *handler) getHoldings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address string `query:"address"`
		Chains  string `query:"chains"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, badParam(err.Error()))
	}
	owner, err := parseOwner(p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	chains := chain.NormalizeList(strings.Split(p.Chains, ","))
	if len(chains) == 0 {
		chains = h.chains
	}

	list, err := h.holding.Aggregate(ctx, owner, chains)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if list == nil {
		list = []collection.Summary{}
	}

	return delivery.MakeJsonResp(c, http.StatusOK, CollectionsResponse{list})
}
