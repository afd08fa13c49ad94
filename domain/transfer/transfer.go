package transfer

import (
	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/nftitem"
)

// PrepareParams describes a token the connected wallet wants to send
type PrepareParams struct {
	Chain           string               `json:"chain" validate:"omitempty,chain"`
	ContractAddress domain.Address       `json:"contract" validate:"required,ethaddr"`
	TokenId         domain.TokenId       `json:"tokenId" validate:"required,numeric"`
	TokenStandard   domain.TokenStandard `json:"tokenStandard"`
	From            domain.Address       `json:"from" validate:"required,ethaddr"`
	// To is any query the identity resolver understands
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount"`
	// Balance is the owner's current balance, carried into the returned delta
	Balance string `json:"balance"`
	// Connected is the account the host wallet is signing for
	Connected domain.Address `json:"connected"`
}

// Call is an unsigned contract call for the wallet to submit
type Call struct {
	ChainId   domain.ChainId `json:"chainId"`
	To        domain.Address `json:"to"`
	Data      string         `json:"data"`
	Value     string         `json:"value"`
	Recipient domain.Address `json:"recipient"`
	// Delta can be applied to a cached token list until the next fetch
	Delta nftitem.Delta `json:"delta"`
}

type UseCase interface {
	Prepare(c ctx.Ctx, p PrepareParams) (*Call, error)
}
