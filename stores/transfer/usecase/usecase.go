package usecase

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/warplet/base/abi"
	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
	"github.com/x-xyz/warplet/domain/identity"
	"github.com/x-xyz/warplet/domain/nftitem"
	"github.com/x-xyz/warplet/domain/transfer"
)

var (
	ErrRecipientNotFound = xerrors.Errorf("%w: recipient not found", domain.ErrBadParamInput)
	ErrSelfTransfer      = xerrors.Errorf("%w: recipient is the sender", domain.ErrBadParamInput)
	ErrNotConnected      = xerrors.Errorf("%w: sender must be the connected account", domain.ErrBadParamInput)
	ErrAmount            = xerrors.Errorf("%w: %v", domain.ErrBadParamInput, domain.ErrInvalidAmount)
)

type Cfg struct {
	Resolver identity.UseCase
	Runtime  domain.RuntimeEnv
}

type impl struct {
	resolver identity.UseCase
	runtime  domain.RuntimeEnv
}

func New(cfg *Cfg) transfer.UseCase {
	return &impl{
		resolver: cfg.Resolver,
		runtime:  cfg.Runtime,
	}
}

func (im *impl) Prepare(c ctx.Ctx, p transfer.PrepareParams) (*transfer.Call, error) {
	if !p.ContractAddress.IsValid() || !p.From.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	contract := p.ContractAddress.ToLower()
	from := p.From.ToLower()

	// an embedded host only signs for the account it connected
	if im.runtime.EmbeddedHost && !from.Equals(p.Connected) {
		return nil, ErrNotConnected
	}

	tokenId, err := p.TokenId.BigInt()
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	standard := domain.NormalizeTokenStandard(string(p.TokenStandard))
	if standard == "" {
		standard = domain.TokenStandardErc721
	}

	amount, err := parseAmount(p.Amount, standard, p.Balance)
	if err != nil {
		return nil, err
	}

	recipient, err := im.resolver.Resolve(c, p.To)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"to":  p.To,
		}).Info("resolver.Resolve failed")
		return nil, ErrRecipientNotFound
	}
	if recipient.Equals(from) {
		return nil, ErrSelfTransfer
	}

	var data []byte
	switch standard {
	case domain.TokenStandardErc1155:
		data, err = abi.PackErc1155SafeTransferFrom(common.HexToAddress(string(from)), common.HexToAddress(string(recipient)), tokenId, amount.BigInt())
	default:
		data, err = abi.PackErc721SafeTransferFrom(common.HexToAddress(string(from)), common.HexToAddress(string(recipient)), tokenId)
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"standard": standard,
		}).Error("abi pack failed")
		return nil, err
	}

	before := p.Balance
	if before == "" {
		before = "1"
	}

	ch := chain.Normalize(p.Chain)
	return &transfer.Call{
		ChainId:   ch.ChainId(),
		To:        contract,
		Data:      hexutil.Encode(data),
		Value:     "0x0",
		Recipient: recipient,
		Delta: nftitem.Delta{
			ContractAddress: contract,
			TokenId:         p.TokenId,
			Amount:          amount.String(),
			Before:          before,
		},
	}, nil
}

// parseAmount defaults to one, a single-token standard only moves one and a
// known balance caps the amount
func parseAmount(raw string, standard domain.TokenStandard, balance string) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)
	if raw == "" {
		return one, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsInteger() || amount.LessThan(one) {
		return decimal.Zero, ErrAmount
	}
	if standard == domain.TokenStandardErc721 && !amount.Equal(one) {
		return decimal.Zero, ErrAmount
	}
	if balance != "" {
		if max, err := decimal.NewFromString(balance); err == nil && amount.GreaterThan(max) {
			return decimal.Zero, ErrAmount
		}
	}
	return amount, nil
}
