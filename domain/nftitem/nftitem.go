package nftitem

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
)

const openseaAssetUrl = "https://opensea.io/assets"

// NftItem is one token held by an owner
type NftItem struct {
	Chain           chain.Chain          `json:"chain"`
	ContractAddress domain.Address       `json:"contractAddress"`
	TokenId         domain.TokenId       `json:"tokenId"`
	Name            string               `json:"name,omitempty"`
	Image           string               `json:"image,omitempty"`
	TokenStandard   domain.TokenStandard `json:"tokenStandard,omitempty"`
	// Amount is the decimal balance, only meaningful for multi-token standards
	Amount     string `json:"amount,omitempty"`
	TokenUri   string `json:"tokenUri,omitempty"`
	OpenseaUrl string `json:"openseaUrl"`
}

// Key is the case-insensitive identity of an item within one chain
func (i NftItem) Key() string {
	return i.ContractAddress.ToLowerStr() + ":" + i.TokenId.String()
}

// Balance returns Amount, a missing or malformed amount counts as one
func (i NftItem) Balance() decimal.Decimal {
	if i.Amount == "" {
		return decimal.NewFromInt(1)
	}
	d, err := decimal.NewFromString(i.Amount)
	if err != nil {
		return decimal.NewFromInt(1)
	}
	return d
}

// OpenseaUrl builds the marketplace link of a token
func OpenseaUrl(c chain.Chain, contract domain.Address, tokenId domain.TokenId) string {
	return fmt.Sprintf("%s/%s/%s/%s", openseaAssetUrl, c.OpenseaSegment(), strings.ToLower(string(contract)), tokenId)
}
