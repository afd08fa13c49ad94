package chain

import (
	"strings"

	"github.com/x-xyz/warplet/domain"
)

// Chain is the canonical spelling of a supported EVM chain
type Chain string

const (
	Ethereum  Chain = "ethereum"
	Base      Chain = "base"
	Polygon   Chain = "polygon"
	Optimism  Chain = "optimism"
	Arbitrum  Chain = "arbitrum"
	Avalanche Chain = "avalanche"
	Bsc       Chain = "bsc"

	// Default is used whenever a chain is missing or unrecognized
	Default = Base
)

type info struct {
	chainId        domain.ChainId
	moralisCode    string
	openseaSegment string
	displayName    string
}

var (
	chainInfo = map[Chain]info{
		Ethereum:  {1, "eth", "ethereum", "Ethereum"},
		Base:      {8453, "base", "base", "Base"},
		Polygon:   {137, "polygon", "matic", "Polygon"},
		Optimism:  {10, "optimism", "optimism", "Optimism"},
		Arbitrum:  {42161, "arbitrum", "arbitrum", "Arbitrum"},
		Avalanche: {43114, "avalanche", "avalanche", "Avalanche"},
		Bsc:       {56, "bsc", "bsc", "BNB Chain"},
	}

	aliases = map[string]Chain{
		"eth":                 Ethereum,
		"mainnet":             Ethereum,
		"homestead":           Ethereum,
		"matic":               Polygon,
		"op":                  Optimism,
		"arb":                 Arbitrum,
		"arbitrum-one":        Arbitrum,
		"avax":                Avalanche,
		"bnb":                 Bsc,
		"binance":             Bsc,
		"binance-smart-chain": Bsc,
	}
)

// All returns every supported chain in display order
func All() []Chain {
	return []Chain{Ethereum, Base, Polygon, Optimism, Arbitrum, Avalanche, Bsc}
}

// Parse maps a chain name or alias to its canonical Chain, case-insensitively
func Parse(s string) (Chain, bool) {
	c := strings.ToLower(strings.TrimSpace(s))
	if _, ok := chainInfo[Chain(c)]; ok {
		return Chain(c), true
	}
	if alias, ok := aliases[c]; ok {
		return alias, true
	}
	return "", false
}

// Normalize is Parse falling back to Default
func Normalize(s string) Chain {
	if c, ok := Parse(s); ok {
		return c
	}
	return Default
}

// NormalizeList normalizes and dedupes names keeping first-seen order
func NormalizeList(names []string) []Chain {
	seen := map[Chain]bool{}
	res := []Chain{}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		c := Normalize(n)
		if seen[c] {
			continue
		}
		seen[c] = true
		res = append(res, c)
	}
	return res
}

func (c Chain) String() string {
	return string(c)
}

func (c Chain) IsSupported() bool {
	_, ok := chainInfo[c]
	return ok
}

func (c Chain) ChainId() domain.ChainId {
	return chainInfo[c].chainId
}

// MoralisCode is the value of the indexer's chain query parameter
func (c Chain) MoralisCode() string {
	return chainInfo[c].moralisCode
}

// OpenseaSegment is the chain part of a marketplace asset url
func (c Chain) OpenseaSegment() string {
	return chainInfo[c].openseaSegment
}

func (c Chain) DisplayName() string {
	return chainInfo[c].displayName
}
