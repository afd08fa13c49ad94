package nftitem

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/warplet/domain"
)

// Delta is a transfer the owner has sent but an indexer may not reflect yet
type Delta struct {
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	// Amount sent, decimal string
	Amount string `json:"amount"`
	// Before is the balance at the time the transfer was sent
	Before string `json:"before"`
}

func (d Delta) key() string {
	return NftItem{ContractAddress: d.ContractAddress, TokenId: d.TokenId}.Key()
}

func parseOr(s string, def decimal.Decimal) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return v
}

// ApplyTransfer returns a copy of items with d subtracted. A balance that
// would reach zero or below drops the entry, it never goes negative. Items
// not matching d are returned unchanged.
func ApplyTransfer(items []NftItem, d Delta) []NftItem {
	sent := parseOr(d.Amount, decimal.NewFromInt(1))
	res := make([]NftItem, 0, len(items))
	for _, item := range items {
		if item.Key() != d.key() {
			res = append(res, item)
			continue
		}
		left := item.Balance().Sub(sent)
		if !left.IsPositive() {
			continue
		}
		item.Amount = left.String()
		res = append(res, item)
	}
	return res
}

// Reconcile merges a fresh authoritative fetch with the pending deltas.
// A delta whose item in fresh no longer has the Before balance is settled
// and dropped. The others are applied again and returned as still pending.
func Reconcile(fresh []NftItem, pending []Delta) ([]NftItem, []Delta) {
	byKey := map[string]NftItem{}
	for _, item := range fresh {
		byKey[item.Key()] = item
	}

	res := fresh
	stillPending := []Delta{}
	for _, d := range pending {
		item, ok := byKey[d.key()]
		if !ok {
			continue
		}
		if !item.Balance().Equal(parseOr(d.Before, decimal.NewFromInt(1))) {
			continue
		}
		res = ApplyTransfer(res, d)
		stillPending = append(stillPending, d)
	}
	return res, stillPending
}
