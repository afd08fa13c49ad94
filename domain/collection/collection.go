package collection

import (
	"sort"
	"strings"

	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
)

// UntitledName is used when the indexer has no name for a contract
const UntitledName = "Untitled Collection"

// Summary is one collection held by an owner on one chain
type Summary struct {
	Chain           chain.Chain    `json:"chain"`
	ContractAddress domain.Address `json:"contractAddress"`
	Name            string         `json:"name"`
	Symbol          string         `json:"symbol,omitempty"`
	TokenCount      int64          `json:"tokenCount"`
	Image           string         `json:"image,omitempty"`
}

// Key is the case-insensitive identity of a summary
func (s Summary) Key() string {
	return strings.ToLower(string(s.Chain)) + ":" + s.ContractAddress.ToLowerStr()
}

func hasName(name string) bool {
	n := strings.TrimSpace(name)
	return n != "" && n != UntitledName
}

// Merge dedupes summaries by Key keeping first-seen order. For duplicates the
// first non-empty symbol and image are kept, and a name is only filled while
// the kept one is blank or the untitled placeholder. The token count is the
// max of the two, never the sum. Entries without a contract are skipped.
func Merge(lists ...[]Summary) []Summary {
	idx := map[string]int{}
	res := []Summary{}
	for _, list := range lists {
		for _, s := range list {
			if s.ContractAddress.IsEmpty() || s.Chain == "" {
				continue
			}
			s.Chain = chain.Chain(strings.ToLower(string(s.Chain)))
			s.ContractAddress = s.ContractAddress.ToLower()

			i, ok := idx[s.Key()]
			if !ok {
				idx[s.Key()] = len(res)
				res = append(res, s)
				continue
			}

			prev := &res[i]
			if !hasName(prev.Name) && (hasName(s.Name) || (strings.TrimSpace(prev.Name) == "" && strings.TrimSpace(s.Name) != "")) {
				prev.Name = s.Name
			}
			if prev.Symbol == "" {
				prev.Symbol = s.Symbol
			}
			if prev.Image == "" {
				prev.Image = s.Image
			}
			if s.TokenCount > prev.TokenCount {
				prev.TokenCount = s.TokenCount
			}
		}
	}
	return res
}

// SortByTokenCount orders by token count descending, ties keep their order
func SortByTokenCount(list []Summary) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TokenCount > list[j].TokenCount
	})
}
