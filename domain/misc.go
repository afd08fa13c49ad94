package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// IsValid reports whether a is 0x followed by exactly 40 hex digits
func (a Address) IsValid() bool {
	return addressPattern.MatchString(string(a))
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is the decimal representation of an on-chain uint256 token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) BigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("%w: %s", ErrInvalidTokenId, i)
	}
	return id, nil
}

func (i TokenId) ToHexString() (string, error) {
	id, err := i.BigInt()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%064x", id), nil
}

type TokenStandard string

const (
	TokenStandardErc721  TokenStandard = "ERC721"
	TokenStandardErc1155 TokenStandard = "ERC1155"
)

// NormalizeTokenStandard maps provider spellings such as "erc-1155" to a
// TokenStandard, returning "" when unknown
func NormalizeTokenStandard(s string) TokenStandard {
	v := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	switch TokenStandard(v) {
	case TokenStandardErc721:
		return TokenStandardErc721
	case TokenStandardErc1155:
		return TokenStandardErc1155
	}
	return ""
}
