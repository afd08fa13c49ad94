package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressIsValid(t *testing.T) {
	req := require.New(t)
	req.True(Address("0x939ae6A4C8dfDBB1f7085189574F0A938013952A").IsValid())
	req.True(Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952b").IsValid())
	req.False(Address("0x000").IsValid())
	req.False(Address("939ae6a4c8dfdbb1f7085189574f0a938013952b").IsValid())
	req.False(Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952bb").IsValid())
	req.False(Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952g").IsValid())
}

func TestTokenId(t *testing.T) {
	req := require.New(t)

	hex, err := TokenId("255").ToHexString()
	req.NoError(err)
	req.Equal("00000000000000000000000000000000000000000000000000000000000000ff", hex)

	// ids beyond 64 bits keep full precision
	id, err := TokenId("115792089237316195423570985008687907853269984665640564039457584007913129639935").BigInt()
	req.NoError(err)
	req.Equal(256, id.BitLen())

	_, err = TokenId("abc").BigInt()
	req.ErrorIs(err, ErrInvalidTokenId)
	_, err = TokenId("-1").BigInt()
	req.ErrorIs(err, ErrInvalidTokenId)
}

func TestNormalizeTokenStandard(t *testing.T) {
	req := require.New(t)
	req.Equal(TokenStandardErc721, NormalizeTokenStandard("erc721"))
	req.Equal(TokenStandardErc1155, NormalizeTokenStandard("ERC-1155"))
	req.Equal(TokenStandard(""), NormalizeTokenStandard("cryptopunks"))
}
