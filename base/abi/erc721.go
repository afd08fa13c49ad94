package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ERC721TokenABI abi.ABI

// only the 3 argument overload of safeTransferFrom is declared
var erc721ABI = `[{"type":"function","name":"safeTransferFrom","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"address","name":"_from"},{"type":"address","name":"_to"},{"type":"uint256","name":"_tokenId"}],"outputs":[]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"_tokenId"}],"outputs":[{"type":"address"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		panic("Failed to parse erc721 abi")
	}
	ERC721TokenABI = _abi
}

// PackErc721SafeTransferFrom encodes safeTransferFrom(from, to, tokenId)
func PackErc721SafeTransferFrom(from, to common.Address, tokenId *big.Int) ([]byte, error) {
	return ERC721TokenABI.Pack("safeTransferFrom", from, to, tokenId)
}
