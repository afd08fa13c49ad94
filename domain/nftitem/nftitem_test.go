package nftitem

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
)

type NftItemTestSuite struct {
	suite.Suite
}

func (s *NftItemTestSuite) TestOpenseaUrl() {
	s.Equal(
		"https://opensea.io/assets/ethereum/0xabc/12",
		OpenseaUrl(chain.Ethereum, "0xABC", "12"),
	)
	s.Equal(
		"https://opensea.io/assets/matic/0xabc/1",
		OpenseaUrl(chain.Polygon, "0xabc", "1"),
	)
}

func (s *NftItemTestSuite) TestBalance() {
	s.Equal("1", NftItem{}.Balance().String())
	s.Equal("5", NftItem{Amount: "5"}.Balance().String())
	s.Equal("1", NftItem{Amount: "five"}.Balance().String())
	s.Equal(
		"340282366920938463463374607431768211456",
		NftItem{Amount: "340282366920938463463374607431768211456"}.Balance().String(),
	)
}

func (s *NftItemTestSuite) TestParseMetadata() {
	meta, err := ParseMetadata([]byte(`{"name":"n","image":"ipfs://x"}`))
	s.Require().NoError(err)
	s.Equal("n", meta.Name())
	s.Equal("ipfs://x", FirstMatch(meta, ImageRules))

	// indexers often ship metadata as an encoded string
	meta, err = ParseMetadata([]byte(`"{\"image_url\":\"https://a/b.png\"}"`))
	s.Require().NoError(err)
	s.Equal("https://a/b.png", FirstMatch(meta, ImageRules))

	_, err = ParseMetadata([]byte(`not json`))
	s.ErrorIs(err, domain.ErrInvalidJsonFormat)
}

func (s *NftItemTestSuite) TestFirstMatchOrder() {
	meta := Metadata{
		"imageUrl":      "c",
		"image_url":     "b",
		"animation_url": "d",
	}
	s.Equal("b", FirstMatch(meta, ImageRules, AnimationRules))

	meta = Metadata{"animation_url": "d", "image": "  "}
	s.Equal("", FirstMatch(meta, ImageRules))
	s.Equal("d", FirstMatch(meta, ImageRules, AnimationRules))

	meta = Metadata{"media": map[string]interface{}{"originalMediaUrl": "m"}}
	s.Equal("m", FirstMatch(meta, MediaRules))
	s.Equal("", FirstMatch(Metadata{"media": "flat"}, MediaRules))
}

func (s *NftItemTestSuite) TestApplyTransfer() {
	items := []NftItem{
		{ContractAddress: "0xaaa", TokenId: "1", TokenStandard: domain.TokenStandardErc721},
		{ContractAddress: "0xbbb", TokenId: "2", TokenStandard: domain.TokenStandardErc1155, Amount: "3"},
	}

	res := ApplyTransfer(items, Delta{ContractAddress: "0xAAA", TokenId: "1", Amount: "1"})
	s.Require().Len(res, 1)
	s.EqualValues("0xbbb", res[0].ContractAddress)

	res = ApplyTransfer(items, Delta{ContractAddress: "0xbbb", TokenId: "2", Amount: "2"})
	s.Require().Len(res, 2)
	s.Equal("1", res[1].Amount)
	// input untouched
	s.Equal("3", items[1].Amount)

	// overdraw clamps and drops instead of going negative
	res = ApplyTransfer(items, Delta{ContractAddress: "0xbbb", TokenId: "2", Amount: "10"})
	s.Len(res, 1)

	res = ApplyTransfer(items, Delta{ContractAddress: "0xccc", TokenId: "2", Amount: "1"})
	s.Equal(items, res)
}

func (s *NftItemTestSuite) TestReconcile() {
	pending := []Delta{
		{ContractAddress: "0xbbb", TokenId: "2", Amount: "1", Before: "3"},
		{ContractAddress: "0xaaa", TokenId: "1", Amount: "1", Before: "1"},
	}

	// indexer has not caught up yet
	fresh := []NftItem{
		{ContractAddress: "0xaaa", TokenId: "1"},
		{ContractAddress: "0xbbb", TokenId: "2", Amount: "3"},
	}
	res, left := Reconcile(fresh, pending)
	s.Len(left, 2)
	s.Require().Len(res, 1)
	s.Equal("2", res[0].Amount)

	// indexer caught up: the fresh list wins
	fresh = []NftItem{
		{ContractAddress: "0xbbb", TokenId: "2", Amount: "2"},
	}
	res, left = Reconcile(fresh, pending)
	s.Empty(left)
	s.Equal(fresh, res)
}

func TestNftItemTestSuite(t *testing.T) {
	suite.Run(t, new(NftItemTestSuite))
}
