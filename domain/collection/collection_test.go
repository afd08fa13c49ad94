package collection

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/warplet/domain/chain"
)

type CollectionTestSuite struct {
	suite.Suite
}

func (s *CollectionTestSuite) TestMergeKeepsMaxCount() {
	a := []Summary{{Chain: chain.Base, ContractAddress: "0xABC", Name: "A", TokenCount: 3}}
	b := []Summary{{Chain: chain.Base, ContractAddress: "0xabc", Name: "", TokenCount: 5}}

	res := Merge(a, b)
	s.Require().Len(res, 1)
	s.Equal(int64(5), res[0].TokenCount)
	s.Equal("A", res[0].Name)
	s.EqualValues("0xabc", res[0].ContractAddress)

	// order of the inputs does not matter for the count
	res = Merge(b, a)
	s.Require().Len(res, 1)
	s.Equal(int64(5), res[0].TokenCount)
	s.Equal("A", res[0].Name)
}

func (s *CollectionTestSuite) TestMergeNameAndImage() {
	res := Merge(
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: "Real", Image: "https://a/1.png", TokenCount: 1}},
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: UntitledName, TokenCount: 1}},
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: "  ", Image: "", Symbol: "R", TokenCount: 1}},
	)
	s.Require().Len(res, 1)
	s.Equal("Real", res[0].Name)
	s.Equal("https://a/1.png", res[0].Image)
	s.Equal("R", res[0].Symbol)

	res = Merge(
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: UntitledName}},
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: "Named", Image: "https://b/2.png"}},
	)
	s.Equal("Named", res[0].Name)
	s.Equal("https://b/2.png", res[0].Image)
}

func (s *CollectionTestSuite) TestMergeKeepsFirstNonEmpty() {
	a := []Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: "Named", TokenCount: 2}}
	b := []Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: UntitledName, Image: "https://b/2.png", Symbol: "B", TokenCount: 4}}

	ab, ba := Merge(a, b), Merge(b, a)
	s.Require().Len(ab, 1)
	s.Require().Len(ba, 1)
	s.Equal(ab, ba)
	s.Equal("Named", ab[0].Name)
	s.Equal("https://b/2.png", ab[0].Image)
	s.Equal("B", ab[0].Symbol)
	s.Equal(int64(4), ab[0].TokenCount)

	res := Merge(
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: "First", Image: "https://a/1.png"}},
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", Name: "Second", Image: "https://b/2.png"}},
	)
	s.Equal("First", res[0].Name)
	s.Equal("https://a/1.png", res[0].Image)
}

func (s *CollectionTestSuite) TestMergeSeparatesChains() {
	res := Merge(
		[]Summary{{Chain: chain.Base, ContractAddress: "0x1", TokenCount: 1}},
		[]Summary{{Chain: chain.Ethereum, ContractAddress: "0x1", TokenCount: 2}},
		[]Summary{{Chain: chain.Ethereum, ContractAddress: "", TokenCount: 9}},
	)
	s.Len(res, 2)
	s.Equal(chain.Base, res[0].Chain)
	s.Equal(chain.Ethereum, res[1].Chain)
}

func (s *CollectionTestSuite) TestMergeIsIdempotent() {
	in := []Summary{
		{Chain: chain.Base, ContractAddress: "0x1", Name: "A", TokenCount: 2},
		{Chain: chain.Base, ContractAddress: "0x2", Name: "B", TokenCount: 7},
		{Chain: chain.Base, ContractAddress: "0x1", Name: "A", TokenCount: 4},
	}
	once := Merge(in)
	s.Equal(once, Merge(once))
	s.Equal(once, Merge(once, once))
}

func (s *CollectionTestSuite) TestSortByTokenCount() {
	list := []Summary{
		{ContractAddress: "0x1", TokenCount: 1},
		{ContractAddress: "0x2", TokenCount: 5},
		{ContractAddress: "0x3", TokenCount: 1},
		{ContractAddress: "0x4", TokenCount: 3},
	}
	SortByTokenCount(list)
	got := []string{}
	for _, c := range list {
		got = append(got, string(c.ContractAddress))
	}
	s.Equal([]string{"0x2", "0x4", "0x1", "0x3"}, got)
}

func TestCollectionTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionTestSuite))
}
