package holding

import (
	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
	"github.com/x-xyz/warplet/domain/collection"
	"github.com/x-xyz/warplet/domain/nftitem"
)

// IndexerRepo reads an owner's holdings from a third party NFT indexer
type IndexerRepo interface {
	GetCollections(c ctx.Ctx, owner domain.Address, ch chain.Chain) ([]collection.Summary, error)
	GetTokens(c ctx.Ctx, owner domain.Address, ch chain.Chain, contract domain.Address) ([]nftitem.NftItem, error)
}

// UseCase aggregates holdings of an owner
type UseCase interface {
	// GetCollections returns the collections held on one chain
	GetCollections(c ctx.Ctx, owner domain.Address, ch chain.Chain) ([]collection.Summary, error)
	// GetTokens returns the tokens held within one collection
	GetTokens(c ctx.Ctx, owner domain.Address, ch chain.Chain, contract domain.Address) ([]nftitem.NftItem, error)
	// Aggregate fans GetCollections out over chains, a failing chain
	// contributes nothing. The result is merged and sorted by token count.
	Aggregate(c ctx.Ctx, owner domain.Address, chains []chain.Chain) ([]collection.Summary, error)
}
