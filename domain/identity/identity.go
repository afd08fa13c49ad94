package identity

import (
	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain"
)

// UseCase resolves a free-form query into a wallet address
type UseCase interface {
	// Resolve returns the lowercased address of q or domain.ErrNotFound
	Resolve(c ctx.Ctx, q string) (domain.Address, error)
}

// NameService resolves a name such as vitalik.eth
type NameService interface {
	Resolve(c ctx.Ctx, name string) (domain.Address, error)
}

// ProfileRepo looks up a social profile document. The returned bytes are the
// raw JSON body, address extraction is left to ExtractAddress.
type ProfileRepo interface {
	GetByFid(c ctx.Ctx, fid uint64) ([]byte, error)
	GetByUsername(c ctx.Ctx, username string) ([]byte, error)
}
