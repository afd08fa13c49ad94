package ens

import (
	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain"
)

// ENS resolves ethereum name service names. An unregistered name or a name
// without an address record yields domain.ErrNotFound.
type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
}
