package domain

import (
	"github.com/x-xyz/warplet/base/ctx"
)

// gateways used when none is configured
const (
	DefaultIpfsGateway    = "https://ipfs.io/ipfs/"
	DefaultArweaveGateway = "https://arweave.net/"
)

// WebResourceReaderRepository reads one url scheme
type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// NormalizeUrl rewrites ipfs:// and ar:// urls to their http gateways
	NormalizeUrl(string) string
}
