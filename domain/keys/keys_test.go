package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	req := require.New(t)
	req.Equal("a:b:c", RedisKey("a", "b", "c"))
	req.Equal("a", RedisKey("a"))
	req.Equal("a-b", CustomKey("-", "a", "b"))
}

func TestGetPrefix(t *testing.T) {
	req := require.New(t)
	req.Equal("collections", GetPrefix("collections:0xabc:base"))
	req.Equal("healthcheck", GetPrefix("healthcheck:testset"))
	req.Equal("", GetPrefix("plain"))
}

func TestHoldingKey(t *testing.T) {
	req := require.New(t)
	req.Equal(
		"collections:0xabcdef:base",
		HoldingKey(PfxCollections, "0xABCDEF", "base"),
	)
	req.Equal(
		"tokens:0xabcdef:ethereum:0xc0ffee",
		HoldingKey(PfxTokens, "0xAbCdEf", "ethereum", "0xC0FFEE"),
	)
	req.Equal(HoldingKey(PfxTokens, "0xab", "base", "0xCD"), HoldingKey(PfxTokens, "0xAB", "base", "0xcd"))
}
