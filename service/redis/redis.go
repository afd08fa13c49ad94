package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/warplet/base/ctx"
)

var (
	// ErrNotFound is returned when a key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrGapTime is returned when no pool can serve a command
	ErrGapTime = errors.New("redis: no pool available")
)

// Forever marks a key without expiry
const Forever = time.Duration(-1)

// Service is the subset of redis commands the cache layer needs
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	GetZip(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetZip(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining seconds, -1 for keys without expiry
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
}
