// Package provider holds the byte level stores behind cache.Service
package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/warplet/base/ctx"
)

// ErrNotFound is returned by Get for a missing or expired key
var ErrNotFound = errors.New("Cache not found")

type Provider interface {
	// Get returns the value and its remaining ttl, 0 meaning no expiry
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	// Set stores value, a ttl <= 0 never expires
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
