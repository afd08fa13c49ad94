// Package cache keeps serialized provider answers for a fixed ttl. A miss is
// filled by the caller's getter, and concurrent misses of one key share a
// single getter call.
package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/service/cache/provider"
)

var ErrNotFound = errors.New("Cache not found")

// OneTimeGetter produces the value for a missing key. It returns a pointer
// to the same type as the container passed to GetByFunc.
type OneTimeGetter func() (interface{}, error)

type (
	Serializer   func(interface{}) ([]byte, error)
	Deserializer func([]byte, interface{}) error
)

type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
}

type ServiceConfig struct {
	// Ttl applies to every entry, 0 keeps entries until evicted
	Ttl time.Duration
	// Pfx namespaces keys in a shared provider
	Pfx   string
	Cache provider.Provider
	// jsoniter when nil
	Serialize   Serializer
	Deserialize Deserializer
}
