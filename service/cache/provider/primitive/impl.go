package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of sizeMB megabytes. Entries are
// evicted early once the cache is full.
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Get failed")
		return nil, time.Duration(0), err
	}
	if ttl == 0 {
		return val, time.Duration(0), nil
	}
	// GetWithExpiration returns the unix second the entry expires at
	return val, time.Until(time.Unix(int64(ttl), 0)), nil
}

// Set rounds a positive ttl up to whole seconds, freecache reads 0 as no
// expiry
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	expire := 0
	if ttl > 0 {
		expire = int((ttl + time.Second - 1) / time.Second)
	}
	if err := im.cache.Set([]byte(key), value, expire); err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
