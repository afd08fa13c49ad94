package redis

import (
	"time"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/service/cache/provider"
	"github.com/x-xyz/warplet/service/redis"
)

type impl struct {
	redis redis.Service
}

// NewRedis stores values gzipped, holding lists compress well
func NewRedis(redis redis.Service) provider.Provider {
	return &impl{redis}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.redis.GetZip(c, key)
	if err == redis.ErrNotFound {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.GetZip failed")
		return nil, time.Duration(0), err
	}

	ttl, err := im.redis.TTL(c, key)
	if err == redis.ErrNotFound {
		// expired in between
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.TTL failed")
		return nil, time.Duration(0), err
	}
	if ttl < 0 {
		return val, time.Duration(0), nil
	}
	if ttl == 0 {
		// TTL rounds to seconds, less than one left reads as 0 which a
		// front layer would take for "never expires"
		return nil, time.Duration(0), provider.ErrNotFound
	}
	return val, time.Duration(ttl) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = redis.Forever
	}
	if err := im.redis.SetZip(c, key, value, ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.SetZip failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.redis.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Del failed")
		return err
	}
	return nil
}
