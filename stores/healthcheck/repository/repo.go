package repository

import (
	"time"

	"github.com/x-xyz/warplet/base/ctx"
	hcdomain "github.com/x-xyz/warplet/domain/healthcheck"
	"github.com/x-xyz/warplet/domain/keys"
	"github.com/x-xyz/warplet/service/redis"
)

type impl struct {
	redisCache redis.Service
}

// New creates a HealthCheckRepo, a nil redisCache means the service runs on
// the in-process cache only and there is nothing to ping
func New(redisCache redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		redisCache: redisCache,
	}
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}

	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.redisCache.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis error")
		return err
	}

	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
