package usecase

import (
	"github.com/x-xyz/warplet/base/ctx"
	hcdomain "github.com/x-xyz/warplet/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check fails only when the redis layer is configured and unreachable, the
// in-process layer keeps serving otherwise
func (im *impl) Check(c ctx.Ctx) error {
	if err := im.repo.PingCache(c); err != nil {
		c.WithField("err", err).Warn("PingCache failed")
		return err
	}
	return nil
}
