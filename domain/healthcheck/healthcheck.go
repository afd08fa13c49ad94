package healthcheck

import (
	"github.com/x-xyz/warplet/base/ctx"
)

// HealthCheckUsecase reports whether the service can answer requests
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}

// HealthCheckRepo probes the shared cache, nil when it answers or is not
// configured
type HealthCheckRepo interface {
	PingCache(c ctx.Ctx) error
}
