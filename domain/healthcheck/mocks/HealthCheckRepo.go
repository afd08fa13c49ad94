package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/warplet/base/ctx"
)

// HealthCheckRepo is a mock type for the HealthCheckRepo type
type HealthCheckRepo struct {
	mock.Mock
}

// PingCache provides a mock function with given fields: _a0
func (_m *HealthCheckRepo) PingCache(_a0 ctx.Ctx) error {
	ret := _m.Called(_a0)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx) error); ok {
		r0 = rf(_a0)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
