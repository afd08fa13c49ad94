package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/warplet/base/ctx"
	domain "github.com/x-xyz/warplet/domain"
)

// NameService is a mock type for the NameService type
type NameService struct {
	mock.Mock
}

// Resolve provides a mock function with given fields: _a0, _a1
func (_m *NameService) Resolve(_a0 ctx.Ctx, _a1 string) (domain.Address, error) {
	ret := _m.Called(_a0, _a1)

	var r0 domain.Address
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string) domain.Address); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Get(0).(domain.Address)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
