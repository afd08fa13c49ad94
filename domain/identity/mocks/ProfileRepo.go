package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/warplet/base/ctx"
)

// ProfileRepo is a mock type for the ProfileRepo type
type ProfileRepo struct {
	mock.Mock
}

// GetByFid provides a mock function with given fields: _a0, _a1
func (_m *ProfileRepo) GetByFid(_a0 ctx.Ctx, _a1 uint64) ([]byte, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(ctx.Ctx, uint64) []byte); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, uint64) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByUsername provides a mock function with given fields: _a0, _a1
func (_m *ProfileRepo) GetByUsername(_a0 ctx.Ctx, _a1 string) ([]byte, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string) []byte); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
