package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/warplet/base/ctx"
	transfer "github.com/x-xyz/warplet/domain/transfer"
)

// UseCase is a mock type for the UseCase type
type UseCase struct {
	mock.Mock
}

// Prepare provides a mock function with given fields: _a0, _a1
func (_m *UseCase) Prepare(_a0 ctx.Ctx, _a1 transfer.PrepareParams) (*transfer.Call, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *transfer.Call
	if rf, ok := ret.Get(0).(func(ctx.Ctx, transfer.PrepareParams) *transfer.Call); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*transfer.Call)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, transfer.PrepareParams) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
