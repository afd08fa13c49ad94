package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/warplet/base/ctx"
	moralis "github.com/x-xyz/warplet/service/moralis"
)

// Client is a mock type for the Client type
type Client struct {
	mock.Mock
}

// GetCollectionsByOwner provides a mock function with given fields: _a0, _a1, _a2, _a3
func (_m *Client) GetCollectionsByOwner(_a0 ctx.Ctx, _a1 string, _a2 string, _a3 string) (*moralis.CollectionsResp, error) {
	ret := _m.Called(_a0, _a1, _a2, _a3)

	var r0 *moralis.CollectionsResp
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string, string, string) *moralis.CollectionsResp); ok {
		r0 = rf(_a0, _a1, _a2, _a3)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*moralis.CollectionsResp)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string, string, string) error); ok {
		r1 = rf(_a0, _a1, _a2, _a3)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetNftsByOwner provides a mock function with given fields: _a0, _a1, _a2, _a3, _a4
func (_m *Client) GetNftsByOwner(_a0 ctx.Ctx, _a1 string, _a2 string, _a3 string, _a4 string) (*moralis.NftsResp, error) {
	ret := _m.Called(_a0, _a1, _a2, _a3, _a4)

	var r0 *moralis.NftsResp
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string, string, string, string) *moralis.NftsResp); ok {
		r0 = rf(_a0, _a1, _a2, _a3, _a4)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*moralis.NftsResp)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string, string, string, string) error); ok {
		r1 = rf(_a0, _a1, _a2, _a3, _a4)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
