package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/warplet/base/ctx"
	domain "github.com/x-xyz/warplet/domain"
	chain "github.com/x-xyz/warplet/domain/chain"
	collection "github.com/x-xyz/warplet/domain/collection"
	nftitem "github.com/x-xyz/warplet/domain/nftitem"
)

// UseCase is a mock type for the UseCase type
type UseCase struct {
	mock.Mock
}

// GetCollections provides a mock function with given fields: _a0, _a1, _a2
func (_m *UseCase) GetCollections(_a0 ctx.Ctx, _a1 domain.Address, _a2 chain.Chain) ([]collection.Summary, error) {
	ret := _m.Called(_a0, _a1, _a2)

	var r0 []collection.Summary
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, chain.Chain) []collection.Summary); ok {
		r0 = rf(_a0, _a1, _a2)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]collection.Summary)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, chain.Chain) error); ok {
		r1 = rf(_a0, _a1, _a2)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetTokens provides a mock function with given fields: _a0, _a1, _a2, _a3
func (_m *UseCase) GetTokens(_a0 ctx.Ctx, _a1 domain.Address, _a2 chain.Chain, _a3 domain.Address) ([]nftitem.NftItem, error) {
	ret := _m.Called(_a0, _a1, _a2, _a3)

	var r0 []nftitem.NftItem
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, chain.Chain, domain.Address) []nftitem.NftItem); ok {
		r0 = rf(_a0, _a1, _a2, _a3)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]nftitem.NftItem)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, chain.Chain, domain.Address) error); ok {
		r1 = rf(_a0, _a1, _a2, _a3)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Aggregate provides a mock function with given fields: _a0, _a1, _a2
func (_m *UseCase) Aggregate(_a0 ctx.Ctx, _a1 domain.Address, _a2 []chain.Chain) ([]collection.Summary, error) {
	ret := _m.Called(_a0, _a1, _a2)

	var r0 []collection.Summary
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, []chain.Chain) []collection.Summary); ok {
		r0 = rf(_a0, _a1, _a2)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]collection.Summary)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, []chain.Chain) error); ok {
		r1 = rf(_a0, _a1, _a2)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
