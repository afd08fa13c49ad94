package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/warplet/base/ctx"
	mockRedis "github.com/x-xyz/warplet/service/redis/mocks"
)

func TestPingCache(t *testing.T) {
	req := require.New(t)

	r := &mockRedis.Service{}
	r.On("Ping", mock.Anything).Return(nil).Once()
	r.On("Set", mock.Anything, "healthcheck:testset", []byte("1"), 30*time.Second).Return(nil).Once()
	req.NoError(New(r).PingCache(ctx.Background()))
	r.AssertExpectations(t)
}

func TestPingCacheFailed(t *testing.T) {
	req := require.New(t)

	errDown := errors.New("connection refused")
	r := &mockRedis.Service{}
	r.On("Ping", mock.Anything).Return(errDown).Once()
	req.Equal(errDown, New(r).PingCache(ctx.Background()))
	r.AssertExpectations(t)
}

func TestPingWithoutRedis(t *testing.T) {
	require.NoError(t, New(nil).PingCache(ctx.Background()))
}
