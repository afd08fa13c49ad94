package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/service/cache/provider"
	"github.com/x-xyz/warplet/service/redis"
	mockRedis "github.com/x-xyz/warplet/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.redis.On("SetZip", mockCtx, k, v, time.Second).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))

	ts.redis.On("SetZip", mockCtx, k, v, redis.Forever).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, 0))
}

func (ts *testsuite) TestGet() {
	var (
		k   = "key"
		v   = []byte("value")
		res []byte
		ttl time.Duration
		err error
	)

	ts.redis.On("GetZip", mockCtx, k).Return(nil, redis.ErrNotFound).Once()
	res, _, err = ts.im.Get(mockCtx, k)
	ts.Equal([]byte(nil), res)
	ts.Equal(provider.ErrNotFound, err)

	ts.redis.On("GetZip", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(120, nil).Once()
	res, ttl, err = ts.im.Get(mockCtx, k)
	ts.Equal(v, res)
	ts.Equal(2*time.Minute, ttl)
	ts.NoError(err)

	ts.redis.On("GetZip", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(0, redis.ErrNotFound).Once()
	_, _, err = ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)

	ts.redis.On("GetZip", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(-1, nil).Once()
	res, ttl, err = ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, res)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestGetLastSecondIsMiss() {
	ts.redis.On("GetZip", mockCtx, "key").Return([]byte("value"), nil).Once()
	ts.redis.On("TTL", mockCtx, "key").Return(0, nil).Once()
	res, _, err := ts.im.Get(mockCtx, "key")
	ts.Nil(res)
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetFailed() {
	errConn := errors.New("conn refused")
	ts.redis.On("GetZip", mockCtx, "key").Return(nil, errConn).Once()
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(errConn, err)
}

func (ts *testsuite) TestDel() {
	ts.redis.On("Del", mockCtx, []string{"key"}).Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, "key"))
}
