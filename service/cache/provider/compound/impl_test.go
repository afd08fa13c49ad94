package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/service/cache/provider"
	"github.com/x-xyz/warplet/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/warplet/service/cache/provider/redis"
	mockRedis "github.com/x-xyz/warplet/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type brokenLayer struct{}

func (brokenLayer) Get(ctx.Ctx, string) ([]byte, time.Duration, error) {
	return nil, 0, errors.New("connection refused")
}

func (brokenLayer) Set(ctx.Ctx, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenLayer) Del(ctx.Ctx, string) error {
	return errors.New("connection refused")
}

type testsuite struct {
	suite.Suite
	lyr0 provider.Provider
	lyr1 provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = primitive.NewPrimitive("layer 0", 1)
	ts.lyr1 = primitive.NewPrimitive("layer 1", 1)
	ts.im = NewCompound([]provider.Provider{ts.lyr0, ts.lyr1}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.lyr1.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)

	time.Sleep(1100 * time.Millisecond)
	_, _, e = ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
	_, _, e = ts.lyr1.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc  string
		Key   string
		Val   string
		Err   error
		Cache provider.Provider
	}{
		{
			Desc:  "Success from layer 0",
			Key:   "key 0",
			Val:   "value 0",
			Err:   nil,
			Cache: ts.lyr0,
		},
		{
			Desc:  "Success from layer 1",
			Key:   "key 1",
			Val:   "value 1",
			Err:   nil,
			Cache: ts.lyr1,
		},
		{
			Desc: "Not found",
			Err:  provider.ErrNotFound,
		},
	}

	for _, c := range cases {
		if len(c.Key) > 0 && c.Cache != nil {
			ts.NoError(c.Cache.Set(mockCtx, c.Key, []byte(c.Val), 10*time.Second), c.Desc)
		}

		v, _, e := ts.im.Get(mockCtx, c.Key)
		ts.Equal(c.Val, string(v), c.Desc)
		ts.Equal(c.Err, e, c.Desc)
	}
}

func (ts *testsuite) TestGetFillsFrontLayer() {
	ts.NoError(ts.lyr1.Set(mockCtx, "key", []byte("value"), time.Minute))

	v, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal("value", string(v))
	ts.True(ttl > 0)

	v, _, err = ts.lyr0.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal("value", string(v))
}

func (ts *testsuite) TestBrokenLayerIsMiss() {
	im := NewCompound([]provider.Provider{ts.lyr0, brokenLayer{}})

	_, _, err := im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)

	// front layer is still written
	ts.Error(im.Set(mockCtx, "key", []byte("value"), time.Minute))
	v, _, err := im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal("value", string(v))
}

func (ts *testsuite) TestExpiringRedisEntryNotFilledForever() {
	red := &mockRedis.Service{}
	red.On("GetZip", mockCtx, "key").Return([]byte("value"), nil).Once()
	red.On("TTL", mockCtx, "key").Return(0, nil).Once()
	im := NewCompound([]provider.Provider{ts.lyr0, redisProvider.NewRedis(red)})

	_, _, err := im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
	_, _, err = ts.lyr0.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
	red.AssertExpectations(ts.T())
}
