package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain/keys"
	"github.com/x-xyz/warplet/service/cache/provider"
	"github.com/x-xyz/warplet/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))

	ts.Equal(v, *c)

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	// served from cache
	c2 := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c2, func() (interface{}, error) {
		return nil, errors.New("should not be called")
	}))
	ts.Equal(v, *c2)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	errGetter := errors.New("upstream down")
	c := &value{}
	ts.Equal(errGetter, ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return nil, errGetter
	}))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", c))
}

func (ts *testsuite) TestGetByFuncCollapsesMisses() {
	var (
		calls   int32
		release = make(chan struct{})
		wg      sync.WaitGroup
		results = make([]value, 8)
	)

	getter := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return &value{"shared"}, nil
	}

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ts.NoError(ts.im.GetByFunc(mockCtx, "key", &results[i], getter))
		}(i)
	}

	// let every caller reach the group before the getter returns
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	ts.Equal(int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		ts.Equal(value{"shared"}, r)
	}
}
