package redis

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/database/redisclient"
	"github.com/x-xyz/warplet/base/metrics"
)

// needs a redis server, REDIS_URI defaults to localhost:6379
type redisSuite struct {
	suite.Suite

	im Service
}

func (s *redisSuite) SetupSuite() {
	uri := os.Getenv("REDIS_URI")
	if uri == "" {
		uri = "localhost:6379"
	}
	pool, err := redisclient.ConnectRedis(uri, "", redisclient.RedisParam{PoolMultiplier: 2})
	if err != nil {
		s.T().Skip("redis not reachable")
	}
	s.im = New("test", metrics.New("redis_test"), &Pools{Src: pool})
}

func (s *redisSuite) TestSetGet() {
	c := ctx.Background()
	k := "warplet:test:setget"

	s.NoError(s.im.Set(c, k, []byte("v"), time.Minute))
	v, err := s.im.Get(c, k)
	s.NoError(err)
	s.Equal([]byte("v"), v)

	ttl, err := s.im.TTL(c, k)
	s.NoError(err)
	s.InDelta(60, ttl, 2)

	n, err := s.im.Del(c, k)
	s.NoError(err)
	s.Equal(1, n)

	_, err = s.im.Get(c, k)
	s.ErrorIs(err, ErrNotFound)
	_, err = s.im.TTL(c, k)
	s.ErrorIs(err, ErrNotFound)
}

func (s *redisSuite) TestZip() {
	c := ctx.Background()
	k := "warplet:test:zip"
	defer s.im.Del(c, k)

	s.NoError(s.im.SetZip(c, k, []byte(`{"collections":[]}`), time.Minute))
	v, err := s.im.GetZip(c, k)
	s.NoError(err)
	s.Equal(`{"collections":[]}`, string(v))

	raw, err := s.im.Get(c, k)
	s.NoError(err)
	s.NotEqual(v, raw)
}

func (s *redisSuite) TestForever() {
	c := ctx.Background()
	k := "warplet:test:forever"
	defer s.im.Del(c, k)

	s.NoError(s.im.Set(c, k, []byte("1"), Forever))
	ttl, err := s.im.TTL(c, k)
	s.NoError(err)
	s.Equal(-1, ttl)
}

func (s *redisSuite) TestPing() {
	s.NoError(s.im.Ping(ctx.Background()))
}

func TestRedisSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	suite.Run(t, new(redisSuite))
}

func TestWithoutPool(t *testing.T) {
	im := New("none", metrics.New("redis_test"), &Pools{})
	_, err := im.Get(ctx.Background(), "k")
	if err != ErrGapTime {
		t.Fatalf("expected ErrGapTime, got %v", err)
	}
}
