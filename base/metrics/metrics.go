/*
Package metrics records datadog metrics through dogstatsd.

Naming convention of keys:
  - Internal process time: *.time
  - External latency: *.latency
  - Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/warplet/base/env"
	"github.com/x-xyz/warplet/base/log"
)

// Ender stops a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type impl struct {
	prefix string
	// tags sent with every bump
	common []string
}

// New returns a Service whose keys are prefixed with pkgName. Tags are
// key/value pairs attached to every bump.
func New(pkgName string, tags ...string) Service {
	common := []string{
		// an empty host tag drops the agent's host tags
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if pod := env.PodName(); pod != "" {
		common = append(common, "pod:"+pod)
	}
	return &impl{
		prefix: pkgName + ".",
		common: append(common, pairs(tags)...),
	}
}

func (m *impl) tags(tags []string) []string {
	res := make([]string, 0, len(m.common)+len(tags)/2)
	res = append(res, m.common...)
	return append(res, pairs(tags)...)
}

// guard keeps a failing bump away from the caller
func (m *impl) guard(key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"key":  m.prefix + key,
			"tags": strings.Join(tags, ","),
			"err":  err,
		}).Error("bump panicked")
	}
}

// BumpAvg reports val as a gauge, dogstatsd has no average type
func (m *impl) BumpAvg(key string, val float64, tags ...string) {
	defer m.guard(key, tags)
	report("BumpAvg", m.prefix+key, val, func(c sink) error {
		return c.Gauge(m.prefix+key, val, m.tags(tags), sampleRate)
	})
}

func (m *impl) BumpSum(key string, val float64, tags ...string) {
	defer m.guard(key, tags)
	report("BumpSum", m.prefix+key, val, func(c sink) error {
		return c.Count(m.prefix+key, int64(val), m.tags(tags), sampleRate)
	})
}

func (m *impl) BumpHistogram(key string, val float64, tags ...string) {
	defer m.guard(key, tags)
	report("BumpHistogram", m.prefix+key, val, func(c sink) error {
		return c.Histogram(m.prefix+key, val, m.tags(tags), sampleRate)
	})
}

// BumpTime starts a timer reported in milliseconds on End:
//
//	defer s.BumpTime("my.function").End()
func (m *impl) BumpTime(key string, tags ...string) Ender {
	return &timer{m: m, key: key, tags: tags, start: time.Now()}
}

type timer struct {
	m     *impl
	key   string
	tags  []string
	start time.Time
}

func (t *timer) End() {
	defer t.m.guard(t.key, t.tags)
	ms := float64(time.Since(t.start)) / float64(time.Millisecond)
	report("BumpTime", t.m.prefix+t.key, ms, func(c sink) error {
		return c.TimeInMilliseconds(t.m.prefix+t.key, ms, t.m.tags(t.tags), sampleRate)
	})
}

// pairs turns k1, v1, k2, v2 into k1:v1, k2:v2
func pairs(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	res := make([]string, 0, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}
