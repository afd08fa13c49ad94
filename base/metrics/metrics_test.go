package metrics

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MetricsTestSuite struct {
	suite.Suite
}

func (s *MetricsTestSuite) TestWithoutAgent() {
	m := New("metrics_test")
	s.NotPanics(func() {
		m.BumpSum("bump.sum", 1, "k", "v")
		m.BumpAvg("bump.avg", 2)
		m.BumpHistogram("bump.hist", 3)
		m.BumpTime("bump.time").End()
	})
	s.IsType(logSink{}, current())
}

func (s *MetricsTestSuite) TestTags() {
	m := New("metrics_test", "cluster", "a").(*impl)
	s.Equal("metrics_test.", m.prefix)
	s.Contains(m.common, "cluster:a")
	s.Equal(append(append([]string{}, m.common...), "status:2xx"), m.tags([]string{"status", "2xx"}))
}

func (s *MetricsTestSuite) TestOddTagsDoNotEscape() {
	m := New("metrics_test")
	s.NotPanics(func() {
		m.BumpSum("bump.sum", 1, "dangling")
	})
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}
