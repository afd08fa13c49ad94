package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldDoesNotShareBackingArray(t *testing.T) {
	req := require.New(t)

	base := Log().WithField("requestID", "abc")
	a := base.WithField("chain", "base")
	b := base.WithField("chain", "ethereum")

	req.Equal([]interface{}{"requestID", "abc"}, base.fields)
	req.Equal([]interface{}{"requestID", "abc", "chain", "base"}, a.fields)
	req.Equal([]interface{}{"requestID", "abc", "chain", "ethereum"}, b.fields)
}

func TestWithFields(t *testing.T) {
	l := Log().WithFields(Fields{"address": "0xabc"})
	require.Equal(t, []interface{}{"address", "0xabc"}, l.fields)
}
