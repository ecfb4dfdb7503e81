package input

import (
	"testing"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/errs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLogMw(t *testing.T) {
	invoked := 0
	wrapped := LogMw(func(n *Notification) {
		invoked++
		assert.Equal(t, consts.KeyCoffee, n.Event.Code)
	})

	wrapped(&Notification{Event: Event{Type: consts.EvKey, Code: consts.KeyCoffee}})
	assert.Equal(t, 1, invoked)
}

func TestMetricsMw(t *testing.T) {
	mh := NewMetricsHelper("")
	invoked := 0
	wrapped := newMetricsMw(mh)(func(n *Notification) {
		invoked++
	})

	wrapped(&Notification{Event: Event{Type: consts.EvKey, Code: consts.KeyCoffee}})
	wrapped(&Notification{Err: errs.NewPollErr()})

	assert.Equal(t, 2, invoked)
	assert.Equal(t, float64(1), testutil.ToFloat64(mh.CallbackCounter))
	assert.Equal(t, float64(1), testutil.ToFloat64(mh.PollErrorCounter))
}
