package input

import (
	"fmt"

	"github.com/Trinoooo/eggie_input/logs"
	"github.com/luci/go-render/render"
)

type MiddlewareFunc func(cb Callback) Callback

func LogMw(cb Callback) Callback {
	return func(n *Notification) {
		logs.Info(fmt.Sprintf("notification: %s", render.Render(n)))
		cb(n)
	}
}

func newMetricsMw(mh *MetricsHelper) MiddlewareFunc {
	return func(cb Callback) Callback {
		return func(n *Notification) {
			if n.Err != nil {
				mh.PollErrorCounter.Inc()
			} else {
				mh.CallbackCounter.Inc()
			}
			cb(n)
		}
	}
}
