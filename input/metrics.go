package input

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/push"
)

type MetricsHelper struct {
	EventReadCounter   prometheus.Counter // 成功读取的事件数
	CallbackCounter    prometheus.Counter // 回调触发次数
	DroppedReadCounter prometheus.Counter // 因短读/读失败丢弃的事件数
	PollTimeoutCounter prometheus.Counter // 轮询超时次数
	PollErrorCounter   prometheus.Counter // 轮询致命失败次数
}

func NewMetricsHelper(pushAddr string) *MetricsHelper {
	eventReadCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eggie_input_event_read_counter",
	})
	callbackCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eggie_input_callback_counter",
	})
	droppedReadCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eggie_input_dropped_read_counter",
	})
	pollTimeoutCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eggie_input_poll_timeout_counter",
	})
	pollErrorCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eggie_input_poll_error_counter",
	})
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		eventReadCounter,
		callbackCounter,
		droppedReadCounter,
		pollTimeoutCounter,
		pollErrorCounter,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if pushAddr != "" {
		pusher := push.New(pushAddr, "eggie_input").Gatherer(registry)
		go func() {
			for {
				if err := pusher.Add(); err != nil {
					log.Printf("prometheus pusher push failed. err: %v", err)
				}
				time.Sleep(5 * time.Second)
			}
		}()
	}

	return &MetricsHelper{
		EventReadCounter:   eventReadCounter,
		CallbackCounter:    callbackCounter,
		DroppedReadCounter: droppedReadCounter,
		PollTimeoutCounter: pollTimeoutCounter,
		PollErrorCounter:   pollErrorCounter,
	}
}
