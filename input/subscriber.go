package input

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/errs"
	"github.com/Trinoooo/eggie_input/input/poller"
	"github.com/Trinoooo/eggie_input/logs"
	"github.com/Trinoooo/eggie_input/utils"
	"github.com/bytedance/gopkg/util/gopool"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Subscriber 订阅内核输入子系统的事件流。
//
// 每个实例同一时刻至多一个活跃订阅，重复Subscribe会先停掉旧的再起新的。
// 用于Value查询的描述符集在构造时打开，由Close释放；
// 每次Subscribe为派发协程单独打开一组描述符，协程退出前自行关闭，
// 两组描述符互不共享，Value与活跃订阅可以并发调用
type Subscriber struct {
	mu             sync.Mutex
	prefix         string
	maxInputEvents int
	pollTimeout    time.Duration
	config         *viper.Viper
	queryDevices   *deviceSet
	mws            []MiddlewareFunc
	metricsHelper  *MetricsHelper
	p              poller.Poller

	stop atomic.Bool
	done sync.WaitGroup
}

func NewSubscriber() (*Subscriber, error) {
	return NewSubscriberWithPrefix("", 0)
}

// NewSubscriberWithPrefix 指定设备路径前缀和监听文件数量上限，
// 传零值时取配置/默认值
func NewSubscriberWithPrefix(prefix string, maxInputEvents int) (*Subscriber, error) {
	s := &Subscriber{
		p: poller.NewPollPoller(),
	}

	if err := s.withConfig(); err != nil {
		return nil, err
	}

	if prefix == "" {
		prefix = s.config.GetString(consts.ConfigKeyDevicePrefix)
	}
	if maxInputEvents <= 0 {
		maxInputEvents = s.config.GetInt(consts.ConfigKeyMaxInputEvents)
	}
	s.prefix = prefix
	s.maxInputEvents = maxInputEvents
	s.pollTimeout = time.Duration(s.config.GetInt64(consts.ConfigKeyPollTimeoutMs)) * time.Millisecond
	s.metricsHelper = NewMetricsHelper(s.config.GetString(consts.ConfigKeyMetricsPushAddr))

	s.withMiddleware(
		LogMw,
		newMetricsMw(s.metricsHelper),
	)
	s.queryDevices = openDeviceSet(s.prefix, s.maxInputEvents)
	return s, nil
}

func (s *Subscriber) withMiddleware(mw ...MiddlewareFunc) {
	s.mws = append(s.mws, mw...)
}

// Devices 返回查询描述符集内的设备数量
func (s *Subscriber) Devices() int {
	return s.queryDevices.size()
}

// Subscribe 打开设备集并启动派发协程，立即返回。
// 过滤器为空或回调为nil返回invalid params，一个设备都打不开返回no device，
// 失败不会启动协程。已有活跃订阅时先等旧协程退出再启动
func (s *Subscriber) Subscribe(eventTypes, eventCodes []uint16, cb Callback) error {
	if len(eventTypes) == 0 || len(eventCodes) == 0 || cb == nil {
		e := errs.NewInvalidParamErr()
		logs.Error(e.Error(),
			zap.String(consts.LogFieldParams, "eventTypes/eventCodes/cb"),
			zap.Int(consts.LogFieldValue, len(eventTypes)+len(eventCodes)),
		)
		return e
	}

	var err error
	utils.WrapLock(&s.mu, func() {
		err = s.subscribeLocked(eventTypes, eventCodes, cb)
	})
	return err
}

func (s *Subscriber) subscribeLocked(eventTypes, eventCodes []uint16, cb Callback) error {
	s.stopLocked()

	devices := openDeviceSet(s.prefix, s.maxInputEvents)
	if devices.empty() {
		e := errs.NewNoDeviceErr()
		logs.Error(e.Error(), zap.String(consts.LogFieldDevice, s.prefix))
		return e
	}

	for _, mw := range s.mws {
		cb = mw(cb)
	}

	// 派发协程按值持有过滤器和设备集，启动后不再被本实例引用
	types := append([]uint16(nil), eventTypes...)
	codes := append([]uint16(nil), eventCodes...)

	s.stop.Store(false)
	s.done.Add(1)
	gopool.Go(func() {
		s.run(devices, types, codes, cb)
	})

	logs.Info("subscribe started",
		zap.String(consts.LogFieldDevice, s.prefix),
		zap.Int(consts.LogFieldValue, devices.size()),
	)
	return nil
}

// Unsubscribe 置停止标记并等待派发协程完全退出。
// 返回后不会再有回调触发。任意状态下可调用，幂等
func (s *Subscriber) Unsubscribe() {
	utils.WrapLock(&s.mu, s.stopLocked)
}

func (s *Subscriber) stopLocked() {
	s.stop.Store(true)
	s.done.Wait()
}

// Close 停止订阅并释放查询描述符集
func (s *Subscriber) Close() {
	utils.WrapLock(&s.mu, func() {
		s.stopLocked()
		s.queryDevices.close()
	})
}

func (s *Subscriber) run(devices *deviceSet, eventTypes, eventCodes []uint16, cb Callback) {
	defer s.done.Done()
	defer utils.HandlePanic(devices.close)

	timeoutMs := int(s.pollTimeout / time.Millisecond)
	events := make([]poller.Pevent, len(devices.fds))
	buf := make([]byte, EventSize)

	for !s.stop.Load() {
		for idx, fd := range devices.fds {
			events[idx] = poller.Pevent{Fd: int32(fd), Events: unix.POLLIN}
		}

		n, err := s.p.Wait(events, timeoutMs)
		if err != nil {
			// 多路复用失败不可恢复：投递一次哨兵通知后自行终止，
			// 恢复订阅需要调用方重新Subscribe
			s.fail(cb, err)
			return
		}
		if n == 0 {
			s.metricsHelper.PollTimeoutCounter.Inc()
			continue
		}

		for _, evt := range events {
			if evt.Revents == 0 {
				continue
			}
			nr, err := unix.Read(int(evt.Fd), buf)
			if err != nil || nr != EventSize {
				// 短读/读失败只丢弃本轮该描述符的事件，循环继续
				s.metricsHelper.DroppedReadCounter.Inc()
				continue
			}
			var event Event
			if err := event.unmarshal(buf); err != nil {
				s.metricsHelper.DroppedReadCounter.Inc()
				continue
			}
			s.metricsHelper.EventReadCounter.Inc()
			dispatch(&event, eventTypes, eventCodes, cb)
		}
	}
}

// dispatch 逐个过滤器项匹配，type与code任一为通配值视为命中。
// 事件命中多个(type, code)组合时每个组合各触发一次回调，不去重
func dispatch(event *Event, eventTypes, eventCodes []uint16, cb Callback) {
	for _, t := range eventTypes {
		if t != event.Type && t != consts.WildcardEvent {
			continue
		}
		for _, c := range eventCodes {
			if c != event.Code && c != consts.WildcardEvent {
				continue
			}
			cb(&Notification{Event: *event})
		}
	}
}

func (s *Subscriber) fail(cb Callback, err error) {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		errno = unix.EIO
	}
	e := errs.NewPollErr().WithErr(err)
	logs.Error(e.Error(), zap.Error(err))
	cb(&Notification{Event: newFatalEvent(errno), Err: e})
	s.stop.Store(true)
}
