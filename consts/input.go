package consts

import (
	"math"
	"time"
)

// 事件类型，见<linux/input-event-codes.h>
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02
	EvAbs uint16 = 0x03
	EvMsc uint16 = 0x04
	EvSw  uint16 = 0x05
	EvLed uint16 = 0x11
	EvSnd uint16 = 0x12
	EvRep uint16 = 0x14
	EvFf  uint16 = 0x15
	EvPwr uint16 = 0x16
)

// 常用事件码，按需补充
const (
	KeySpace           uint16 = 57
	KeyCoffee          uint16 = 152
	AbsRudder          uint16 = 0x07
	SwLid              uint16 = 0x00
	SwTabletMode       uint16 = 0x01
	SwMicrophoneInsert uint16 = 0x04
)

// WildcardEvent 在订阅过滤器中匹配任意事件类型/事件码
const WildcardEvent uint16 = math.MaxUint16

const (
	DefaultEventPrefix    = "/dev/input/event"
	DefaultMaxInputEvents = 10
	DefaultPollTimeout    = time.Second
)

const (
	ConfigKeyDevicePrefix    = "device_prefix"
	ConfigKeyMaxInputEvents  = "max_input_events"
	ConfigKeyPollTimeoutMs   = "poll_timeout_ms"
	ConfigKeyMetricsPushAddr = "metrics_push_addr"
)
