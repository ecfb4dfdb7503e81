package input

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/Trinoooo/eggie_input/consts"
	"golang.org/x/sys/unix"
)

// Event 对应<linux/input.h>中的struct input_event，
// 字段布局必须保持二进制兼容，负载不做解释，原样透传
type Event struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// EventSize 单条事件记录的字节数
const EventSize = int(unsafe.Sizeof(Event{}))

func (e *Event) unmarshal(buf []byte) error {
	err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, e)
	if err != nil {
		return err
	}
	return nil
}

// newFatalEvent 致命错误哨兵事件，type/code置为通配值，value置为负errno
func newFatalEvent(errno unix.Errno) Event {
	return Event{
		Type:  consts.WildcardEvent,
		Code:  consts.WildcardEvent,
		Value: -int32(errno),
	}
}

// Notification 通过唯一回调通道投递。正常事件Err为nil；
// 轮询致命失败时恰好投递一次，Err非nil，Event为哨兵事件
type Notification struct {
	Event Event
	Err   error
}

type Callback func(n *Notification)
