package input

import (
	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/errs"
	"github.com/Trinoooo/eggie_input/logs"
	"go.uber.org/zap"
)

// Value 查询指定事件类型/事件码的当前状态，所有设备按位或聚合：
// 任一设备上报激活则结果为1。只支持EV_KEY和EV_SW两类查询，
// 其余类型不碰任何描述符直接返回not supported。
// 同步执行在调用方协程上，与派发循环的生命周期无关
func (s *Subscriber) Value(eventType, eventCode uint16) (int, error) {
	if eventType != consts.EvKey && eventType != consts.EvSw {
		e := errs.NewNotSupportedErr()
		logs.Error(e.Error(), zap.Uint16(consts.LogFieldValue, eventType))
		return 0, e
	}

	if s.queryDevices.empty() {
		e := errs.NewNoDeviceErr()
		logs.Error(e.Error(), zap.String(consts.LogFieldDevice, s.prefix))
		return 0, e
	}

	eventValue := 0
	// 位图覆盖到eventCode所在字节即可
	bits := make([]byte, eventCode/8+1)

	for _, fd := range s.queryDevices.fds {
		var req uintptr
		switch eventType {
		case consts.EvKey:
			req = eviocgKey(len(bits))
		case consts.EvSw:
			req = eviocgSw(len(bits))
		}

		// 单个设备查询失败则整个查询失败，不做跨设备的部分聚合
		if err := ioctl(fd, req, bits); err != nil {
			e := errs.NewIoctlErr().WithErr(err)
			logs.Error(e.Error(), zap.Int(consts.LogFieldValue, fd), zap.Error(err))
			return 0, e
		}

		eventValue |= int(bits[eventCode/8]>>(eventCode%8)) & 1
	}

	return eventValue, nil
}
