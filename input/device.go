package input

import (
	"fmt"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/logs"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// deviceSet 持有一组输入设备描述符，独占所有权：
// 哪个实例打开，哪个实例负责关闭，且只关闭一次
type deviceSet struct {
	fds []int
}

// openDeviceSet 依次尝试打开prefix+index，index∈[0, maxInputEvents)。
// 设备不存在/无权限不是错误，宿主机上有几个设备事先无从得知，
// 打不开的直接跳过，结果集可能为空
func openDeviceSet(prefix string, maxInputEvents int) *deviceSet {
	ds := &deviceSet{}
	for idx := 0; idx < maxInputEvents; idx++ {
		device := fmt.Sprintf("%s%d", prefix, idx)
		fd, err := unix.Open(device, unix.O_RDONLY, 0)
		if err != nil {
			continue
		}
		ds.fds = append(ds.fds, fd)
	}
	return ds
}

func (ds *deviceSet) empty() bool {
	return len(ds.fds) == 0
}

func (ds *deviceSet) size() int {
	return len(ds.fds)
}

func (ds *deviceSet) close() {
	for _, fd := range ds.fds {
		if err := unix.Close(fd); err != nil {
			logs.Warn("close input descriptor failed", zap.Int(consts.LogFieldValue, fd), zap.Error(err))
		}
	}
	ds.fds = nil
}
