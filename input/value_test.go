package input

import (
	"testing"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestValueNotSupported(t *testing.T) {
	prefix := testPrefix(t)
	writeEvent(t, prefix+"0", &Event{Type: consts.EvAbs, Code: consts.AbsRudder})
	sub := newTestSubscriber(t, prefix)
	defer sub.Close()

	// 设备是否打开不影响结果，不支持的类型不碰描述符
	_, err := sub.Value(consts.EvAbs, consts.AbsRudder)
	assert.Equal(t, int64(errs.NotSupportedErrCode), errs.GetCode(err))

	_, err = sub.Value(consts.EvRel, 0)
	assert.Equal(t, int64(errs.NotSupportedErrCode), errs.GetCode(err))
}

func TestValueNoDevice(t *testing.T) {
	sub := newTestSubscriber(t, testPrefix(t))
	defer sub.Close()

	_, err := sub.Value(consts.EvKey, consts.KeySpace)
	assert.Equal(t, int64(errs.NoDeviceErrCode), errs.GetCode(err))
}

// 普通文件不是字符设备，ioctl返回ENOTTY，首个失败即整体失败
func TestValueRegularFile(t *testing.T) {
	prefix := testPrefix(t)
	writeEvent(t, prefix+"0", &Event{Type: consts.EvKey, Code: consts.KeyCoffee})
	sub := newTestSubscriber(t, prefix)
	defer sub.Close()

	_, err := sub.Value(consts.EvKey, consts.KeyCoffee)
	assert.Equal(t, int64(errs.IoctlErrCode), errs.GetCode(err))
	assert.True(t, errors.Is(err, unix.ENOTTY))

	_, err = sub.Value(consts.EvSw, consts.SwMicrophoneInsert)
	assert.Equal(t, int64(errs.IoctlErrCode), errs.GetCode(err))
	assert.True(t, errors.Is(err, unix.ENOTTY))
}
