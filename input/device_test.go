package input

import (
	"testing"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/stretchr/testify/assert"
)

func TestOpenDeviceSet(t *testing.T) {
	prefix := testPrefix(t)
	// 设备编号不连续，打不开的直接跳过
	writeEvent(t, prefix+"0", &Event{Type: consts.EvKey})
	writeEvent(t, prefix+"1", &Event{Type: consts.EvKey})
	writeEvent(t, prefix+"3", &Event{Type: consts.EvKey})

	ds := openDeviceSet(prefix, consts.DefaultMaxInputEvents)
	assert.Equal(t, 3, ds.size())
	assert.False(t, ds.empty())

	ds.close()
	assert.True(t, ds.empty())
}

func TestOpenDeviceSetHonorsBound(t *testing.T) {
	prefix := testPrefix(t)
	writeEvent(t, prefix+"0", &Event{Type: consts.EvKey})
	writeEvent(t, prefix+"5", &Event{Type: consts.EvKey})

	// 上限以内才会被探测
	ds := openDeviceSet(prefix, 3)
	defer ds.close()
	assert.Equal(t, 1, ds.size())
}

func TestOpenDeviceSetEmpty(t *testing.T) {
	ds := openDeviceSet(testPrefix(t), consts.DefaultMaxInputEvents)
	assert.True(t, ds.empty())
	ds.close()
}
