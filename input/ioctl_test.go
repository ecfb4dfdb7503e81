package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 期望值取自<linux/input.h>宏展开结果
func TestEviocgRequests(t *testing.T) {
	assert.Equal(t, uintptr(0x80014518), eviocgKey(1))
	assert.Equal(t, uintptr(0x80204518), eviocgKey(32))
	assert.Equal(t, uintptr(0x8001451b), eviocgSw(1))
	assert.Equal(t, uintptr(0x8004451b), eviocgSw(4))
}
