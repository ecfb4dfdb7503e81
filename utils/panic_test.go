package utils

import (
	"testing"
)

func TestHandlePanic(t *testing.T) {
	finished := false
	defer func() {
		if !finished {
			t.Error("cleanup not executed after panic")
		}
	}()
	defer HandlePanic(func() {
		finished = true
	})

	panic("haha")
}
