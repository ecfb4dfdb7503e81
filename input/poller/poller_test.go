//go:build linux

package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestPollPollerTimeout(t *testing.T) {
	fds := make([]int, 2)
	err := unix.Pipe(fds)
	assert.Nil(t, err)
	defer unix.Close(fds[0])
	defer unix.Close(fds[1])

	pp := NewPollPoller()
	events := []Pevent{{Fd: int32(fds[0]), Events: unix.POLLIN}}
	n, err := pp.Wait(events, 50)
	assert.Nil(t, err)
	assert.Equal(t, 0, n)
	assert.Zero(t, events[0].Revents)
}

func TestPollPollerReadable(t *testing.T) {
	fds := make([]int, 2)
	err := unix.Pipe(fds)
	assert.Nil(t, err)
	defer unix.Close(fds[0])
	defer unix.Close(fds[1])

	_, err = unix.Write(fds[1], []byte{1})
	assert.Nil(t, err)

	pp := NewPollPoller()
	events := []Pevent{{Fd: int32(fds[0]), Events: unix.POLLIN}}
	n, err := pp.Wait(events, 1000)
	assert.Nil(t, err)
	assert.Equal(t, 1, n)
	assert.NotZero(t, events[0].Revents&unix.POLLIN)
}
