//go:build linux

package poller

import "golang.org/x/sys/unix"

type PollPoller struct{}

func NewPollPoller() *PollPoller {
	return &PollPoller{}
}

func (pp *PollPoller) Wait(events []Pevent, timeoutMs int) (int, error) {
	pollFds := pp.fromPevent(events)
	n, err := unix.Poll(pollFds, timeoutMs)
	if err != nil {
		return 0, err
	}
	pp.toPevent(pollFds, events)
	return n, nil
}

func (pp *PollPoller) fromPevent(events []Pevent) []unix.PollFd {
	pollFds := make([]unix.PollFd, 0, len(events))
	for _, pevt := range events {
		pollFds = append(pollFds, unix.PollFd{
			Fd:     pevt.Fd,
			Events: pevt.Events,
		})
	}
	return pollFds
}

func (pp *PollPoller) toPevent(pollFds []unix.PollFd, pevent []Pevent) {
	for idx, pfd := range pollFds {
		pevent[idx].Fd = pfd.Fd
		pevent[idx].Events = pfd.Events
		pevent[idx].Revents = pfd.Revents
	}
}

func (pp *PollPoller) Close() error {
	return nil
}
