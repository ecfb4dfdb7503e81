package poller

type Pevent struct {
	Fd      int32
	Events  int16
	Revents int16
}

type Poller interface {
	Wait(events []Pevent, timeoutMs int) (int, error)
	Close() error
}
