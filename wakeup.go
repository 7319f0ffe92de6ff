package reactor

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/evreactor/evreactor/internal/poller"
)

// wakeupPipe is a self-pipe used solely to unblock the poller's Wait call
// on Stop; its read side is drained on every wakeup (see this package's
// design notes on why — a level-triggered poller would otherwise keep
// reporting it ready forever).
type wakeupPipe struct {
	r, w *os.File
	rfd  int
}

func newWakeupPipe(p poller.Poller) (*wakeupPipe, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	rc, err := r.SyscallConn()
	if err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}

	var rfd int
	var ctrlErr error
	if err := rc.Control(func(fd uintptr) { rfd = int(fd) }); err != nil {
		ctrlErr = err
	}
	if ctrlErr != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, ctrlErr
	}

	if err = unix.SetNonblock(rfd, true); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}

	if err = p.Add(rfd, poller.Read); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}

	return &wakeupPipe{r: r, w: w, rfd: rfd}, nil
}

func (wk *wakeupPipe) signal() {
	_, _ = wk.w.Write([]byte{1})
}

func (wk *wakeupPipe) drain() {
	buf := make([]byte, 64)
	for {
		n, err := unix.Read(wk.rfd, buf)
		if n <= 0 || err != nil {
			return
		}
	}
}

func (wk *wakeupPipe) close() {
	_ = wk.r.Close()
	_ = wk.w.Close()
}
