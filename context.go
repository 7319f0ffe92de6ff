package reactor

import (
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// Context is the facade handed to every Handler callback: the synchronous-
// looking read/write/close surface bound to one specific endpoint. It
// replaces the "current endpoint" global a Ruby-style reactor would keep,
// per this package's design notes — every callback gets its own Context
// instead of reaching into reactor-wide mutable state.
type Context struct {
	r        *Reactor
	ep       *endpoint
	readOnly bool
}

// Tag returns the endpoint's caller-supplied metadata tag.
func (c *Context) Tag() any {
	return c.ep.tag
}

// State returns the endpoint's current lifecycle state.
func (c *Context) State() State {
	return c.ep.state
}

// Reactor returns the reactor this context belongs to, so handler code can
// reach ScheduleTimer, AddUserEvent, FindIOByTag, and friends without
// needing a separately captured reference.
func (c *Context) Reactor() *Reactor {
	return c.r
}

// Write queues p on the endpoint's output buffer; it never blocks and never
// issues a syscall directly. The reactor flushes buffered output the next
// time the endpoint's handle reports writable.
func (c *Context) Write(p []byte) (int, error) {
	if c.ep.disposed {
		return 0, NewError(CodeClosed, "", nil)
	}

	at := c.ep.writeOffset
	c.ep.out.Append(p, at)
	c.ep.writeOffset += int64(len(p))

	if c.ep.writeRate != nil {
		c.ep.writeRate.Update(float64(len(p)), time.Now())
	}

	return len(p), nil
}

// Seek repositions the virtual write cursor used to tag outgoing chunks on
// a seekable endpoint. On a non-seekable endpoint it is a silent no-op, per
// this package's facade contract.
func (c *Context) Seek(offset int64, whence int) (int64, error) {
	if !c.ep.seekable {
		return c.ep.writeOffset, nil
	}

	switch whence {
	case io.SeekStart:
		c.ep.writeOffset = offset
	case io.SeekCurrent:
		c.ep.writeOffset += offset
	case io.SeekEnd:
		if c.ep.file != nil {
			if fi, err := c.ep.file.Stat(); err == nil {
				c.ep.writeOffset = fi.Size() + offset
			}
		}
	}

	return c.ep.writeOffset, nil
}

// Close disposes the endpoint this context is bound to.
func (c *Context) Close() error {
	c.r.dispose(c.ep)
	return nil
}

// Read returns exactly n bytes, suspending the calling coroutine as many
// times as needed while the underlying descriptor isn't yet readable. It
// never returns a short read: either it returns exactly n bytes, or it
// returns an error (CodeReadFailed wrapping the underlying cause, or
// CodeTimerReadForbidden if called through the write-only facade handed out
// during a timer callback).
func (c *Context) Read(n int) ([]byte, error) {
	if c.readOnly {
		return nil, NewError(CodeTimerReadForbidden, "", nil)
	}

	ep := c.ep
	out := make([]byte, 0, n)
	chunk := make([]byte, min(n, c.r.cfg.ReadBufferSize))

	for len(out) < n {
		m, err := ep.rawRead(chunk[:min(len(chunk), n-len(out))])

		if m > 0 {
			out = append(out, chunk[:m]...)
			if ep.readRate != nil {
				ep.readRate.Update(float64(m), time.Now())
			}
		}

		if err != nil {
			if isRetryableErrno(err) {
				ep.coro.yield()
				continue
			}
			werr := NewError(CodeReadFailed, "read failed", err)
			ep.lastReadErr = werr
			ep.state = StateError
			return nil, werr
		}

		if m == 0 {
			werr := NewError(CodeReadFailed, "connection closed", io.EOF)
			ep.lastReadErr = werr
			ep.state = StateError
			return nil, werr
		}
	}

	return out, nil
}

// rawRead issues one non-blocking read attempt against the endpoint's
// underlying handle: a raw syscall for sockets, a regular blocking read for
// local files (regular files are never registered with the poller — see
// this package's design notes on why epoll cannot watch them).
func (ep *endpoint) rawRead(buf []byte) (int, error) {
	if ep.kind == kindFile {
		return ep.file.Read(buf)
	}

	n, err := unix.Read(ep.fd, buf)
	if n < 0 {
		n = 0
	}
	return n, err
}
