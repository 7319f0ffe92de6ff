package reactor

import (
	"errors"
	"time"

	"github.com/evreactor/evreactor/internal/poller"
	"github.com/evreactor/evreactor/timer"
)

// ScheduleTimer arms a timer that fires TimerExpired(tag) after duration.
// When immediate is true the entry's expiry is "now", so it fires on the
// very next loop pass instead of waiting a full duration.
func (r *Reactor) ScheduleTimer(duration time.Duration, tag any, recurring bool, immediate bool) timer.Handle {
	return r.timers.Add(duration, tag, recurring, immediate)
}

// CancelTimer marks handle cancelled. The entry is discarded lazily the
// next time it would otherwise have fired.
func (r *Reactor) CancelTimer(h timer.Handle) {
	r.timers.Cancel(h)
}

// AddUserEvent enqueues event for delivery to Handler.UserEvent on the next
// loop pass. Per this package's concurrency model, it must be called from
// the reactor's own goroutine (i.e. from within a handler callback) or be
// serialized by the caller some other way.
func (r *Reactor) AddUserEvent(event any) {
	r.userEvents = append(r.userEvents, event)
}

// Stop requests a graceful shutdown: Start's loop will stop accepting new
// reads, let pending writes drain, and then return. Safe to call from
// within a handler callback.
func (r *Reactor) Stop() {
	if r.stopped {
		return
	}
	r.stopped = true
	r.wake.signal()
}

var errStopped = errors.New("reactor: stopped")

// Start runs the readiness loop until Stop is called and every endpoint's
// output buffer has drained, or an unrecoverable poller error occurs. On
// return, every remaining endpoint's handle has been closed.
func (r *Reactor) Start() error {
	defer r.shutdownAll()

	for {
		err := r.pass()
		if err == errStopped {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *Reactor) allBuffersEmpty() bool {
	for _, ep := range r.endpoints {
		if !ep.out.Empty() {
			return false
		}
	}
	return true
}

func (r *Reactor) shutdownAll() {
	for _, ep := range r.endpoints {
		r.dispose(ep)
	}
	r.wake.close()
	_ = r.poll.Close()
}

// pass runs exactly one iteration of the event-loop: drain due timers,
// deliver queued user events, check for a completed shutdown, build and
// register readiness interest, multiplex, then dispatch — reads before
// writes, in the multiplexer's reported order.
func (r *Reactor) pass() error {
	now := time.Now()
	for {
		tag, ok := r.timers.Next(now)
		if !ok {
			break
		}
		r.fireTimer(tag)
	}

	events := r.userEvents
	r.userEvents = nil
	for _, e := range events {
		ev := e
		r.safeCall(func() { r.handler.UserEvent(r, ev) })
	}

	if r.stopped && r.allBuffersEmpty() {
		return errStopped
	}

	var fileReady []*endpoint

	for fd, ep := range r.endpoints {
		if ep.kind == kindFile {
			wantRead := ep.state != StateConnecting && !r.stopped
			wantWrite := (!ep.out.Empty() || ep.state == StateConnecting) && ep.state != StateListening
			if wantRead || wantWrite {
				fileReady = append(fileReady, ep)
			}
			continue
		}

		var interest poller.Interest
		if ep.state != StateConnecting && !r.stopped {
			interest |= poller.Read
		}
		if (!ep.out.Empty() || ep.state == StateConnecting) && ep.state != StateListening {
			interest |= poller.Write
		}

		if interest == 0 {
			_ = r.poll.Remove(fd)
			continue
		}
		if err := r.poll.Add(fd, interest); err != nil {
			r.logger.WithField("tag", ep.tag).Warnf("reactor: failed registering readiness interest: %v", err)
		}
	}

	timeout := time.Duration(-1)
	if len(fileReady) > 0 {
		timeout = 0
	} else if exp, ok := r.timers.Peek(); ok {
		if d := time.Until(exp); d > 0 {
			timeout = d
		} else {
			timeout = 0
		}
	}

	evs, err := r.poll.Wait(timeout)
	if err != nil {
		return err
	}

	for _, ev := range evs {
		if ev.Fd == r.wake.rfd {
			r.wake.drain()
			continue
		}
		if ev.Ready&poller.Read == 0 {
			continue
		}
		if ep, ok := r.endpoints[ev.Fd]; ok {
			r.dispatchRead(ep)
		}
	}
	for _, ep := range fileReady {
		if ep.state != StateConnecting && !r.stopped {
			r.dispatchRead(ep)
		}
	}

	for _, ev := range evs {
		if ev.Fd == r.wake.rfd {
			continue
		}
		if ev.Ready&poller.Write == 0 {
			continue
		}
		if ep, ok := r.endpoints[ev.Fd]; ok {
			r.dispatchWrite(ep)
		}
	}
	for _, ep := range fileReady {
		if ep.disposed {
			continue
		}
		if !ep.out.Empty() || ep.state == StateConnecting {
			r.dispatchWrite(ep)
		}
	}

	return nil
}

func (r *Reactor) dispatchRead(ep *endpoint) {
	if ep.disposed {
		return
	}
	if ep.kind == kindListener {
		r.acceptOne(ep)
		return
	}
	r.runCallback(ep, func(ctx *Context) { r.handler.RecvData(ctx) })
}

func (r *Reactor) dispatchWrite(ep *endpoint) {
	if ep.disposed {
		return
	}
	if ep.state == StateConnecting {
		r.finalizeConnect(ep)
		return
	}
	r.flush(ep)
}

func (r *Reactor) flush(ep *endpoint) {
	w := r.writerFor(ep)
	if w == nil {
		return
	}

	_, err := ep.out.Flush(w)
	if err != nil {
		werr := NewError(CodeWriteFailed, "write failed", err)
		if ep.useErrorHandler {
			r.safeCall(func() { r.handler.Error(r, ep.tag, werr) })
		}
		r.dispose(ep)
	}
}

func (r *Reactor) fireTimer(tag any) {
	prev := r.activeKind.Load()
	r.activeKind.Store(kindTimerCB)
	defer r.activeKind.Store(prev)

	if ct, ok := tag.(connectTimeoutTag); ok {
		ep := ct.ep
		if ep.disposed || ep.state != StateConnecting {
			return
		}
		detail := errConnectTimedOut()
		r.safeCall(func() { r.handler.Error(r, ep.tag, detail) })
		r.dispose(ep)
		return
	}

	r.safeCall(func() { r.handler.TimerExpired(r, tag) })
}
