package reactor

import (
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	atomicx "github.com/evreactor/evreactor/atomic"
	"github.com/evreactor/evreactor/config"
	"github.com/evreactor/evreactor/internal/poller"
	"github.com/evreactor/evreactor/timer"
)

type callbackKind uint8

const (
	kindNone callbackKind = iota
	kindNormal
	kindTimerCB
)

// connectTimeoutTag is the opaque tag the reactor registers with the timer
// manager for a Connecting endpoint's connect timeout. It is unexported so
// no caller-supplied tag can ever collide with it.
type connectTimeoutTag struct {
	ep *endpoint
}

// Reactor drives the single-threaded readiness loop described in this
// package's documentation. Construct one with New, register endpoints with
// Connect/Listen/Open, then call Start.
type Reactor struct {
	cfg     config.Config
	handler Handler
	logger  *logrus.Logger

	poll   poller.Poller
	timers timer.Manager
	wake   *wakeupPipe

	endpoints map[int]*endpoint
	byTag     map[any]*endpoint

	userEvents []any

	stopped bool

	activeKind atomicx.Value[callbackKind]
	currentCtx atomicx.Value[*Context]
}

// New builds a Reactor from cfg (validated and defaulted in place) driven
// by h. A nil h is replaced by BaseHandler{}.
func New(cfg config.Config, h Handler) (*Reactor, error) {
	if h == nil {
		h = BaseHandler{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, err := poller.New()
	if err != nil {
		return nil, err
	}

	wk, err := newWakeupPipe(p)
	if err != nil {
		_ = p.Close()
		return nil, err
	}

	r := &Reactor{
		cfg:       cfg,
		handler:   h,
		logger:    cfg.Logger,
		poll:      p,
		timers:    timer.NewManager(),
		wake:      wk,
		endpoints: make(map[int]*endpoint),
		byTag:     make(map[any]*endpoint),
	}
	r.activeKind = atomicx.NewValueDefault[callbackKind](kindNone, kindNone)
	r.currentCtx = atomicx.NewValue[*Context]()
	r.currentCtx.Store(nil)

	return r, nil
}

func (r *Reactor) register(ep *endpoint) {
	ep.ctx = &Context{r: r, ep: ep}
	r.endpoints[ep.fd] = ep
	if ep.tag != nil {
		r.byTag[ep.tag] = ep
	}
}

// safeCall runs f, recovering and logging any panic so a misbehaving
// handler callback can never bring the loop down.
func (r *Reactor) safeCall(f func()) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Errorf("reactor: recovered panic in handler callback: %v", p)
		}
	}()
	f()
}

// runCallback dispatches body under ep's coroutine, starting a fresh
// goroutine if the previous one has finished or never existed, or resuming
// the existing one if it's parked mid-read. It blocks until that coroutine
// either suspends again, finishes normally, or panics.
func (r *Reactor) runCallback(ep *endpoint, body func(ctx *Context)) {
	prev := r.activeKind.Load()
	r.activeKind.Store(kindNormal)
	r.currentCtx.Store(ep.ctx)
	defer func() {
		r.currentCtx.Store(nil)
		r.activeKind.Store(prev)
	}()

	if ep.coro == nil {
		co := newCoroutine()
		ep.coro = co
		go co.run(func() { body(ep.ctx) })
	} else {
		ep.coro.resume <- struct{}{}
	}

	res := <-ep.coro.parked

	if res.suspended {
		return
	}

	ep.coro = nil

	if res.err != nil {
		r.logger.WithField("tag", ep.tag).Errorf("reactor: recovered panic in handler callback: %v", res.err)
		r.dispose(ep)
		return
	}

	if ep.lastReadErr != nil {
		err := ep.lastReadErr
		ep.lastReadErr = nil
		if ep.useErrorHandler {
			r.safeCall(func() { r.handler.Error(r, ep.tag, err) })
		}
		r.dispose(ep)
	}
}

func (r *Reactor) writerFor(ep *endpoint) io.Writer {
	switch ep.kind {
	case kindFile:
		return ep.file
	case kindListener:
		return nil
	default:
		return fdWriter{fd: ep.fd}
	}
}

// dispose flushes best-effort, closes the handle (swallowing close errors),
// cancels any pending connect timeout, and deregisters the endpoint. It is
// idempotent.
func (r *Reactor) dispose(ep *endpoint) {
	if ep.disposed {
		return
	}
	ep.disposed = true

	if w := r.writerFor(ep); w != nil {
		_, _ = ep.out.Flush(w)
	}

	switch ep.kind {
	case kindFile:
		_ = ep.file.Close()
	default:
		_ = r.poll.Remove(ep.fd)
		_ = unix.Close(ep.fd)
	}

	delete(r.endpoints, ep.fd)
	if ep.tag != nil {
		if cur, ok := r.byTag[ep.tag]; ok && cur == ep {
			delete(r.byTag, ep.tag)
		}
	}
	if ep.hasConnectTimer {
		r.timers.Cancel(ep.connectTimer)
		ep.hasConnectTimer = false
	}
}

// Close disposes the given endpoint's context. Handler code typically calls
// ctx.Close(); this is the reactor-level equivalent for callers holding a
// *Context obtained from FindIOByTag or CurrentIO.
func (r *Reactor) Close(ctx *Context) error {
	if ctx == nil {
		return nil
	}
	r.dispose(ctx.ep)
	return nil
}

// FindIOByTag looks up the endpoint registered under tag. While a timer
// callback is active, the returned Context is write-only: Read fails with
// CodeTimerReadForbidden, per this package's timer/read interleaving rule.
func (r *Reactor) FindIOByTag(tag any) (*Context, bool) {
	ep, ok := r.byTag[tag]
	if !ok {
		return nil, false
	}
	if r.activeKind.Load() == kindTimerCB {
		return &Context{r: r, ep: ep, readOnly: true}, true
	}
	return ep.ctx, true
}

// CurrentIO returns the Context of the endpoint whose callback is presently
// executing, if any.
func (r *Reactor) CurrentIO() (*Context, bool) {
	c := r.currentCtx.Load()
	if c == nil {
		return nil, false
	}
	return c, true
}

// SetMetaInfo re-tags ep, updating the reverse lookup used by FindIOByTag.
func (r *Reactor) SetMetaInfo(ep *Context, tag any) {
	if ep == nil {
		return
	}
	old := ep.ep.tag
	if old != nil {
		if cur, ok := r.byTag[old]; ok && cur == ep.ep {
			delete(r.byTag, old)
		}
	}
	ep.ep.tag = tag
	if tag != nil {
		r.byTag[tag] = ep.ep
	}
}

// Stats returns the current read and write rate (units per second,
// averaged over the configured window) for the endpoint tagged tag. ok is
// false if no such endpoint exists, or if it wasn't registered with
// WithRateTracking (in which case both rates are reported as zero).
func (r *Reactor) Stats(tag any) (readRate float64, writeRate float64, ok bool) {
	ep, found := r.byTag[tag]
	if !found {
		return 0, 0, false
	}
	if ep.readRate == nil && ep.writeRate == nil {
		return 0, 0, false
	}
	if ep.readRate != nil {
		readRate = ep.readRate.Value()
	}
	if ep.writeRate != nil {
		writeRate = ep.writeRate.Value()
	}
	return readRate, writeRate, true
}
