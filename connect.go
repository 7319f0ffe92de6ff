package reactor

import (
	"time"

	"github.com/evreactor/evreactor/buffer"
)

// Connect initiates a non-blocking outbound TCP connect to addr:port. If
// the OS completes the connect immediately (common on loopback), the
// endpoint transitions straight to Connected and ClientInit is invoked
// synchronously, before Connect returns. Otherwise the endpoint is left
// Connecting; if timeout is positive, a one-shot internal timer is armed
// that, if it fires before the connect resolves, disposes the endpoint and
// reports Error(tag, "Connection timed out"). A zero timeout falls back to
// the reactor's configured Config.ConnectTimeout; if that is also zero,
// the connect never times out on its own.
func (r *Reactor) Connect(addr string, port int, tag any, timeout time.Duration, opts ...Option) error {
	if timeout == 0 {
		timeout = r.cfg.ConnectTimeout.Time()
	}

	fd, inProgress, err := dialNonblock(addr, port)
	if err != nil {
		return NewError(CodeConnectFailed, "connect failed", err)
	}

	ep := &endpoint{
		kind:            kindClient,
		tag:             tag,
		fd:              fd,
		useErrorHandler: true,
		out:             buffer.NewNonSeekable(),
	}
	r.register(ep)
	applyOptions(r, ep, opts)

	if !inProgress {
		ep.state = StateConnected
		r.runCallback(ep, func(ctx *Context) { r.handler.ClientInit(ctx) })
		return nil
	}

	ep.state = StateConnecting
	if timeout > 0 {
		h := r.timers.Add(timeout, connectTimeoutTag{ep: ep}, false, false)
		ep.connectTimer = h
		ep.hasConnectTimer = true
	}

	return nil
}

// finalizeConnect is invoked when a Connecting endpoint's socket reports
// writable: the OS has resolved the connect one way or the other.
func (r *Reactor) finalizeConnect(ep *endpoint) {
	if err := connectError(ep.fd); err != nil {
		r.safeCall(func() { r.handler.ConnectError(r, ep.tag, err) })
		r.dispose(ep)
		return
	}

	ep.state = StateConnected
	if ep.hasConnectTimer {
		r.timers.Cancel(ep.connectTimer)
		ep.hasConnectTimer = false
	}

	r.runCallback(ep, func(ctx *Context) { r.handler.ClientInit(ctx) })
}
