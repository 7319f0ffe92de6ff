package reactor

import "github.com/evreactor/evreactor/buffer"

// Listen creates a non-blocking IPv4 TCP listening socket on addr:port with
// SO_REUSEADDR, binds and listens with the configured backlog, and
// registers it in the Listening state.
func (r *Reactor) Listen(addr string, port int, tag any) error {
	fd, err := listenSocket(addr, port, r.cfg.Backlog)
	if err != nil {
		return NewError(CodeConnectFailed, "listen failed", err)
	}

	ep := &endpoint{
		kind:            kindListener,
		tag:             tag,
		fd:              fd,
		state:           StateListening,
		useErrorHandler: true,
		out:             buffer.NewNonSeekable(),
	}
	r.register(ep)

	return nil
}

// acceptOne accepts one pending inbound connection off listener and runs
// ServerInit under the new endpoint's own coroutine.
func (r *Reactor) acceptOne(listener *endpoint, opts ...Option) {
	fd, addr, port, err := acceptNonblock(listener.fd)
	if err != nil {
		if isRetryableErrno(err) {
			return
		}
		r.safeCall(func() { r.handler.ConnectError(r, listener.tag, err) })
		return
	}

	ep := &endpoint{
		kind:            kindClient,
		fd:              fd,
		state:           StateConnected,
		useErrorHandler: true,
		out:             buffer.NewNonSeekable(),
	}
	r.register(ep)
	applyOptions(r, ep, opts)

	r.runCallback(ep, func(ctx *Context) {
		r.handler.ServerInit(ctx, listener.tag, addr, port)
	})
}
