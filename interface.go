package reactor

// Handler is the callback surface a caller implements to drive application
// behavior off the reactor. Every method is optional; embed BaseHandler to
// get no-op defaults and override only what's needed.
type Handler interface {
	// ClientInit is invoked once an outbound Connect has completed,
	// either synchronously (loopback, already-writable socket) or after
	// the Connecting endpoint becomes writable and the connect succeeded.
	ClientInit(ctx *Context)

	// ServerInit is invoked for a freshly accepted inbound connection.
	// listenerTag identifies the listening endpoint that accepted it.
	ServerInit(ctx *Context, listenerTag any, addr string, port int)

	// RecvData is invoked when the current endpoint has bytes available
	// to read.
	RecvData(ctx *Context)

	// TimerExpired is invoked when a user-scheduled timer fires. No
	// endpoint is "current"; use r.FindIOByTag to reach a specific
	// endpoint, which hands back a write-only facade for the duration of
	// this call.
	TimerExpired(r *Reactor, tag any)

	// Error reports a read, write, or connect-timeout failure on an
	// endpoint, immediately before it is disposed.
	Error(r *Reactor, tag any, detail error)

	// ConnectError reports that an outbound connect failed before ever
	// reaching Connected state.
	ConnectError(r *Reactor, tag any, detail error)

	// UserEvent delivers one value enqueued via AddUserEvent.
	UserEvent(r *Reactor, event any)
}

// BaseHandler implements Handler with no-op methods so callers only need to
// override the callbacks they care about.
type BaseHandler struct{}

func (BaseHandler) ClientInit(*Context)                               {}
func (BaseHandler) ServerInit(*Context, any, string, int)              {}
func (BaseHandler) RecvData(*Context)                                 {}
func (BaseHandler) TimerExpired(*Reactor, any)                        {}
func (BaseHandler) Error(*Reactor, any, error)                        {}
func (BaseHandler) ConnectError(*Reactor, any, error)                 {}
func (BaseHandler) UserEvent(*Reactor, any)                           {}

var _ Handler = BaseHandler{}
