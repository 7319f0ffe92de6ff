package reactor_test

import (
	"net"
	"strconv"

	reactor "github.com/evreactor/evreactor"
)

// testHandler lets each spec override just the callbacks it exercises.
type testHandler struct {
	reactor.BaseHandler
	onClientInit   func(ctx *reactor.Context)
	onServerInit   func(ctx *reactor.Context, listenerTag any, addr string, port int)
	onRecvData     func(ctx *reactor.Context)
	onTimerExpired func(r *reactor.Reactor, tag any)
	onError        func(r *reactor.Reactor, tag any, detail error)
	onConnectError func(r *reactor.Reactor, tag any, detail error)
	onUserEvent    func(r *reactor.Reactor, event any)
}

func (h *testHandler) ClientInit(ctx *reactor.Context) {
	if h.onClientInit != nil {
		h.onClientInit(ctx)
	}
}

func (h *testHandler) ServerInit(ctx *reactor.Context, listenerTag any, addr string, port int) {
	if h.onServerInit != nil {
		h.onServerInit(ctx, listenerTag, addr, port)
	}
}

func (h *testHandler) RecvData(ctx *reactor.Context) {
	if h.onRecvData != nil {
		h.onRecvData(ctx)
	}
}

func (h *testHandler) TimerExpired(r *reactor.Reactor, tag any) {
	if h.onTimerExpired != nil {
		h.onTimerExpired(r, tag)
	}
}

func (h *testHandler) Error(r *reactor.Reactor, tag any, detail error) {
	if h.onError != nil {
		h.onError(r, tag, detail)
	}
}

func (h *testHandler) ConnectError(r *reactor.Reactor, tag any, detail error) {
	if h.onConnectError != nil {
		h.onConnectError(r, tag, detail)
	}
}

func (h *testHandler) UserEvent(r *reactor.Reactor, event any) {
	if h.onUserEvent != nil {
		h.onUserEvent(r, event)
	}
}

var _ reactor.Handler = (*testHandler)(nil)

// freePort grabs an ephemeral port number by briefly binding to it.
func freePort() int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	defer l.Close()
	_, p, _ := net.SplitHostPort(l.Addr().String())
	port, _ := strconv.Atoi(p)
	return port
}
