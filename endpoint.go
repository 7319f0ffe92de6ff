package reactor

import (
	"os"

	"github.com/evreactor/evreactor/buffer"
	"github.com/evreactor/evreactor/rate"
	"github.com/evreactor/evreactor/timer"
)

// State is an endpoint's position in its small lifecycle state machine.
type State uint8

const (
	StateConnecting State = iota
	StateConnected
	StateListening
	StateError
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateListening:
		return "listening"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

type endpointKind uint8

const (
	kindClient endpointKind = iota
	kindListener
	kindFile
)

// endpoint is one registered I/O object: a TCP client (outbound or
// accepted), a TCP listener, or a local file. It is only ever touched from
// the loop goroutine and from the single coroutine goroutine the loop has
// handed control to — never both at once.
type endpoint struct {
	kind  endpointKind
	tag   any
	state State

	seekable        bool
	useErrorHandler bool
	disposed        bool

	fd   int
	file *os.File

	out         buffer.Output
	writeOffset int64

	coro *coroutine
	ctx  *Context

	lastReadErr error

	connectTimer    timer.Handle
	hasConnectTimer bool

	readRate  rate.Estimator
	writeRate rate.Estimator
}

// fdWriter adapts a raw, already-registered socket descriptor to io.Writer
// so buffer.Output.Flush can drain into it with plain non-blocking writes.
type fdWriter struct {
	fd int
}
