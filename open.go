package reactor

import (
	"os"

	"github.com/evreactor/evreactor/buffer"
)

// Open opens a local file and registers it as a seekable endpoint that
// starts Connected. useErrorHandler controls whether a later read or write
// failure is reported via Handler.Error (true) or simply disposes the
// endpoint without a callback (false).
func (r *Reactor) Open(path string, flag int, perm os.FileMode, tag any, useErrorHandler bool, opts ...Option) error {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return NewError(CodeReadFailed, "open failed", err)
	}

	ep := &endpoint{
		kind:            kindFile,
		tag:             tag,
		file:            f,
		fd:              int(f.Fd()),
		state:           StateConnected,
		seekable:        true,
		useErrorHandler: useErrorHandler,
		out:             buffer.NewSeekable(),
	}
	r.register(ep)
	applyOptions(r, ep, opts)

	return nil
}
