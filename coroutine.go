package reactor

import "fmt"

// coroutine realizes one endpoint's suspendable read coroutine as a
// goroutine synchronized with the loop goroutine by a strict two-channel
// handoff. The loop either starts the goroutine (first dispatch) or signals
// resume (subsequent dispatches after a suspension), then blocks on parked
// until the coroutine suspends, finishes, or panics. Because the loop never
// proceeds past that receive, and the coroutine never proceeds past a send
// on parked without the loop first reading it, at most one of the two
// goroutines is ever doing meaningful work at a time — the single-callback
// invariant is a property of the channel protocol, not a mutex.
type coroutine struct {
	resume chan struct{}
	parked chan coroResult
}

type coroResult struct {
	suspended bool
	err       error
}

func newCoroutine() *coroutine {
	return &coroutine{
		resume: make(chan struct{}),
		parked: make(chan coroResult),
	}
}

// yield is called from inside Context.Read, on the coroutine goroutine,
// when the underlying descriptor is not yet ready. It hands control back to
// the loop and blocks until the loop resumes it on a later readiness pass.
func (c *coroutine) yield() {
	c.parked <- coroResult{suspended: true}
	<-c.resume
}

// run is the coroutine goroutine's entry point.
func (c *coroutine) run(body func()) {
	defer func() {
		if p := recover(); p != nil {
			c.parked <- coroResult{err: fmt.Errorf("%v", p)}
		}
	}()
	body()
	c.parked <- coroResult{}
}
