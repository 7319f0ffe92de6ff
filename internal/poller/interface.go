/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package poller

import "time"

// Interest is a bitmask of the readiness conditions registered for an fd.
type Interest uint8

const (
	Read Interest = 1 << iota
	Write
)

// Event reports the readiness observed for one registered fd after a Wait.
type Event struct {
	Fd    int
	Ready Interest
}

// Poller is the fd-registration table backing the reactor's readiness loop.
// It is not safe for concurrent use; the reactor only ever drives it from
// its single loop goroutine.
type Poller interface {
	// Add registers fd for the given interest. Add on an already-registered
	// fd replaces its interest set.
	Add(fd int, interest Interest) error

	// Remove drops fd from the table. It is a no-op if fd was never added.
	Remove(fd int) error

	// Wait blocks until at least one registered fd is ready, timeout
	// elapses, or the poller is closed, returning the ready batch. A
	// negative timeout blocks indefinitely.
	Wait(timeout time.Duration) ([]Event, error)

	// Close releases the underlying OS resource.
	Close() error
}
