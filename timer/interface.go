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

package timer

import "time"

// Handle identifies a scheduled entry so the caller can cancel it later.
type Handle uint64

// Manager is a min-heap of pending timer entries ordered by expiry. It is
// not safe for concurrent use; the reactor only ever touches it from the
// single loop goroutine.
type Manager interface {
	// Add schedules tag to fire after duration. When immediate is true the
	// entry's expiry is "now" rather than now+duration (used to realize a
	// zero-delay timer without special-casing the heap). When recurring is
	// true, Next re-arms the entry for another duration after popping it.
	Add(duration time.Duration, tag any, recurring bool, immediate bool) Handle

	// Cancel marks the handle's entry cancelled. The entry is not removed
	// from the heap immediately; it is discarded lazily the next time it
	// would otherwise be returned by Peek or Next.
	Cancel(h Handle)

	// Peek reports the expiry of the next live (non-cancelled) entry,
	// discarding any cancelled entries found at the top of the heap along
	// the way. ok is false when no live entry remains.
	Peek() (expiry time.Time, ok bool)

	// Next pops and returns the tag of the next entry whose expiry is not
	// after now, discarding cancelled entries it encounters first. If the
	// popped entry is recurring it is re-added with a fresh expiry before
	// Next returns. ok is false when no entry is due.
	Next(now time.Time) (tag any, ok bool)

	// Len reports the number of live entries still pending (not counting
	// cancelled-but-not-yet-popped entries).
	Len() int
}

// NewManager returns an empty Manager.
func NewManager() Manager {
	m := &manager{}
	return m
}
