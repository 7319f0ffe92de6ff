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

package buffer

import "io"

// Output is the shared contract between the non-seekable and seekable
// pending-write queues. The reactor never cares which one it holds; it only
// Append()s outgoing bytes and Flush()es them when the handle is writable.
type Output interface {
	// Append queues p for later delivery. For a Seekable output, at queues
	// p to be written starting at that absolute offset; for a NonSeekable
	// output, at is ignored (appended to the tail of the contiguous
	// stream) and may be zero.
	Append(p []byte, at int64)

	// Flush attempts to drain the queue into w using non-blocking writes.
	// It returns empty=true once the queue has nothing left to deliver.
	// A retryable condition (the write would block) is reported as
	// empty=false, err=nil so the caller simply waits for the next
	// writability notification. Any other error aborts the flush and is
	// returned as-is.
	Flush(w io.Writer) (empty bool, err error)

	// Empty reports whether the queue currently holds no pending bytes.
	Empty() bool
}

// NewNonSeekable returns an Output backed by a single contiguous byte queue,
// suited to sockets where write order is the only thing that matters.
func NewNonSeekable() Output {
	return &nonSeekable{}
}

// NewSeekable returns an Output backed by an ordered list of offset-tagged
// chunks, suited to files where each write must land at a specific position
// regardless of the order writes were queued in.
func NewSeekable() Output {
	return &seekable{}
}
