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

package rate

import "time"

// Estimator tracks a windowed average of a numeric series (typically bytes
// transferred) and reports a rate per second. It is not safe for concurrent
// use; the reactor only ever touches a given endpoint's estimator from the
// single loop goroutine or from the one coroutine goroutine it has handed
// control to, never both at once.
type Estimator interface {
	// Update records a sample of the given value observed at t.
	Update(value float64, t time.Time)
	// Value returns the current windowed average rate per second.
	Value() float64
	// Reset clears all recorded samples.
	Reset()
}

// New returns an Estimator keeping samples within the last window duration,
// capped at capacity samples. Once capacity is reached (after aging out
// samples older than window), further Update calls are silently dropped
// until room frees up through aging.
func New(window time.Duration, capacity int) Estimator {
	if capacity < 1 {
		capacity = 1
	}
	return &estimator{
		window: window,
		cap:    capacity,
	}
}
