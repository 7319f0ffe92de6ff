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

type sample struct {
	value float64
	at    time.Time
}

type estimator struct {
	window  time.Duration
	cap     int
	samples []sample
}

func (e *estimator) Update(value float64, t time.Time) {
	e.evictOlderThan(t)

	if len(e.samples) >= e.cap {
		return
	}

	e.samples = append(e.samples, sample{value: value, at: t})
}

func (e *estimator) Value() float64 {
	if len(e.samples) == 0 {
		return 0
	}

	e.evictOlderThan(e.samples[len(e.samples)-1].at)

	if len(e.samples) == 1 {
		return 0
	}

	var total float64
	for _, s := range e.samples {
		total += s.value
	}

	span := e.samples[len(e.samples)-1].at.Sub(e.samples[0].at).Seconds()
	if span <= 0 {
		return 0
	}

	return total / span
}

func (e *estimator) Reset() {
	e.samples = nil
}

func (e *estimator) evictOlderThan(now time.Time) {
	if e.window <= 0 {
		return
	}

	cutoff := now.Add(-e.window)

	i := 0
	for i < len(e.samples) && e.samples[i].at.Before(cutoff) {
		i++
	}

	if i > 0 {
		e.samples = e.samples[i:]
	}
}
