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

import (
	"container/heap"
	"time"
)

type entry struct {
	expiry    time.Time
	duration  time.Duration
	tag       any
	recurring bool
	cancelled bool
	handle    Handle
	index     int
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	return h[i].expiry.Before(h[j].expiry)
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

type manager struct {
	heap    entryHeap
	byHand  map[Handle]*entry
	nextSeq Handle
}

func (m *manager) Add(duration time.Duration, tag any, recurring bool, immediate bool) Handle {
	if m.byHand == nil {
		m.byHand = make(map[Handle]*entry)
	}

	m.nextSeq++
	h := m.nextSeq

	exp := time.Now()
	if !immediate {
		exp = exp.Add(duration)
	}

	e := &entry{
		expiry:    exp,
		duration:  duration,
		tag:       tag,
		recurring: recurring,
		handle:    h,
	}

	heap.Push(&m.heap, e)
	m.byHand[h] = e

	return h
}

func (m *manager) Cancel(h Handle) {
	if e, ok := m.byHand[h]; ok {
		e.cancelled = true
	}
}

func (m *manager) discardCancelled() {
	for m.heap.Len() > 0 && m.heap[0].cancelled {
		e := heap.Pop(&m.heap).(*entry)
		delete(m.byHand, e.handle)
	}
}

func (m *manager) Peek() (time.Time, bool) {
	m.discardCancelled()

	if m.heap.Len() == 0 {
		return time.Time{}, false
	}

	return m.heap[0].expiry, true
}

func (m *manager) Next(now time.Time) (any, bool) {
	m.discardCancelled()

	if m.heap.Len() == 0 {
		return nil, false
	}

	if m.heap[0].expiry.After(now) {
		return nil, false
	}

	e := heap.Pop(&m.heap).(*entry)
	delete(m.byHand, e.handle)

	tag := e.tag

	if e.recurring {
		e.cancelled = false
		e.expiry = now.Add(e.duration)
		heap.Push(&m.heap, e)
		m.byHand[e.handle] = e
	}

	return tag, true
}

func (m *manager) Len() int {
	m.discardCancelled()
	n := 0
	for _, e := range m.heap {
		if !e.cancelled {
			n++
		}
	}
	return n
}
