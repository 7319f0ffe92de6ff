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
 *
 */

// Package atomic provides small generic, lock-free containers built on top of
// sync/atomic.Value. The reactor core uses Value[T] to share state (the active
// callback kind, the current endpoint context) between the goroutine driving the event
// loop and the per-endpoint coroutine goroutines it hands control to.
package atomic

import (
	"sync/atomic"
)

// Value is a generic, type-safe wrapper around sync/atomic.Value.
type Value[T any] interface {
	// SetDefaultLoad sets the value returned by Load when nothing has been stored yet.
	SetDefaultLoad(def T)
	// SetDefaultStore sets the value substituted whenever Store/Swap/CompareAndSwap
	// is called with the zero value of T.
	SetDefaultStore(def T)

	// Load returns the current value, or the configured default load value.
	Load() (val T)
	// Store sets the current value atomically.
	Store(val T)
	// Swap atomically stores new and returns the previous value.
	Swap(new T) (old T)
	// CompareAndSwap atomically swaps old for new if the current value equals old.
	CompareAndSwap(old, new T) (swapped bool)
}

// NewValue returns a Value[T] with the zero value of T as both defaults.
func NewValue[T any]() Value[T] {
	var tmp1, tmp2 T
	return NewValueDefault[T](tmp1, tmp2)
}

// NewValueDefault returns a Value[T] with the given default load and store values.
func NewValueDefault[T any](load, store T) Value[T] {
	o := &val[T]{
		av: new(atomic.Value),
		dl: new(atomic.Value),
		ds: new(atomic.Value),
	}

	o.SetDefaultLoad(load)
	o.SetDefaultStore(store)

	return o
}
