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

package reactor

import "fmt"

// Code identifies the fixed set of failure kinds the reactor itself raises.
// This is a small closed set, so a plain enum replaces an open,
// registered-message-function table.
type Code uint8

const (
	// CodeUnknown is the zero value; never produced by this package.
	CodeUnknown Code = iota
	// CodeConnectTimeout: an outbound connect did not complete before its deadline.
	CodeConnectTimeout
	// CodeConnectFailed: an outbound connect failed (refused, unreachable, etc).
	CodeConnectFailed
	// CodeReadFailed: a hard, non-retryable error was observed on a read.
	CodeReadFailed
	// CodeWriteFailed: a hard, non-retryable error was observed while flushing writes.
	CodeWriteFailed
	// CodeClosed: the operation was attempted on a disposed endpoint.
	CodeClosed
	// CodeTimerReadForbidden: a read was attempted through the write-only
	// facade handed out while a timer callback is active.
	CodeTimerReadForbidden
	// CodeEndpointNotFound: FindIOByTag found no matching endpoint.
	CodeEndpointNotFound
)

func (c Code) String() string {
	switch c {
	case CodeConnectTimeout:
		return "connect timeout"
	case CodeConnectFailed:
		return "connect failed"
	case CodeReadFailed:
		return "read failed"
	case CodeWriteFailed:
		return "write failed"
	case CodeClosed:
		return "endpoint closed"
	case CodeTimerReadForbidden:
		return "read not permitted from a timer callback"
	case CodeEndpointNotFound:
		return "endpoint not found"
	default:
		return "unknown error"
	}
}

// Error is the error type returned and reported by this package. It carries a
// Code identifying the failure kind and, when available, the underlying
// error that caused it.
type Error struct {
	code   Code
	detail string
	parent error
}

// NewError builds an Error of the given code, optionally wrapping a parent error.
func NewError(code Code, detail string, parent error) *Error {
	if detail == "" {
		detail = code.String()
	}
	return &Error{code: code, detail: detail, parent: parent}
}

// Code returns the failure kind.
func (e *Error) Code() Code {
	if e == nil {
		return CodeUnknown
	}
	return e.code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return CodeUnknown.String()
	}
	if e.parent != nil {
		return fmt.Sprintf("%s: %s", e.detail, e.parent.Error())
	}
	return e.detail
}

// Unwrap exposes the parent error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.parent
}

// errConnectTimedOut uses this exact wording because callers match on it.
func errConnectTimedOut() *Error {
	return NewError(CodeConnectTimeout, "Connection timed out", nil)
}
