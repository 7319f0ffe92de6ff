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

import (
	"errors"
	"io"
)

// chunk is a run of bytes destined for a specific absolute offset in a
// seekable file.
type chunk struct {
	offset int64
	data   []byte
}

// seekable is an ordered list of offset-tagged chunks, each flushed by
// seeking the handle to its offset before writing.
type seekable struct {
	chunks []*chunk
}

func (b *seekable) Append(p []byte, at int64) {
	cp := make([]byte, len(p))
	copy(cp, p)
	b.chunks = append(b.chunks, &chunk{offset: at, data: cp})
}

func (b *seekable) Empty() bool {
	return len(b.chunks) == 0
}

// ErrNotSeekable is returned by Flush when w does not implement io.Seeker.
var ErrNotSeekable = errors.New("buffer: writer does not support seeking")

func (b *seekable) Flush(w io.Writer) (bool, error) {
	sk, ok := w.(io.Seeker)
	if !ok {
		return false, ErrNotSeekable
	}

	for len(b.chunks) > 0 {
		c := b.chunks[0]

		if len(c.data) > 0 {
			if _, err := sk.Seek(c.offset, io.SeekStart); err != nil {
				return false, err
			}
		}

		for len(c.data) > 0 {
			n, err := w.Write(c.data)
			if n > 0 {
				c.data = c.data[n:]
				c.offset += int64(n)
			}
			if err != nil {
				if isRetryable(err) {
					return false, nil
				}
				return false, err
			}
			if n == 0 {
				return false, nil
			}
		}

		b.chunks = b.chunks[1:]
	}

	return true, nil
}
