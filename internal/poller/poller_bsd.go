//go:build darwin || freebsd || netbsd || openbsd || dragonfly

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

import (
	"time"

	"golang.org/x/sys/unix"
)

type kqueuePoller struct {
	fd        int
	interests map[int]Interest
	events    []unix.Kevent_t
}

// New returns the OS-native Poller for the current platform.
func New() (Poller, error) {
	fd, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	return &kqueuePoller{
		fd:        fd,
		interests: make(map[int]Interest),
		events:    make([]unix.Kevent_t, 128),
	}, nil
}

func (p *kqueuePoller) Add(fd int, interest Interest) error {
	var changes []unix.Kevent_t

	prev := p.interests[fd]

	if prev&Read != 0 && interest&Read == 0 {
		changes = append(changes, kevent(fd, unix.EVFILT_READ, unix.EV_DELETE))
	} else if interest&Read != 0 {
		changes = append(changes, kevent(fd, unix.EVFILT_READ, unix.EV_ADD))
	}

	if prev&Write != 0 && interest&Write == 0 {
		changes = append(changes, kevent(fd, unix.EVFILT_WRITE, unix.EV_DELETE))
	} else if interest&Write != 0 {
		changes = append(changes, kevent(fd, unix.EVFILT_WRITE, unix.EV_ADD))
	}

	p.interests[fd] = interest

	if len(changes) == 0 {
		return nil
	}

	_, err := unix.Kevent(p.fd, changes, nil, nil)
	return err
}

func kevent(fd int, filter int16, flags uint16) unix.Kevent_t {
	return unix.Kevent_t{Ident: uint64(fd), Filter: filter, Flags: flags}
}

func (p *kqueuePoller) Remove(fd int) error {
	prev, ok := p.interests[fd]
	if !ok {
		return nil
	}

	var changes []unix.Kevent_t
	if prev&Read != 0 {
		changes = append(changes, kevent(fd, unix.EVFILT_READ, unix.EV_DELETE))
	}
	if prev&Write != 0 {
		changes = append(changes, kevent(fd, unix.EVFILT_WRITE, unix.EV_DELETE))
	}

	delete(p.interests, fd)

	if len(changes) == 0 {
		return nil
	}

	_, err := unix.Kevent(p.fd, changes, nil, nil)
	return err
}

func (p *kqueuePoller) Wait(timeout time.Duration) ([]Event, error) {
	var ts *unix.Timespec
	if timeout >= 0 {
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}

	for {
		n, err := unix.Kevent(p.fd, nil, p.events, ts)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}

		merged := make(map[int]Interest, n)
		for i := 0; i < n; i++ {
			fd := int(p.events[i].Ident)
			switch p.events[i].Filter {
			case unix.EVFILT_READ:
				merged[fd] |= Read
			case unix.EVFILT_WRITE:
				merged[fd] |= Write
			}
		}

		out := make([]Event, 0, len(merged))
		for fd, ready := range merged {
			out = append(out, Event{Fd: fd, Ready: ready})
		}
		return out, nil
	}
}

func (p *kqueuePoller) Close() error {
	return unix.Close(p.fd)
}
