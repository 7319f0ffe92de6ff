package reactor

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

func (w fdWriter) Write(p []byte) (int, error) {
	n, err := unix.Write(w.fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func isRetryableErrno(err error) bool {
	return err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR
}

func resolveIPv4(addr string, port int) (unix.SockaddrInet4, error) {
	var sa unix.SockaddrInet4
	sa.Port = port

	ip := net.ParseIP(addr)
	if ip == nil {
		ips, err := net.LookupIP(addr)
		if err != nil || len(ips) == 0 {
			return sa, fmt.Errorf("reactor: cannot resolve %q: %w", addr, err)
		}
		ip = ips[0]
	}

	ip4 := ip.To4()
	if ip4 == nil {
		return sa, fmt.Errorf("reactor: %q is not an IPv4 address", addr)
	}

	copy(sa.Addr[:], ip4)
	return sa, nil
}

// dialNonblock opens a non-blocking IPv4 TCP socket and starts connecting
// it. inProgress is true when the OS hasn't completed the connect yet
// (EINPROGRESS), in which case the caller must wait for writability and
// call connectError to learn the outcome.
func dialNonblock(addr string, port int) (fd int, inProgress bool, err error) {
	sa, err := resolveIPv4(addr, port)
	if err != nil {
		return -1, false, err
	}

	fd, err = unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, false, err
	}

	if err = unix.SetNonblock(fd, true); err != nil {
		_ = unix.Close(fd)
		return -1, false, err
	}

	err = unix.Connect(fd, &sa)
	if err == nil {
		return fd, false, nil
	}
	if err == unix.EINPROGRESS {
		return fd, true, nil
	}

	_ = unix.Close(fd)
	return -1, false, err
}

// connectError reads SO_ERROR off fd to learn whether a non-blocking
// connect that just became writable actually succeeded.
func connectError(fd int) error {
	val, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return err
	}
	if val != 0 {
		return unix.Errno(val)
	}
	return nil
}

// listenSocket creates, binds, and listens on a non-blocking IPv4 TCP
// socket with SO_REUSEADDR set.
func listenSocket(addr string, port int, backlog int) (int, error) {
	sa, err := resolveIPv4(addr, port)
	if err != nil {
		return -1, err
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, err
	}

	if err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	if err = unix.Bind(fd, &sa); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	if err = unix.Listen(fd, backlog); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	if err = unix.SetNonblock(fd, true); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}

	return fd, nil
}

// acceptNonblock accepts one pending inbound connection off a non-blocking
// listening socket.
func acceptNonblock(lfd int) (fd int, addr string, port int, err error) {
	nfd, sa, err := unix.Accept(lfd)
	if err != nil {
		return -1, "", 0, err
	}

	if err = unix.SetNonblock(nfd, true); err != nil {
		_ = unix.Close(nfd)
		return -1, "", 0, err
	}

	if sin, ok := sa.(*unix.SockaddrInet4); ok {
		ip := net.IP(sin.Addr[:])
		return nfd, ip.String(), sin.Port, nil
	}

	return nfd, "", 0, nil
}
