//go:build linux

package poller_test

import (
	"os"
	"testing"
	"time"

	"github.com/evreactor/evreactor/internal/poller"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPoller(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "poller suite")
}

var _ = Describe("epoll Poller", func() {
	It("reports a pipe readable after data is written to it", func() {
		r, w, err := os.Pipe()
		Expect(err).ToNot(HaveOccurred())
		defer r.Close()
		defer w.Close()

		p, err := poller.New()
		Expect(err).ToNot(HaveOccurred())
		defer p.Close()

		rc, err := r.SyscallConn()
		Expect(err).ToNot(HaveOccurred())

		var fd int
		Expect(rc.Control(func(f uintptr) { fd = int(f) })).To(Succeed())
		Expect(p.Add(fd, poller.Read)).To(Succeed())

		_, err = w.Write([]byte("x"))
		Expect(err).ToNot(HaveOccurred())

		events, err := p.Wait(time.Second)
		Expect(err).ToNot(HaveOccurred())
		Expect(events).To(ContainElement(poller.Event{Fd: fd, Ready: poller.Read}))
	})

	It("times out when nothing becomes ready", func() {
		p, err := poller.New()
		Expect(err).ToNot(HaveOccurred())
		defer p.Close()

		r, w, err := os.Pipe()
		Expect(err).ToNot(HaveOccurred())
		defer r.Close()
		defer w.Close()

		rc, err := r.SyscallConn()
		Expect(err).ToNot(HaveOccurred())

		var fd int
		Expect(rc.Control(func(f uintptr) { fd = int(f) })).To(Succeed())
		Expect(p.Add(fd, poller.Read)).To(Succeed())

		events, err := p.Wait(20 * time.Millisecond)
		Expect(err).ToNot(HaveOccurred())
		Expect(events).To(BeEmpty())
	})
})
