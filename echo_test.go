package reactor_test

import (
	"net"
	"strconv"
	"time"

	reactor "github.com/evreactor/evreactor"
	"github.com/evreactor/evreactor/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("echo server end to end", func() {
	It("reads 4 bytes and writes them back identically", func() {
		port := freePort()

		h := &testHandler{}
		h.onServerInit = func(ctx *reactor.Context, listenerTag any, addr string, rport int) {
			h.onRecvData = func(ctx *reactor.Context) {
				b, err := ctx.Read(4)
				Expect(err).ToNot(HaveOccurred())
				_, _ = ctx.Write(b)
			}
		}

		r, err := reactor.New(config.Default(), h)
		Expect(err).ToNot(HaveOccurred())
		Expect(r.Listen("127.0.0.1", port, "listener")).To(Succeed())

		done := make(chan error, 1)
		go func() { done <- r.Start() }()

		conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		_, err = conn.Write([]byte("ping"))
		Expect(err).ToNot(HaveOccurred())

		buf := make([]byte, 4)
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, err = conn.Read(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(buf)).To(Equal("ping"))

		r.Stop()
		Eventually(done, time.Second).Should(Receive(BeNil()))
	})
})
