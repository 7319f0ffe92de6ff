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

var _ = Describe("read across suspension", func() {
	It("delivers all 10 bytes to a single Read(10) call split across two writes", func() {
		port := freePort()
		received := make(chan []byte, 1)

		h := &testHandler{}
		h.onServerInit = func(ctx *reactor.Context, listenerTag any, addr string, rport int) {
			h.onRecvData = func(ctx *reactor.Context) {
				b, err := ctx.Read(10)
				Expect(err).ToNot(HaveOccurred())
				received <- b
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

		_, err = conn.Write([]byte("01234"))
		Expect(err).ToNot(HaveOccurred())
		time.Sleep(50 * time.Millisecond)
		_, err = conn.Write([]byte("56789"))
		Expect(err).ToNot(HaveOccurred())

		var b []byte
		Eventually(received, time.Second).Should(Receive(&b))
		Expect(string(b)).To(Equal("0123456789"))

		r.Stop()
		Eventually(done, time.Second).Should(Receive(BeNil()))
	})
})
