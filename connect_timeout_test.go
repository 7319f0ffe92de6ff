package reactor_test

import (
	"time"

	reactor "github.com/evreactor/evreactor"
	"github.com/evreactor/evreactor/config"
	"github.com/evreactor/evreactor/duration"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("connect timeout end to end", func() {
	It("reports a timeout error and never calls ClientInit", func() {
		errs := make(chan error, 1)
		clientInitCalled := false

		h := &testHandler{}
		h.onClientInit = func(ctx *reactor.Context) { clientInitCalled = true }
		h.onError = func(r *reactor.Reactor, tag any, detail error) {
			errs <- detail
			r.Stop()
		}

		r, err := reactor.New(config.Default(), h)
		Expect(err).ToNot(HaveOccurred())

		// 10.255.255.1 is a non-routable address commonly used to induce a
		// hanging connect attempt in test environments.
		Expect(r.Connect("10.255.255.1", 80, "T", 250*time.Millisecond)).To(Succeed())

		done := make(chan error, 1)
		go func() { done <- r.Start() }()

		var detail error
		Eventually(errs, 600*time.Millisecond, 10*time.Millisecond).Should(Receive(&detail))
		Expect(detail.Error()).To(ContainSubstring("Connection timed out"))
		Expect(clientInitCalled).To(BeFalse())

		Eventually(done, time.Second).Should(Receive(BeNil()))
	})

	It("falls back to Config.ConnectTimeout when Connect's own timeout is zero", func() {
		errs := make(chan error, 1)

		h := &testHandler{}
		h.onError = func(r *reactor.Reactor, tag any, detail error) {
			errs <- detail
			r.Stop()
		}

		cfg := config.Default()
		cfg.ConnectTimeout = duration.ParseDuration(250 * time.Millisecond)

		r, err := reactor.New(cfg, h)
		Expect(err).ToNot(HaveOccurred())

		Expect(r.Connect("10.255.255.1", 80, "T", 0)).To(Succeed())

		done := make(chan error, 1)
		go func() { done <- r.Start() }()

		var detail error
		Eventually(errs, 600*time.Millisecond, 10*time.Millisecond).Should(Receive(&detail))
		Expect(detail.Error()).To(ContainSubstring("Connection timed out"))

		Eventually(done, time.Second).Should(Receive(BeNil()))
	})
})
