package reactor_test

import (
	"sync/atomic"
	"time"

	reactor "github.com/evreactor/evreactor"
	"github.com/evreactor/evreactor/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("timer end to end", func() {
	It("fires a recurring timer at roughly the scheduled cadence", func() {
		var count int32

		h := &testHandler{}
		h.onTimerExpired = func(r *reactor.Reactor, tag any) {
			atomic.AddInt32(&count, 1)
		}

		r, err := reactor.New(config.Default(), h)
		Expect(err).ToNot(HaveOccurred())
		r.ScheduleTimer(100*time.Millisecond, "tick", true, false)

		done := make(chan error, 1)
		go func() { done <- r.Start() }()

		time.Sleep(550 * time.Millisecond)
		r.Stop()
		Eventually(done, time.Second).Should(Receive(BeNil()))

		Expect(atomic.LoadInt32(&count)).To(BeNumerically("~", 5, 1))
	})

	It("never fires a cancelled timer", func() {
		var fired []string

		h := &testHandler{}
		h.onTimerExpired = func(r *reactor.Reactor, tag any) {
			fired = append(fired, tag.(string))
		}

		r, err := reactor.New(config.Default(), h)
		Expect(err).ToNot(HaveOccurred())

		r.ScheduleTimer(100*time.Millisecond, "keep", false, false)
		cancelled := r.ScheduleTimer(100*time.Millisecond, "drop", false, false)
		r.CancelTimer(cancelled)

		done := make(chan error, 1)
		go func() { done <- r.Start() }()

		time.Sleep(250 * time.Millisecond)
		r.Stop()
		Eventually(done, time.Second).Should(Receive(BeNil()))

		Expect(fired).To(Equal([]string{"keep"}))
	})
})
