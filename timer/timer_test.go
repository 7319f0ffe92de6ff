package timer_test

import (
	"testing"
	"time"

	"github.com/evreactor/evreactor/timer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTimer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "timer suite")
}

var _ = Describe("Manager", func() {
	It("fires the earliest entry first regardless of insertion order", func() {
		m := timer.NewManager()
		m.Add(30*time.Millisecond, "b", false, false)
		m.Add(10*time.Millisecond, "a", false, false)

		now := time.Now().Add(20 * time.Millisecond)
		tag, ok := m.Next(now)
		Expect(ok).To(BeTrue())
		Expect(tag).To(Equal("a"))

		_, ok = m.Next(now)
		Expect(ok).To(BeFalse())
	})

	It("drops a cancelled entry instead of firing it", func() {
		m := timer.NewManager()
		h := m.Add(5*time.Millisecond, "x", false, false)
		m.Cancel(h)

		_, ok := m.Next(time.Now().Add(10 * time.Millisecond))
		Expect(ok).To(BeFalse())
		Expect(m.Len()).To(Equal(0))
	})

	It("re-arms a recurring entry after it fires", func() {
		m := timer.NewManager()
		m.Add(5*time.Millisecond, "tick", true, false)

		first := time.Now().Add(10 * time.Millisecond)
		tag, ok := m.Next(first)
		Expect(ok).To(BeTrue())
		Expect(tag).To(Equal("tick"))

		// not due yet relative to the re-armed expiry
		_, ok = m.Next(first)
		Expect(ok).To(BeFalse())

		second := first.Add(10 * time.Millisecond)
		tag, ok = m.Next(second)
		Expect(ok).To(BeTrue())
		Expect(tag).To(Equal("tick"))
	})

	It("supports an immediate (zero-delay) entry", func() {
		m := timer.NewManager()
		m.Add(time.Hour, "now", false, true)

		tag, ok := m.Next(time.Now())
		Expect(ok).To(BeTrue())
		Expect(tag).To(Equal("now"))
	})

	It("Peek reports the next live expiry without consuming it", func() {
		m := timer.NewManager()
		m.Add(5*time.Millisecond, "a", false, false)

		exp, ok := m.Peek()
		Expect(ok).To(BeTrue())
		Expect(exp.After(time.Now())).To(BeTrue())
		Expect(m.Len()).To(Equal(1))
	})
})
