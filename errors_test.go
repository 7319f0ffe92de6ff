package reactor_test

import (
	"errors"
	"fmt"

	reactor "github.com/evreactor/evreactor"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("falls back to the code's string form when detail is empty", func() {
		err := reactor.NewError(reactor.CodeReadFailed, "", nil)
		Expect(err.Error()).To(Equal(reactor.CodeReadFailed.String()))
		Expect(err.Code()).To(Equal(reactor.CodeReadFailed))
	})

	It("includes the parent error's message when wrapping one", func() {
		parent := fmt.Errorf("econnreset")
		err := reactor.NewError(reactor.CodeWriteFailed, "write failed", parent)
		Expect(err.Error()).To(Equal("write failed: econnreset"))
	})

	It("unwraps to the parent error for errors.Is/errors.As", func() {
		parent := fmt.Errorf("boom")
		err := reactor.NewError(reactor.CodeConnectFailed, "connect failed", parent)
		Expect(errors.Is(err, parent)).To(BeTrue())
	})

	It("produces the exact wording end-to-end callers match on for a connect timeout", func() {
		err := reactor.NewError(reactor.CodeConnectTimeout, "Connection timed out", nil)
		Expect(err.Error()).To(Equal("Connection timed out"))
	})

	It("stays well defined on a nil receiver", func() {
		var err *reactor.Error
		Expect(err.Code()).To(Equal(reactor.CodeUnknown))
		Expect(err.Error()).To(Equal(reactor.CodeUnknown.String()))
		Expect(err.Unwrap()).To(BeNil())
	})

	DescribeTable("String() covers every code",
		func(c reactor.Code, want string) {
			Expect(c.String()).To(Equal(want))
		},
		Entry("unknown", reactor.CodeUnknown, "unknown error"),
		Entry("connect timeout", reactor.CodeConnectTimeout, "connect timeout"),
		Entry("connect failed", reactor.CodeConnectFailed, "connect failed"),
		Entry("read failed", reactor.CodeReadFailed, "read failed"),
		Entry("write failed", reactor.CodeWriteFailed, "write failed"),
		Entry("closed", reactor.CodeClosed, "endpoint closed"),
		Entry("timer read forbidden", reactor.CodeTimerReadForbidden, "read not permitted from a timer callback"),
		Entry("endpoint not found", reactor.CodeEndpointNotFound, "endpoint not found"),
	)
})
