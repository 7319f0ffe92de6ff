package reactor_test

import (
	"os"
	"time"

	reactor "github.com/evreactor/evreactor"
	"github.com/evreactor/evreactor/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("seekable file write ordering", func() {
	It("lands an overwrite at the seeked offset ahead of a later chunk", func() {
		f, err := os.CreateTemp("", "evreactor-seek-*.bin")
		Expect(err).ToNot(HaveOccurred())
		path := f.Name()
		Expect(f.Close()).To(Succeed())
		defer os.Remove(path)

		r, err := reactor.New(config.Default(), &testHandler{})
		Expect(err).ToNot(HaveOccurred())

		Expect(r.Open(path, os.O_RDWR, 0o644, "file", true)).To(Succeed())

		ctx, ok := r.FindIOByTag("file")
		Expect(ok).To(BeTrue())

		_, err = ctx.Write([]byte("AAA"))
		Expect(err).ToNot(HaveOccurred())
		_, err = ctx.Seek(0, os.SEEK_SET)
		Expect(err).ToNot(HaveOccurred())
		_, err = ctx.Write([]byte("B"))
		Expect(err).ToNot(HaveOccurred())

		done := make(chan error, 1)
		go func() { done <- r.Start() }()

		time.Sleep(100 * time.Millisecond)
		r.Stop()
		Eventually(done, time.Second).Should(Receive(BeNil()))

		contents, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(contents)).To(Equal("BAA"))
	})
})
