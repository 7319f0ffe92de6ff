package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evreactor/evreactor/config"
	"github.com/evreactor/evreactor/duration"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "config suite")
}

var _ = Describe("Config", func() {
	It("fills in documented defaults on a zero value", func() {
		c := config.Config{}
		Expect(c.Validate()).To(Succeed())
		Expect(c.Backlog).To(Equal(10))
		Expect(c.RateWindow).To(Equal(duration.Seconds(30)))
		Expect(c.RateCapacity).To(Equal(100))
		Expect(c.ReadBufferSize).ToNot(BeZero())
		Expect(c.Logger).ToNot(BeNil())
	})

	It("rejects a rate capacity below the minimum of 2", func() {
		c := config.Config{RateCapacity: 1}
		Expect(c.Validate()).To(HaveOccurred())
	})

	It("leaves explicitly set fields alone", func() {
		c := config.Config{Backlog: 64, RateCapacity: 5, ReadBufferSize: 4096}
		Expect(c.Validate()).To(Succeed())
		Expect(c.Backlog).To(Equal(64))
		Expect(c.RateCapacity).To(Equal(5))
		Expect(c.ReadBufferSize).To(Equal(4096))
	})

	It("loads and validates a TOML file", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "reactor.toml")
		Expect(os.WriteFile(path, []byte("backlog = 32\nrateCapacity = 50\n"), 0o644)).To(Succeed())

		c, err := config.LoadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Backlog).To(Equal(32))
		Expect(c.RateCapacity).To(Equal(50))
		Expect(c.ReadBufferSize).ToNot(BeZero())
	})

	It("rejects an unrecognized file extension", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "reactor.ini")
		Expect(os.WriteFile(path, []byte("backlog=32"), 0o644)).To(Succeed())

		_, err := config.LoadFile(path)
		Expect(err).To(HaveOccurred())
	})
})
