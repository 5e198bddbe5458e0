package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"commander/config"
)

var _ = Describe("Validate", func() {
	DescribeTable("rejects invalid settings",
		func(hcl string, fragment string) {
			_, f := writeFixture("config.hcl", hcl)
			err := func() error {
				_, err := config.LoadAndValidate(f)
				return err
			}()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(fragment))
		},
		Entry("unknown log level", `logging { level = "loud" }`, "logging: invalid level 'loud'"),
		Entry("negative content limit", `researcher { max_content_chars = -1 }`, "max_content_chars must be positive"),
		Entry("negative link limit", `researcher { max_links = -5 }`, "max_links must be positive"),
		Entry("negative top words", `researcher { top_words = -1 }`, "top_words must be positive"),
		Entry("negative link timeout", `researcher { link_timeout = -2 }`, "link_timeout must be positive"),
		Entry("unknown fetcher backend", `fetcher { backend = "ftp" }`, "invalid backend 'ftp'"),
		Entry("unknown browser", `fetcher { browser_type = "lynx" }`, "invalid browser_type 'lynx'"),
		Entry("negative rate", `fetcher { requests_per_second = -1 }`, "requests_per_second cannot be negative"),
		Entry("unknown storage backend", `storage { backend = "mongo" }`, "unknown backend 'mongo'"),
		Entry("postgres without dsn", `storage { backend = "postgres" }`, "dsn is required"),
	)

	It("accepts every log level hclog knows", func() {
		for _, level := range []string{"trace", "debug", "info", "warn", "error", "off"} {
			l := config.LoggingConfig{Level: level}
			Expect(l.Validate()).To(Succeed(), level)
		}
	})

	It("accepts a postgres backend with a dsn", func() {
		s := config.StorageConfig{Backend: "postgres", DSN: "postgres://localhost/db"}
		Expect(s.Validate()).To(Succeed())
	})
})
