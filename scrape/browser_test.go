package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"commander/scrape"
)

var _ = Describe("BrowserDownloader", func() {
	It("rejects an unknown browser type", func() {
		_, err := scrape.NewBrowserDownloader(scrape.BrowserOptions{BrowserType: "lynx"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("lynx"))
	})

	It("does not start a browser until the first download", func() {
		d, err := scrape.NewBrowserDownloader(scrape.BrowserOptions{Headless: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Close()).To(Succeed())
	})

	It("renders a page", func() {
		if os.Getenv("COMMANDER_TEST_PLAYWRIGHT") == "" {
			Skip("set COMMANDER_TEST_PLAYWRIGHT to run browser specs")
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<html><body><p id="x"></p><script>document.getElementById("x").textContent = "rendered";</script></body></html>`))
		}))
		defer server.Close()

		d, err := scrape.NewBrowserDownloader(scrape.BrowserOptions{Headless: true})
		Expect(err).NotTo(HaveOccurred())
		defer d.Close()

		html, err := d.Download(context.Background(), server.URL)
		Expect(err).NotTo(HaveOccurred())
		Expect(html).To(ContainSubstring("rendered"))
	})
})
