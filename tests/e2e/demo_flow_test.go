//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mcp-demo/toolserver/internal/tools"
)

func post(path string, body any, fallback bool) *http.Response {
	data, err := json.Marshal(body)
	Expect(err).NotTo(HaveOccurred())
	req, err := http.NewRequest(http.MethodPost, server.URL+path, bytes.NewReader(data))
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	if fallback {
		req.Header.Set(tools.FallbackHeader, "1")
	}
	res, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	return res
}

func decode(res *http.Response, out any) {
	defer func() { _ = res.Body.Close() }()
	Expect(json.NewDecoder(res.Body).Decode(out)).To(Succeed())
}

var _ = Describe("Scripted demo flow", func() {

	It("serves the tool catalog", func() {
		res, err := http.Get(server.URL + "/mcp/tools")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StatusCode).To(Equal(http.StatusOK))

		var catalog tools.CatalogResponse
		decode(res, &catalog)
		Expect(catalog.Tools).To(HaveLen(5))
	})

	It("runs the agent sequence in fallback mode", func() {
		By("Fetching a file summary")
		var file tools.FileResponse
		decode(post("/mcp/file", tools.FileRequest{Name: "ai-safety-notes.txt", MaxChars: 200}, true), &file)
		Expect(len(file.Text)).To(BeNumerically("<=", 200))
		Expect(file.Text).To(ContainSubstring("AI safety notes."))

		By("Fetching a deterministic forecast")
		var weather tools.WeatherResponse
		decode(post("/mcp/weather", tools.WeatherRequest{City: "Chicago", Days: 1}, true), &weather)
		Expect(weather.Daily).To(HaveLen(1))
		Expect(weather.Source).To(Equal(tools.SourceFallback))

		var again tools.WeatherResponse
		decode(post("/mcp/weather", tools.WeatherRequest{City: "Chicago", Days: 1}, true), &again)
		Expect(again).To(Equal(weather))

		By("Fetching a fixed crypto price")
		var crypto tools.CryptoResponse
		decode(post("/mcp/crypto", tools.CryptoRequest{Symbol: "btc", VS: "usd"}, true), &crypto)
		Expect(crypto.Price).To(Equal(50000.0))
		Expect(crypto.Source).To(Equal(tools.SourceFallback))
	})

	It("serves live data from the upstreams", func() {
		var weather tools.WeatherResponse
		decode(post("/mcp/weather", tools.WeatherRequest{City: "Chicago", Days: 1}, false), &weather)
		Expect(weather.Source).To(Equal(tools.SourceLive))
		Expect(weather.Daily[0].Date).To(Equal("2025-06-01"))

		var crypto tools.CryptoResponse
		decode(post("/mcp/crypto", tools.CryptoRequest{Symbol: "btc"}, false), &crypto)
		Expect(crypto.Source).To(Equal(tools.SourceLive))
		Expect(crypto.Price).To(Equal(61234.5))
	})

	It("rejects bad input before any upstream call", func() {
		res := post("/mcp/crypto", tools.CryptoRequest{Symbol: "doge"}, false)
		_ = res.Body.Close()
		Expect(res.StatusCode).To(Equal(http.StatusBadRequest))

		res = post("/mcp/file", tools.FileRequest{Name: "../secrets.txt", MaxChars: 10}, false)
		_ = res.Body.Close()
		Expect(res.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("reports non-decreasing uptime", func() {
		var first, second tools.HealthResponse
		res, err := http.Get(server.URL + "/mcp/health")
		Expect(err).NotTo(HaveOccurred())
		decode(res, &first)

		res, err = http.Get(server.URL + "/mcp/health")
		Expect(err).NotTo(HaveOccurred())
		decode(res, &second)
		Expect(second.UptimeSec).To(BeNumerically(">=", first.UptimeSec))
	})
})
