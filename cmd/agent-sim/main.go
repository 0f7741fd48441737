// main is a simple orchestrator that calls the demo server tools in sequence:
// fetch the tool catalog, then a file summary, a weather forecast and a
// crypto price, and print the combined JSON to stdout.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mcp-demo/toolserver/internal/tools"
)

var client = &http.Client{Timeout: 10 * time.Second}

func call(base, path string, in any, demoFallback bool) (json.RawMessage, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, base+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if demoFallback {
		req.Header.Set(tools.FallbackHeader, "1")
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", path, res.StatusCode)
	}

	var out json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func main() {
	var (
		base     string
		fallback bool
	)
	flag.StringVar(&base, "base", "http://127.0.0.1:8000", "tool server base URL")
	flag.BoolVar(&fallback, "fallback", false, "force deterministic demo responses")
	flag.Parse()

	res, err := client.Get(base + "/mcp/tools")
	if err != nil {
		fmt.Println("Could not fetch catalog:", err)
		return
	}
	_ = res.Body.Close()

	summary, err := call(base, "/mcp/file",
		tools.FileRequest{Name: "ai-safety-notes.txt", MaxChars: 200}, fallback)
	if err != nil {
		log.Fatalf("file call failed: %v", err)
	}
	weather, err := call(base, "/mcp/weather",
		tools.WeatherRequest{City: "Chicago", Days: 1}, fallback)
	if err != nil {
		log.Fatalf("weather call failed: %v", err)
	}
	crypto, err := call(base, "/mcp/crypto",
		tools.CryptoRequest{Symbol: "btc", VS: "usd"}, fallback)
	if err != nil {
		log.Fatalf("crypto call failed: %v", err)
	}

	out, err := json.MarshalIndent(map[string]json.RawMessage{
		"summary": summary,
		"weather": weather,
		"crypto":  crypto,
	}, "", "  ")
	if err != nil {
		log.Fatalf("encoding combined output: %v", err)
	}
	fmt.Println(string(out))
}
