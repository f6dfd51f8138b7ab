package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"
)

// Quick smoke check against a running instance.
// Usage: go run scripts/smoke.go -base http://localhost:8080

func main() {
	base := flag.String("base", "http://localhost:8080", "API base URL")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	fmt.Println("=== Health ===")
	check(client, *base+"/health")
	fmt.Println()

	fmt.Println("=== Dashboard ===")
	check(client, *base+"/api/dashboard")
}

func check(client *http.Client, url string) {
	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("✗ GET %s: %v\n", url, err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		fmt.Printf("✗ GET %s: bad JSON: %v\n", url, err)
		os.Exit(1)
	}

	fmt.Printf("GET %s -> %d\n", url, resp.StatusCode)

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := body[k].(type) {
		case []interface{}:
			fmt.Printf("  %s: %d items\n", k, len(v))
		default:
			fmt.Printf("  %s: %v\n", k, v)
		}
	}
}
