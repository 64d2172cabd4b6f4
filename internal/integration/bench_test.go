package integration

import (
	"net/http"
	"testing"
)

// Benchmark for GET /products/{id}; to run: go test -bench=. ./internal/integration -run ^$
func BenchmarkGetProduct(b *testing.B) {
	u := startAll(b)["inventory"]
	client := &http.Client{}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			resp, err := client.Get(u + "/products/2")
			if err == nil {
				_ = resp.Body.Close()
			}
		}
	})
}
