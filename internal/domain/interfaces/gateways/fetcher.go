// Package gateways defines interfaces for external service adapters.
package gateways

import "context"

// Fetcher downloads a URL to a local file.
//
// Implementations own every network and filesystem concern (redirects, TLS,
// timeouts, retries, partial writes). Callers only see whether the fetch
// succeeded.
type Fetcher interface {
	Fetch(ctx context.Context, url, destPath string) bool
}
