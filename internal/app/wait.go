// Where: cli/internal/app/wait.go
// What: Server readiness waiting helpers.
// Why: Announce the reachable URL only once the health endpoint responds.
package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ServerWaiter polls the launched server until it accepts requests.
type ServerWaiter interface {
	Wait(baseURL string) error
}

type serverWaiter struct {
	client   *http.Client
	timeout  time.Duration
	interval time.Duration
}

// NewServerWaiter returns a waiter polling the server's /health endpoint.
func NewServerWaiter() ServerWaiter {
	return serverWaiter{
		client:   &http.Client{Timeout: 1 * time.Second},
		timeout:  60 * time.Second,
		interval: 500 * time.Millisecond,
	}
}

func (w serverWaiter) Wait(baseURL string) error {
	if w.client == nil {
		return fmt.Errorf("server waiter client not configured")
	}

	url := strings.TrimRight(baseURL, "/") + "/health"
	deadline := time.Now().Add(w.timeout)

	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := w.client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(w.interval)
	}

	return fmt.Errorf("server did not become ready within %s", w.timeout)
}
