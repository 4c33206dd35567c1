package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body any, headers map[string]string) (Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	merged := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		merged[k] = v
	}
	return c.do(ctx, http.MethodPost, url, payload, merged)
}

// do retries on transport errors and 5xx responses. A fresh request is built
// for every attempt so the body can be replayed.
func (c *clientImpl) do(ctx context.Context, method, url string, body []byte, headers map[string]string) (Response, error) {
	var (
		resp *http.Response
		err  error
	)
	for i := 0; i <= c.config.Retries; i++ {
		var req *http.Request
		req, err = newRequest(ctx, method, url, body, headers)
		if err != nil {
			return Response{}, err
		}

		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			break
		}
		if i == c.config.Retries {
			break
		}
		if resp != nil {
			resp.Body.Close()
			resp = nil
		}
		if werr := wait(ctx, c.config.RetryWait); werr != nil {
			return Response{}, werr
		}
	}
	if err != nil {
		return Response{}, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{StatusCode: resp.StatusCode, Header: resp.Header}, fmt.Errorf("failed to read response body: %w", err)
	}
	return Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func newRequest(ctx context.Context, method, url string, body []byte, headers map[string]string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
