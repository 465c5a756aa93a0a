// Package innertube is a minimal client for YouTube's internal JSON API,
// shared by the music metadata provider and the extraction fallback search.
// Responses are deeply nested renderer trees, so callers navigate them with
// the Nav helpers instead of static structs.
package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// ClientInfo selects which innertube client surface a request is made as.
type ClientInfo struct {
	Name    string
	Version string
	Host    string
	Origin  string
}

var (
	// WebRemix is the music.youtube.com client, used for music metadata.
	WebRemix = ClientInfo{
		Name:    "WEB_REMIX",
		Version: "1.20240501.01.00",
		Host:    "https://music.youtube.com/youtubei/v1",
		Origin:  "https://music.youtube.com",
	}
	// Web is the plain www.youtube.com client, used for fallback search.
	Web = ClientInfo{
		Name:    "WEB",
		Version: "2.20240501.01.00",
		Host:    "https://www.youtube.com/youtubei/v1",
		Origin:  "https://www.youtube.com",
	}
)

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("innertube %s: status %d", e.Endpoint, e.StatusCode)
}

type Client struct {
	httpClient *http.Client
	info       ClientInfo
	baseURL    string
	cookie     string
	gl         string
}

type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithCookie attaches a session cookie to every request. Used to avoid
// bot detection on hosted deployments.
func WithCookie(cookie string) Option {
	return func(c *Client) { c.cookie = cookie }
}

// WithGeoLocation sets the "gl" region hint sent with every request.
func WithGeoLocation(gl string) Option {
	return func(c *Client) { c.gl = gl }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(info ClientInfo, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		info:       info,
		baseURL:    info.Host,
		gl:         "US",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post sends an innertube request and decodes the response tree. The client
// context block is merged into body; callers supply only endpoint-specific
// fields (query, videoId, browseId, ...).
func (c *Client) Post(ctx context.Context, endpoint string, body map[string]interface{}) (map[string]interface{}, error) {
	payload := make(map[string]interface{}, len(body)+1)
	for k, v := range body {
		payload[k] = v
	}
	payload["context"] = map[string]interface{}{
		"client": map[string]interface{}{
			"clientName":    c.info.Name,
			"clientVersion": c.info.Version,
			"hl":            "en",
			"gl":            c.gl,
		},
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	apiURL := c.baseURL + "/" + endpoint + "?prettyPrint=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Origin", c.info.Origin)
	req.Header.Set("X-Goog-Api-Format-Version", "1")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}
