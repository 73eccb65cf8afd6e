package dllfiles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client handles HTTP requests to the file host
type Client struct {
	httpClient *http.Client
	userAgent  string
	progress   bool
}

// NewClient creates a new file host HTTP client with no overall timeout;
// requests are bounded by their context only
func NewClient() *Client {
	return NewClientWithTimeout(0)
}

// NewClientWithTimeout creates a new client with custom timeout.
// A zero timeout leaves the transport default in place.
func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SetUserAgent sets the User-Agent header. Until one is set the
// transport default is sent.
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// SetProgress enables the download progress bar when stderr is a terminal
func (c *Client) SetProgress(enabled bool) {
	c.progress = enabled
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w: %w", ErrNetwork, err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w: %w", ErrNetwork, err)
	}

	return resp, nil
}

// Fetch performs an HTTP GET and reads the whole body. Non-200 responses are
// returned as pages; callers decide what the status means.
func (c *Client) Fetch(ctx context.Context, url string) (*Page, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w: %w", ErrNetwork, err)
	}

	return &Page{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// Download streams the body of a 200 response into w
func (c *Client) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d for %s: %w", resp.StatusCode, url, ErrNetwork)
	}

	body := io.Reader(resp.Body)
	if c.progress {
		var finish func()
		body, finish = progress(resp.Body, resp.ContentLength)
		defer finish()
	}

	written, err := io.Copy(w, body)
	if err != nil {
		return written, fmt.Errorf("copying data: %w: %w", ErrNetwork, err)
	}

	return written, nil
}

// statusError reports a page that came back with something other than 200
func statusError(page *Page) error {
	return fmt.Errorf("unexpected status %d for %s: %w", page.StatusCode, page.URL, ErrNetwork)
}
