package dllfiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
)

var downloadURLPattern = regexp.MustCompile(downloadURLVarName + `\s=\s"(.+?)";`)

// LinkExtractor reads the final download URL out of a detail page
type LinkExtractor struct {
	client *Client
	logger *log.Logger
}

// NewLinkExtractor creates a new LinkExtractor
func NewLinkExtractor(client *Client, logger *log.Logger) *LinkExtractor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LinkExtractor{client: client, logger: logger}
}

// Extract fetches the detail page and returns its download URL
func (e *LinkExtractor) Extract(ctx context.Context, pageURL string) (string, error) {
	e.logger.Printf("Fetching detail page: %s", pageURL)

	page, err := e.client.Fetch(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("fetching detail page: %w", err)
	}

	url, err := ParseDownloadURL(string(page.Body))
	if err != nil {
		if page.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetching detail page: %w", statusError(page))
		}
		return "", err
	}

	e.logger.Printf("  download url: %s", url)
	return url, nil
}

// ParseDownloadURL returns the value assigned to the page's download script
// variable. "&amp;" is the only entity decoded; the URL is not validated.
func ParseDownloadURL(html string) (string, error) {
	m := downloadURLPattern.FindStringSubmatch(html)
	if m == nil {
		return "", fmt.Errorf("download url: %w", ErrNotFound)
	}
	return strings.ReplaceAll(m[1], "amp;", ""), nil
}
