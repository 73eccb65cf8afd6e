package dllfiles

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
)

var (
	sectionPattern    = regexp.MustCompile(`(?s)<section class="` + sectionTag + `".+?</section>`)
	metaInfoPattern   = regexp.MustCompile(`(?s)<div\sclass="` + metaInfoTag + `".+?</div>`)
	inlineTextPattern = regexp.MustCompile(`(?s)<p>(.+?)</p>`)
	detailLinkPattern = regexp.MustCompile(`<a href="([^"]+)"\s` + trackingAttribute)
)

// PageResolver finds the per-architecture detail pages of a library
type PageResolver struct {
	client  *Client
	baseURL string
	logger  *log.Logger
}

// NewPageResolver creates a resolver reading listing pages from baseURL
func NewPageResolver(client *Client, baseURL string, logger *log.Logger) *PageResolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &PageResolver{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// ListingURL returns the listing page URL of a library
func (r *PageResolver) ListingURL(library string) string {
	return fmt.Sprintf("%s/%s.html", r.baseURL, library)
}

// Resolve fetches the listing page of library and returns the detail page
// of every architecture that has a build. A missing architecture is not an error.
func (r *PageResolver) Resolve(ctx context.Context, library string) (PageLinks, error) {
	url := r.ListingURL(library)
	r.logger.Printf("Fetching listing page: %s", url)

	page, err := r.client.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching listing page: %w", err)
	}

	if bytes.Contains(page.Body, []byte(notFoundMarker)) {
		return nil, fmt.Errorf("listing page of %s: %w", library, ErrNotFound)
	}
	if page.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching listing page: %w", statusError(page))
	}

	links := ParseListing(string(page.Body), r.baseURL)
	for _, arch := range Architectures {
		if link, ok := links.Lookup(arch); ok {
			r.logger.Printf("  %s detail page: %s", arch, link)
		} else {
			r.logger.Printf("  %s detail page: none", arch)
		}
	}

	return links, nil
}

// ParseListing scans the file sections of a listing page in document order.
// The first section tagged with an architecture wins; scanning stops once
// both architectures are filled.
func ParseListing(html, baseURL string) PageLinks {
	links := make(PageLinks, len(Architectures))
	baseURL = strings.TrimRight(baseURL, "/")

	for _, section := range sectionPattern.FindAllString(html, -1) {
		if links.complete() {
			break
		}

		meta := metaInfoPattern.FindString(section)
		if meta == "" {
			continue
		}

		// second inline text of the meta block holds the architecture
		texts := inlineTextPattern.FindAllStringSubmatch(meta, 2)
		if len(texts) < 2 {
			continue
		}
		arch, ok := archFromTag(texts[1][1])
		if !ok {
			continue
		}
		if _, filled := links[arch]; filled {
			continue
		}

		href := detailLinkPattern.FindStringSubmatch(section)
		if href == nil {
			continue
		}

		links[arch] = baseURL + href[1]
	}

	return links
}

func archFromTag(tag string) (Architecture, bool) {
	for _, arch := range Architectures {
		if arch.Tag() == tag {
			return arch, true
		}
	}
	return 0, false
}
