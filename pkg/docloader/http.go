package docloader

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Fetcher retrieves documents over HTTP(S)
type Fetcher interface {
	Fetch(url string, options Options) (*Document, error)
}

const (
	acceptHeader   = "application/ld+json, application/json"
	linkContextRel = "http://www.w3.org/ns/json-ld#context"
)

var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher fetches JSON(-LD) documents over HTTP(S). When the
// response is plain JSON, the Link header is scanned for an alternate
// context relation as JSON-LD processors expect
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(url string, _ Options) (*Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching document")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	// final URL after any redirects
	doc := &Document{DocumentURL: resp.Request.URL.String()}

	ct := resp.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	doc.ContentType = strings.TrimSpace(ct)

	if doc.ContentType != ContentTypeJSONLD {
		doc.ContextURL = contextLink(resp.Header.Values("Link"))
	}

	if err := json.NewDecoder(resp.Body).Decode(&doc.Document); err != nil {
		return nil, errors.Wrap(err, "decoding document body")
	}

	return doc, nil
}

// contextLink scans Link header values for the JSON-LD context relation
func contextLink(links []string) string {
	for _, header := range links {
		for _, link := range strings.Split(header, ",") {
			parts := strings.Split(link, ";")
			if len(parts) < 2 {
				continue
			}

			target := strings.Trim(strings.TrimSpace(parts[0]), "<>")

			for _, attr := range parts[1:] {
				k, v, ok := strings.Cut(strings.TrimSpace(attr), "=")
				if !ok || k != "rel" {
					continue
				}

				if strings.Trim(v, `"`) == linkContextRel {
					return target
				}
			}
		}
	}

	return ""
}
