package resolver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/tcfw/docloader/pkg/did/w3cdid"
)

// resolveWeb fetches the DID document from the well-known location
// derived from the identifier, e.g. did:web:example.com:user:alice
// becomes https://example.com/user/alice/did.json
func (r *Resolver) resolveWeb(ctx context.Context, did w3cdid.URL) (*w3cdid.Document, error) {
	parts := strings.Split(did.Id(), ":")

	host, err := url.PathUnescape(parts[0])
	if err != nil {
		return nil, errors.Wrap(err, "unescaping host")
	}

	target := r.webScheme + "://" + host
	if len(parts) == 1 {
		target += "/.well-known/did.json"
	} else {
		target += "/" + strings.Join(parts[1:], "/") + "/did.json"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching did document")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching %s: unexpected status %d", target, resp.StatusCode)
	}

	doc := &w3cdid.Document{}
	if err := json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decoding did document")
	}

	return doc, nil
}
