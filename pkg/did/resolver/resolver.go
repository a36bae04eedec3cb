package resolver

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/tcfw/docloader/pkg/did"
	"github.com/tcfw/docloader/pkg/did/w3cdid"
)

var (
	ErrUnknownMethod = errors.New("unknown did method")
	ErrInvalidDID    = errors.New("invalid did")
)

var _ did.Resolver = (*Resolver)(nil)

type Resolver struct {
	http *http.Client

	// scheme used for did:web lookups, https outside of tests
	webScheme string
}

func New() *Resolver {
	return NewWithClient(http.DefaultClient)
}

func NewWithClient(c *http.Client) *Resolver {
	return &Resolver{http: c, webScheme: "https"}
}

// Resolve resolves a bare DID via any supported DID method. DID URLs
// carrying a path, query or fragment are rejected
func (r *Resolver) Resolve(ctx context.Context, did w3cdid.URL) (*w3cdid.Document, error) {
	if !did.IsValid() {
		return nil, errors.Wrap(ErrInvalidDID, string(did))
	}

	switch did.Method() {
	case "key":
		return r.resolveKey(ctx, did)
	case "web":
		return r.resolveWeb(ctx, did)
	default:
		return nil, errors.Wrap(ErrUnknownMethod, did.Method())
	}
}
