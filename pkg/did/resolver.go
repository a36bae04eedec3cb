package did

import (
	"context"

	"github.com/tcfw/docloader/pkg/did/w3cdid"
)

// Resolver allows for a DID to be resolved agnostically of any given method
type Resolver interface {
	Resolve(ctx context.Context, did w3cdid.URL) (*w3cdid.Document, error)
}
