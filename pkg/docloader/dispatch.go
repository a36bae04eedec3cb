package docloader

import (
	"strings"

	"github.com/tcfw/docloader/pkg/did/w3cdid"
)

type refKind int

const (
	refUnrecognized refKind = iota
	refDID
	refHTTP
)

// classify buckets a reference by scheme prefix alone; no I/O
func classify(ref string) refKind {
	switch {
	case strings.HasPrefix(ref, "did:"):
		return refDID
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return refHTTP
	default:
		return refUnrecognized
	}
}

// normalizeDID strips any path, query or fragment from a DID URL.
// Resolvers accept only the bare form. Bare DIDs and anything that does
// not reduce to a well-formed DID pass through untouched
func normalizeDID(ref string) string {
	if bare := w3cdid.URL(ref).DID(); w3cdid.URL(bare).IsValid() {
		return bare
	}

	return ref
}
