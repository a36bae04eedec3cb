package resolver

import (
	"context"
	"crypto/ed25519"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
	"github.com/pkg/errors"

	"github.com/tcfw/docloader/pkg/did/w3cdid"
	"github.com/tcfw/docloader/pkg/did/w3cdid/cryptography"
)

// multicodec code for ed25519 public keys
const multicodecEd25519Pub = 0xed

// resolveKey synthesizes a DID document directly from the multibase
// encoded public key carried in the identifier. Only ed25519 keys are
// supported
func (r *Resolver) resolveKey(_ context.Context, did w3cdid.URL) (*w3cdid.Document, error) {
	id := did.Id()

	enc, raw, err := multibase.Decode(id)
	if err != nil {
		return nil, errors.Wrap(err, "decoding method id")
	}

	if enc != multibase.Base58BTC {
		return nil, errors.Wrap(cryptography.ErrInvalidPublicKey, "unexpected multibase encoding")
	}

	code, n, err := varint.FromUvarint(raw)
	if err != nil {
		return nil, errors.Wrap(err, "reading multicodec prefix")
	}

	if code != multicodecEd25519Pub {
		return nil, cryptography.ErrUnsupportedPublicKeyType
	}

	if len(raw)-n != ed25519.PublicKeySize {
		return nil, cryptography.ErrInvalidPublicKeyLength
	}

	vm := cryptography.VerificationMethod{
		ID:                 string(did) + "#" + id,
		Type:               cryptography.Ed25519VerificationKey2020,
		Controller:         string(did),
		PublicKeyMultibase: id,
	}

	return &w3cdid.Document{
		Context: []string{
			"https://www.w3.org/ns/did/v1",
			"https://w3id.org/security/suites/ed25519-2020/v1",
		},
		ID:                 string(did),
		VerificationMethod: []cryptography.VerificationMethod{vm},
		Authentication:     []cryptography.VerificationMethod{vm},
		AssertionMethod:    []cryptography.VerificationMethod{vm},
	}, nil
}
