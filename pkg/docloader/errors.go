package docloader

import "github.com/pkg/errors"

var (
	ErrUnrecognizedReference = errors.New("unrecognized reference format. Must start with 'did:', 'http://' or 'https://'")
	ErrLoaderClosed          = errors.New("loader closed")
)
