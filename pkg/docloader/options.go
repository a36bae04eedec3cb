package docloader

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tcfw/docloader/pkg/cache"
	"github.com/tcfw/docloader/pkg/did"
)

type LoaderOption func(*Loader) error

// WithCache attaches a TTL cache. Without one, every Load resolves
// through the backends
func WithCache(c cache.Cache) LoaderOption {
	return func(l *Loader) error {
		l.cache = c
		return nil
	}
}

func WithCacheTTL(ttl time.Duration) LoaderOption {
	return func(l *Loader) error {
		l.ttl = ttl
		return nil
	}
}

func WithResolver(r did.Resolver) LoaderOption {
	return func(l *Loader) error {
		l.resolver = r
		return nil
	}
}

func WithFetcher(f Fetcher) LoaderOption {
	return func(l *Loader) error {
		l.fetcher = f
		return nil
	}
}

// WithTimeout bounds each resolution, collaborator calls included.
// Zero disables the bound
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) error {
		l.timeout = d
		return nil
	}
}

// WithPinnedDocuments serves the given documents by reference before
// the cache or any backend is consulted
func WithPinnedDocuments(docs map[string]*Document) LoaderOption {
	return func(l *Loader) error {
		l.pinned = docs
		return nil
	}
}

func WithLogger(log *logrus.Entry) LoaderOption {
	return func(l *Loader) error {
		l.log = log
		return nil
	}
}
