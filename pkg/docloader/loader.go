package docloader

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tcfw/docloader/pkg/cache"
	"github.com/tcfw/docloader/pkg/did"
	didresolver "github.com/tcfw/docloader/pkg/did/resolver"
	"github.com/tcfw/docloader/pkg/did/w3cdid"
)

const (
	cacheNamespace = "json_ld_document_resolver"

	DefaultCacheTTL = 300 * time.Second
)

type request struct {
	ref     string
	options Options
	resp    chan result
}

type result struct {
	doc *Document
	err error
}

// Loader resolves DID and HTTP(S) references to documents through a
// single blocking entry point. All resolutions run serialized on a
// worker goroutine owned by the loader, so Load is safe to call from
// any goroutine without stalling work the caller is already driving
type Loader struct {
	resolver did.Resolver
	fetcher  Fetcher
	cache    cache.Cache
	pinned   map[string]*Document
	ttl      time.Duration
	timeout  time.Duration
	log      *logrus.Entry

	requests  chan *request
	stop      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func NewLoader(opts ...LoaderOption) (*Loader, error) {
	l := &Loader{
		resolver: didresolver.New(),
		fetcher:  NewHTTPFetcher(nil),
		ttl:      DefaultCacheTTL,
		log:      logrus.NewEntry(logrus.StandardLogger()),

		requests: make(chan *request),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, errors.Wrap(err, "applying loader option")
		}
	}

	go l.worker()

	return l, nil
}

// Load resolves a reference to a document, blocking until the worker
// has answered. Calls are answered in submission order
func (l *Loader) Load(ref string, options Options) (*Document, error) {
	req := &request{ref: ref, options: options, resp: make(chan result, 1)}

	select {
	case l.requests <- req:
	case <-l.stop:
		return nil, ErrLoaderClosed
	}

	res := <-req.resp
	return res.doc, res.err
}

// Close stops the worker. Outstanding calls finish; later calls fail
// with ErrLoaderClosed
func (l *Loader) Close() error {
	l.closeOnce.Do(func() {
		close(l.stop)
	})

	<-l.stopped
	return nil
}

// worker hosts every resolution, one at a time, for the loader's whole
// lifetime
func (l *Loader) worker() {
	defer close(l.stopped)

	for {
		select {
		case req := <-l.requests:
			doc, err := l.resolve(context.Background(), req.ref, req.options)
			req.resp <- result{doc: doc, err: err}
		case <-l.stop:
			return
		}
	}
}

// resolve runs the cache-aside pipeline: lookup keyed by the original
// reference, scheme dispatch on a miss, cache fill on success. An
// unrecognized reference fails before any collaborator is touched
func (l *Loader) resolve(ctx context.Context, ref string, options Options) (*Document, error) {
	kind := classify(ref)
	if kind == refUnrecognized {
		return nil, errors.Wrap(ErrUnrecognizedReference, ref)
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if doc, ok := l.pinned[ref]; ok {
		return doc, nil
	}

	key := cacheNamespace + "::" + ref

	if l.cache != nil {
		d, ok, err := l.cache.Get(ctx, key)
		if err != nil {
			return nil, errors.Wrap(err, "cache lookup")
		}
		if ok {
			l.log.WithField("ref", ref).Debug("cache hit")

			doc := &Document{}
			if err := msgpack.Unmarshal(d, doc); err != nil {
				return nil, errors.Wrap(err, "decoding cached document")
			}

			return doc, nil
		}
	}

	var (
		doc *Document
		err error
	)

	if kind == refDID {
		doc, err = l.resolveDID(ctx, ref, options)
	} else {
		doc, err = l.fetcher.Fetch(ref, options)
	}

	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		d, err := msgpack.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "encoding document for cache")
		}

		if err := l.cache.Set(ctx, key, d, l.ttl); err != nil {
			return nil, errors.Wrap(err, "cache fill")
		}
	}

	return doc, nil
}

func (l *Loader) resolveDID(ctx context.Context, ref string, _ Options) (*Document, error) {
	bare := normalizeDID(ref)

	didDoc, err := l.resolver.Resolve(ctx, w3cdid.URL(bare))
	if err != nil {
		return nil, err
	}

	return &Document{
		ContentType: ContentTypeJSONLD,
		DocumentURL: bare,
		Document:    didDoc,
	}, nil
}
