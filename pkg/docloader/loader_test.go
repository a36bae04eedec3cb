package docloader

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcfw/docloader/pkg/did/w3cdid"
)

type stubResolver struct {
	mu    sync.Mutex
	calls []string
	doc   *w3cdid.Document
	err   error

	delay    time.Duration
	inflight int32
	overlap  int32
}

func (s *stubResolver) Resolve(ctx context.Context, did w3cdid.URL) (*w3cdid.Document, error) {
	if atomic.AddInt32(&s.inflight, 1) > 1 {
		atomic.AddInt32(&s.overlap, 1)
	}
	defer atomic.AddInt32(&s.inflight, -1)

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	s.mu.Lock()
	s.calls = append(s.calls, string(did))
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	return s.doc, nil
}

type fetchCall struct {
	url     string
	options Options
}

type stubFetcher struct {
	calls []fetchCall
	doc   *Document
	err   error
}

func (s *stubFetcher) Fetch(url string, options Options) (*Document, error) {
	s.calls = append(s.calls, fetchCall{url: url, options: options})

	if s.err != nil {
		return nil, s.err
	}

	return s.doc, nil
}

type stubCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	gets    int
	sets    int
	getErr  error
	setErr  error
	lastKey string
}

func newStubCache() *stubCache {
	return &stubCache{items: map[string][]byte{}}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	c.lastKey = key

	if c.getErr != nil {
		return nil, false, c.getErr
	}

	d, ok := c.items[key]
	return d, ok, nil
}

func (c *stubCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sets++

	if c.setErr != nil {
		return c.setErr
	}

	c.items[key] = value
	return nil
}

func newTestLoader(t *testing.T, opts ...LoaderOption) *Loader {
	t.Helper()

	l, err := NewLoader(opts...)
	require.NoError(t, err)

	t.Cleanup(func() { l.Close() })

	return l
}

func TestLoadUnrecognized(t *testing.T) {
	resolver := &stubResolver{}
	fetcher := &stubFetcher{}
	store := newStubCache()

	l := newTestLoader(t, WithResolver(resolver), WithFetcher(fetcher), WithCache(store))

	_, err := l.Load("ftp://example.com/x", Options{})

	assert.True(t, errors.Is(err, ErrUnrecognizedReference))
	assert.Contains(t, err.Error(), "ftp://example.com/x")
	assert.Empty(t, resolver.calls)
	assert.Empty(t, fetcher.calls)
	assert.Zero(t, store.gets)
	assert.Zero(t, store.sets)
}

func TestLoadDIDNormalized(t *testing.T) {
	resolver := &stubResolver{doc: &w3cdid.Document{ID: "did:example:123"}}

	l := newTestLoader(t, WithResolver(resolver))

	doc, err := l.Load("did:example:123/path?query", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"did:example:123"}, resolver.calls)
	assert.Equal(t, ContentTypeJSONLD, doc.ContentType)
	assert.Empty(t, doc.ContextURL)
	assert.Equal(t, "did:example:123", doc.DocumentURL)
	assert.Equal(t, resolver.doc, doc.Document)
}

func TestLoadHTTPPassThrough(t *testing.T) {
	fetched := &Document{
		ContentType: "application/json",
		ContextURL:  "https://example.com/ctx.jsonld",
		DocumentURL: "https://example.com/doc.json",
		Document:    map[string]interface{}{"name": "doc"},
	}
	fetcher := &stubFetcher{doc: fetched}

	l := newTestLoader(t, WithFetcher(fetcher))

	options := Options{"profile": "test"}

	doc, err := l.Load("https://example.com/doc.json", options)
	require.NoError(t, err)

	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, "https://example.com/doc.json", fetcher.calls[0].url)
	assert.Equal(t, options, fetcher.calls[0].options)

	// the fetcher's record is returned untouched
	assert.Same(t, fetched, doc)
}

func TestLoadResolverErrPassThrough(t *testing.T) {
	sentinel := errors.New("resolver down")
	resolver := &stubResolver{err: sentinel}

	l := newTestLoader(t, WithResolver(resolver))

	_, err := l.Load("did:example:123", Options{})
	assert.True(t, errors.Is(err, sentinel))
}

func TestLoadCacheIdempotence(t *testing.T) {
	fetcher := &stubFetcher{doc: &Document{
		ContentType: "application/json",
		DocumentURL: "https://example.com/doc.json",
		Document:    map[string]interface{}{"name": "doc"},
	}}
	store := newStubCache()

	l := newTestLoader(t, WithFetcher(fetcher), WithCache(store))

	first, err := l.Load("https://example.com/doc.json", Options{})
	require.NoError(t, err)

	second, err := l.Load("https://example.com/doc.json", Options{})
	require.NoError(t, err)

	assert.Len(t, fetcher.calls, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, "json_ld_document_resolver::https://example.com/doc.json", store.lastKey)
}

func TestLoadNoCacheNoMemoization(t *testing.T) {
	resolver := &stubResolver{doc: &w3cdid.Document{ID: "did:example:123"}}

	l := newTestLoader(t, WithResolver(resolver))

	for i := 0; i < 3; i++ {
		_, err := l.Load("did:example:123", Options{})
		require.NoError(t, err)
	}

	assert.Len(t, resolver.calls, 3)
}

func TestLoadCacheFailureIsFatal(t *testing.T) {
	store := newStubCache()
	store.getErr = errors.New("cache down")

	l := newTestLoader(t, WithFetcher(&stubFetcher{doc: &Document{}}), WithCache(store))

	_, err := l.Load("https://example.com/doc.json", Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache down")
}

func TestLoadSerialized(t *testing.T) {
	resolver := &stubResolver{
		doc:   &w3cdid.Document{ID: "did:example:123"},
		delay: 10 * time.Millisecond,
	}

	l := newTestLoader(t, WithResolver(resolver))

	const n = 8

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := l.Load("did:example:123", Options{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, resolver.calls, n)
	assert.Zero(t, atomic.LoadInt32(&resolver.overlap))
}

func TestLoadPinnedDocuments(t *testing.T) {
	pinned := &Document{
		ContentType: ContentTypeJSONLD,
		DocumentURL: "https://www.w3.org/2018/credentials/v1",
		Document:    map[string]interface{}{"@context": map[string]interface{}{}},
	}
	fetcher := &stubFetcher{}

	l := newTestLoader(t,
		WithFetcher(fetcher),
		WithPinnedDocuments(map[string]*Document{pinned.DocumentURL: pinned}),
	)

	doc, err := l.Load(pinned.DocumentURL, Options{})
	require.NoError(t, err)

	assert.Same(t, pinned, doc)
	assert.Empty(t, fetcher.calls)
}

func TestLoadTimeout(t *testing.T) {
	blocking := resolverFunc(func(ctx context.Context, _ w3cdid.URL) (*w3cdid.Document, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	l := newTestLoader(t, WithResolver(blocking), WithTimeout(20*time.Millisecond))

	_, err := l.Load("did:example:123", Options{})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

type resolverFunc func(ctx context.Context, did w3cdid.URL) (*w3cdid.Document, error)

func (f resolverFunc) Resolve(ctx context.Context, did w3cdid.URL) (*w3cdid.Document, error) {
	return f(ctx, did)
}

func TestLoadAfterClose(t *testing.T) {
	l, err := NewLoader(WithResolver(&stubResolver{}))
	require.NoError(t, err)

	require.NoError(t, l.Close())

	_, err = l.Load("did:example:123", Options{})
	assert.True(t, errors.Is(err, ErrLoaderClosed))
}
