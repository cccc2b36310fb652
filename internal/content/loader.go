package content

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const preloadConcurrency = 4

// Loader caches documents fetched from a Source. Concurrent loads of the
// same reference share a single fetch. Failed fetches are not cached.
type Loader struct {
	source Source
	logger *log.Logger

	sf singleflight.Group

	mu    sync.RWMutex
	cache map[string]string
}

// NewLoader wraps source. A nil logger discards output.
func NewLoader(source Source, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		source: source,
		logger: logger,
		cache:  make(map[string]string),
	}
}

// Load returns the text for ref, fetching it at most once per in-flight
// window.
func (l *Loader) Load(ctx context.Context, ref string) (string, error) {
	l.mu.RLock()
	text, ok := l.cache[ref]
	l.mu.RUnlock()
	if ok {
		return text, nil
	}

	v, err, shared := l.sf.Do(ref, func() (interface{}, error) {
		l.logger.Debug("fetching", "ref", ref)
		text, err := l.source.Fetch(ctx, ref)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[ref] = text
		l.mu.Unlock()
		return text, nil
	})
	if err != nil {
		l.logger.Warn("fetch failed", "ref", ref, "err", err)
		return "", err
	}
	if shared {
		l.logger.Debug("coalesced fetch", "ref", ref)
	}
	return v.(string), nil
}

// Preload warms the cache for refs. Individual failures are logged and do
// not stop the others.
func (l *Loader) Preload(ctx context.Context, refs []string) {
	var g errgroup.Group
	g.SetLimit(preloadConcurrency)
	for _, ref := range refs {
		g.Go(func() error {
			_, _ = l.Load(ctx, ref)
			return nil
		})
	}
	_ = g.Wait()
	l.logger.Debug("preload finished", "refs", len(refs))
}

// Stats describes the cache contents.
type Stats struct {
	Size int
	Keys []string
}

// Stats returns the cached references in sorted order.
func (l *Loader) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	keys := make([]string, 0, len(l.cache))
	for k := range l.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Stats{Size: len(keys), Keys: keys}
}
