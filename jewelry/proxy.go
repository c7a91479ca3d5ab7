package jewelry

import (
	"fmt"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const subjectKey = "subject"

// Loader produces the real subject behind a Proxy.
type Loader func() (Item, error)

// ProxyOption configures a Proxy.
type ProxyOption func(*Proxy)

// WithLogger sets the access logger. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) ProxyOption {
	return func(p *Proxy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTTL bounds how long a loaded subject is reused before the loader runs again.
// Zero or negative means the subject never expires.
func WithTTL(ttl time.Duration) ProxyOption {
	return func(p *Proxy) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

// Proxy stands in for an Item.
//
// The subject is built lazily on first use and kept in a cache, and every Name/Price
// call is counted and logged. The cache runs without a janitor goroutine: expired
// subjects are simply reloaded on the next access.
type Proxy struct {
	name   string
	load   Loader
	store  *gocache.Cache
	ttl    time.Duration
	logger *zap.Logger

	accesses atomic.Uint64
	loads    atomic.Uint64
}

// NewProxy returns a proxy whose subject is NewItem(name, price).
func NewProxy(name string, price float64, opts ...ProxyOption) *Proxy {
	return NewLazyProxy(name, func() (Item, error) { return NewItem(name, price), nil }, opts...)
}

// NewLazyProxy returns a proxy whose subject comes from load.
func NewLazyProxy(name string, load Loader, opts ...ProxyOption) *Proxy {
	p := &Proxy{
		name:   name,
		load:   load,
		store:  gocache.New(gocache.NoExpiration, 0),
		ttl:    gocache.NoExpiration,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Name implements Pricer. It does not load the subject.
func (p *Proxy) Name() string {
	p.record("Name")
	return p.name
}

// Price implements Pricer. A failed load is logged and reported as 0.
func (p *Proxy) Price() float64 {
	p.record("Price")
	item, err := p.Resolve()
	if err != nil {
		p.logger.Error("proxy subject unavailable", zap.String("proxy", p.name), zap.Error(err))
		return 0
	}
	return item.Price()
}

// Resolve returns the subject, loading it if it is not cached.
func (p *Proxy) Resolve() (Item, error) {
	if v, ok := p.store.Get(subjectKey); ok {
		if item, ok := v.(Item); ok {
			return item, nil
		}
	}
	if p.load == nil {
		return Item{}, fmt.Errorf("jewelry: proxy %q: no loader", p.name)
	}

	item, err := p.load()
	if err != nil {
		return Item{}, fmt.Errorf("jewelry: proxy %q: load subject: %w", p.name, err)
	}
	p.store.Set(subjectKey, item, p.ttl)
	n := p.loads.Add(1)
	p.logger.Debug("proxy subject loaded", zap.String("proxy", p.name), zap.Uint64("loads", n))
	return item, nil
}

// Accesses reports how many Name/Price calls the proxy has served.
func (p *Proxy) Accesses() uint64 { return p.accesses.Load() }

// Loads reports how many times the loader ran successfully.
func (p *Proxy) Loads() uint64 { return p.loads.Load() }

// Invalidate drops the cached subject so the next access reloads it.
func (p *Proxy) Invalidate() { p.store.Delete(subjectKey) }

func (p *Proxy) record(method string) {
	n := p.accesses.Add(1)
	p.logger.Debug("proxy access",
		zap.String("proxy", p.name),
		zap.String("method", method),
		zap.Uint64("accesses", n))
}
