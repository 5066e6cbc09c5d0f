package hopscotch

import (
	"runtime"
	"sync/atomic"
)

const (
	// DefaultMaxLevel is used when no WithMaxLevel option is supplied.
	DefaultMaxLevel = 16
	// DefaultP is the geometric-distribution parameter used when no
	// WithP option is supplied.
	DefaultP = 0.5

	// busyWaitSpinBudget bounds how many times Add spins on a duplicate
	// node's fullyLinked flag before yielding the goroutine, per the
	// spec's note that a naked spin is acceptable but not ideal.
	busyWaitSpinBudget = 64
)

// Config holds the resolved configuration for a List, built via Option
// functions passed to New. There is no exported mutable field; construct
// one only through New(opts...).
type Config struct {
	comparator Comparator
	maxLevel   int
	p          float64
	levelGen   LevelGenerator
	allocator  Allocator
	diag       Diagnostics
}

// Option configures a List at construction time.
type Option func(*Config)

// WithComparator overrides the element comparator. The default is
// DefaultComparator.
func WithComparator(cmp Comparator) Option {
	return func(c *Config) { c.comparator = cmp }
}

// WithMaxLevel overrides the ceiling on a node's level. Must be >= 1 and
// <= maxLevelCap; New panics with ErrInvalidMaxLevel otherwise. The default is
// DefaultMaxLevel.
func WithMaxLevel(maxLevel int) Option {
	return func(c *Config) { c.maxLevel = maxLevel }
}

// WithP overrides the geometric level-generator parameter. Must be in
// (0, 1); New panics with ErrInvalidP otherwise. The default is DefaultP.
func WithP(p float64) Option {
	return func(c *Config) { c.p = p }
}

// WithLevelGenerator overrides the level generator entirely, ignoring
// WithP. Useful for deterministic tests.
func WithLevelGenerator(g LevelGenerator) Option {
	return func(c *Config) { c.levelGen = g }
}

// WithAllocator overrides node allocation/reclamation. The default is
// GCAllocator{}.
func WithAllocator(a Allocator) Option {
	return func(c *Config) { c.allocator = a }
}

// WithDiagnostics installs a hook for observing validation retries and
// busy-wait spins. The default is a no-op.
func WithDiagnostics(d Diagnostics) Option {
	return func(c *Config) { c.diag = d }
}

// List is a concurrent, ordered set of Elements. The zero value is not
// usable; construct one with New. A *List is safe for concurrent use by
// multiple goroutines calling Add, Contains, and Remove without external
// synchronization.
type List struct {
	head, tail *Node

	cmp       Comparator
	maxLevel  int
	p         float64
	levelGen  LevelGenerator
	allocator Allocator
	diag      Diagnostics
}

// New constructs an empty List. It panics if an Option supplies an invalid
// MaxLevel or p — these are programmer errors fixed at the call site, not
// runtime conditions a caller should branch on.
func New(opts ...Option) *List {
	cfg := Config{
		comparator: DefaultComparator,
		maxLevel:   DefaultMaxLevel,
		p:          DefaultP,
		allocator:  GCAllocator{},
		diag:       defaultDiagnostics,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxLevel < 1 || cfg.maxLevel > maxLevelCap {
		panic(ErrInvalidMaxLevel)
	}
	if cfg.p <= 0 || cfg.p >= 1 {
		panic(ErrInvalidP)
	}
	if cfg.levelGen == nil {
		cfg.levelGen = newGeometricLevelGenerator(cfg.p)
	}

	l := &List{
		cmp:       cfg.comparator,
		maxLevel:  cfg.maxLevel,
		p:         cfg.p,
		levelGen:  cfg.levelGen,
		allocator: cfg.allocator,
		diag:      cfg.diag,
	}

	l.head = &Node{level: cfg.maxLevel - 1, forward: make([]atomic.Pointer[Node], cfg.maxLevel)}
	l.tail = &Node{level: cfg.maxLevel - 1, forward: make([]atomic.Pointer[Node], cfg.maxLevel)}
	l.head.fullyLinked.Store(true)
	l.tail.fullyLinked.Store(true)
	for i := 0; i < cfg.maxLevel; i++ {
		l.head.forward[i].Store(l.tail)
	}

	return l
}

// Close releases any pooled resources held by a PooledAllocator-backed
// List. Under the default GCAllocator it is a no-op, matching the original
// C library's hopscotch_list_free under its conservative collector.
func (l *List) Close() {
	if p, ok := l.allocator.(*PooledAllocator); ok {
		p.retireMu.Lock()
		p.retired = nil
		p.retireMu.Unlock()
	}
}

// pooled reports the PooledAllocator backing this list, if any, so Add and
// Remove can bracket their critical sections with grace-period tracking.
func (l *List) pooled() (*PooledAllocator, bool) {
	p, ok := l.allocator.(*PooledAllocator)
	return p, ok
}

// lockOrdered acquires, in ascending level order, the lock of each distinct
// predecessor among pred[0..topLevel], skipping a predecessor that is
// identical to the immediately preceding distinct one already locked (the
// skip-list finder guarantees such repeats are always contiguous). It
// returns the distinct predecessors locked, in acquisition order, so the
// caller can unlock them later in any order.
func lockOrdered(pred *[maxLevelCap]*Node, topLevel int) []*Node {
	locked := make([]*Node, 0, topLevel+1)
	var prev *Node
	for level := 0; level <= topLevel; level++ {
		p := pred[level]
		if p != prev {
			p.mu.Lock()
			locked = append(locked, p)
			prev = p
		}
	}
	return locked
}

func unlockAll(nodes []*Node) {
	for _, n := range nodes {
		n.mu.Unlock()
	}
}

func spinUntilFullyLinked(n *Node, op string, diag Diagnostics) {
	for i := 0; !n.fullyLinked.Load(); i++ {
		if i < busyWaitSpinBudget {
			continue
		}
		diag.BusyWaitSpin(op)
		runtime.Gosched()
	}
}
