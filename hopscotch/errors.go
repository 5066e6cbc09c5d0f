package hopscotch

import "errors"

var (
	// ErrInvalidMaxLevel is the value New panics with when the configured
	// MaxLevel is not positive or exceeds maxLevelCap.
	ErrInvalidMaxLevel error = errors.New("hopscotch: max level must be >= 1")
	// ErrInvalidP is the value New panics with when the configured
	// level-generator probability p is outside (0, 1).
	ErrInvalidP error = errors.New("hopscotch: p must be in (0, 1)")
	// ErrAllocatorExhausted is reserved for a capacity-bounded Allocator:
	// its newNode should panic with this value when it cannot produce a
	// node, the same construction-time-contract-violation convention New
	// uses above. Neither GCAllocator nor PooledAllocator ever declines an
	// allocation, so neither panics with it.
	ErrAllocatorExhausted error = errors.New("hopscotch: allocator could not provide a node")
)
