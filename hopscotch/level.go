package hopscotch

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// seedCounter decorrelates seeds drawn in quick succession by different
// goroutines so two goroutines racing to populate the pool don't land on
// the same wall-clock nanosecond.
var seedCounter atomic.Uint64

// LevelGenerator draws the top level for a newly inserted node. Level must
// return a value in [0, maxLevel-1] with P(Level >= k) approximately p^k;
// no stronger statistical guarantee is required. Implementations must be
// safe for concurrent use.
type LevelGenerator interface {
	Level(maxLevel int) int
}

// geometricLevelGenerator is the default LevelGenerator: it samples
// uniformly from [0, 1) and climbs one level at a time while the sample is
// below p, clamped to maxLevel-1. Each goroutine draws from its own
// *rand.Rand, pulled from a sync.Pool, so concurrent inserts never
// contend on a single PRNG's internal lock the way a shared math/rand
// global source would.
type geometricLevelGenerator struct {
	p    float64
	pool sync.Pool
}

func newGeometricLevelGenerator(p float64) *geometricLevelGenerator {
	g := &geometricLevelGenerator{p: p}
	g.pool.New = func() any {
		salt := seedCounter.Add(1)
		return rand.New(rand.NewSource(time.Now().UnixNano() + int64(salt)))
	}
	return g
}

func (g *geometricLevelGenerator) Level(maxLevel int) int {
	r := g.pool.Get().(*rand.Rand)
	defer g.pool.Put(r)

	level := 0
	for r.Float64() < g.p && level < maxLevel {
		level++
	}
	if level > maxLevel-1 {
		level = maxLevel - 1
	}
	return level
}
