package hopscotch

// Contains reports whether v is present in the list. It is wait-free: it
// takes no locks, performs no allocation, and never blocks, regardless of
// concurrent Add or Remove activity on the same list.
func (l *List) Contains(v Element) bool {
	if p, ok := l.pooled(); ok {
		// Contains dereferences Nodes found by find() with no lock held;
		// under PooledAllocator those Nodes must not be handed back out by
		// newNode until this call has returned, or the reclaim scheme's
		// safety guarantee (no reuse while any goroutine may still be
		// reading) no longer holds.
		p.enter()
		defer p.exit()
	}

	r := l.find(v)
	if r.levelFound == -1 {
		return false
	}
	found := r.succ[r.levelFound]
	return found.fullyLinked.Load() && !found.marked.Load()
}
