package hopscotch

// Add inserts v into the list if no unmarked, fully-linked node with an
// equal value is already present. It returns true if v was inserted, false
// if an equivalent element was already present (in which case the list is
// left unmodified).
func (l *List) Add(v Element) bool {
	if p, ok := l.pooled(); ok {
		p.enter()
		defer p.exit()
	}

	topLevel := l.levelGen.Level(l.maxLevel)

	for attempt := 0; ; attempt++ {
		r := l.find(v)

		if r.levelFound != -1 {
			found := r.succ[r.levelFound]
			if !found.marked.Load() {
				// The duplicate is either already fully linked, or is in
				// the process of being linked by a concurrent Add; wait
				// for that commit to finish rather than racing it.
				spinUntilFullyLinked(found, "Add", l.diag)
				return false
			}
			// found is marked for deletion by a concurrent Remove: retry.
			// No lock is held at this point, so there is nothing to
			// release before looping — this property must be preserved
			// exactly (see the package's design notes on the original
			// C library's matching restart case).
			l.diag.ValidationRetry("Add", attempt)
			continue
		}

		locked := lockOrdered(&r.pred, topLevel)

		valid := true
		for level := 0; valid && level <= topLevel; level++ {
			pred, succ := r.pred[level], r.succ[level]
			valid = !pred.marked.Load() && !succ.marked.Load() && pred.next(level) == succ
		}
		if !valid {
			unlockAll(locked)
			l.diag.ValidationRetry("Add", attempt)
			continue
		}

		newNode := l.allocator.newNode(v, topLevel)
		for level := 0; level <= topLevel; level++ {
			newNode.setNext(level, r.succ[level])
		}
		for level := 0; level <= topLevel; level++ {
			r.pred[level].setNext(level, newNode)
		}
		newNode.fullyLinked.Store(true)

		unlockAll(locked)
		return true
	}
}
