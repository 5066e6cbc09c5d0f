package hopscotch

// Remove logically and then physically deletes v from the list if an
// eligible node holding it is present, and reports whether this call was
// the one that removed it. A node is eligible iff it is fully linked, not
// already marked, and was found at a level equal to its own top level
// (the eligibility check prevents operating on an adder's node before that
// node has finished linking, and ensures the node's declared top level
// matches the level the Finder actually matched it at).
func (l *List) Remove(v Element) bool {
	if p, ok := l.pooled(); ok {
		p.enter()
		defer p.exit()
	}

	var nodeToDel *Node
	marked := false
	topLevel := -1

	for attempt := 0; ; attempt++ {
		r := l.find(v)

		if !marked {
			if r.levelFound == -1 {
				return false
			}
			candidate := r.succ[r.levelFound]
			if !canDelete(candidate, r.levelFound) {
				return false
			}

			nodeToDel = candidate
			topLevel = nodeToDel.level
			nodeToDel.mu.Lock()
			if nodeToDel.marked.Load() {
				nodeToDel.mu.Unlock()
				return false
			}
			nodeToDel.marked.Store(true)
			marked = true
		}

		locked := lockOrdered(&r.pred, topLevel)

		valid := true
		for level := 0; valid && level <= topLevel; level++ {
			pred := r.pred[level]
			valid = !pred.marked.Load() && pred.next(level) == nodeToDel
		}
		if !valid {
			unlockAll(locked)
			l.diag.ValidationRetry("Remove", attempt)
			continue
		}

		for level := topLevel; level >= 0; level-- {
			r.pred[level].setNext(level, nodeToDel.next(level))
		}

		nodeToDel.mu.Unlock()
		unlockAll(locked)

		l.allocator.retire(nodeToDel)
		return true
	}
}

// canDelete reports whether node is a valid deletion candidate: fully
// linked, not already marked, and found at exactly its own top level.
func canDelete(node *Node, levelFound int) bool {
	return node.fullyLinked.Load() && node.level == levelFound && !node.marked.Load()
}
