package hopscotch

// Element is an immutable byte-string value stored in a List. Callers must
// not mutate an Element slice after passing it to Add; the list may retain
// it for the lifetime of the node.
type Element []byte

// Comparator produces a total order over Elements: negative if a < b, zero
// if a == b, positive if a > b. A Comparator need not handle the list's
// sentinel values itself — compareNodeToValue short-circuits on sentinel
// identity before ever calling a configured Comparator, so implementers
// only need to order genuine user elements against each other.
type Comparator func(a, b Element) int

// DefaultComparator orders Elements lexicographically up to the shorter of
// the two lengths, breaking ties so that the shorter Element sorts first.
func DefaultComparator(a, b Element) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// compareNodeToValue orders node n's value against v, treating the list's
// head and tail sentinels as strictly minimum and strictly maximum
// regardless of the bytes they happen to carry. Sentinels are recognized by
// pointer identity, not by byte content, so a user Element can never
// accidentally collide with a sentinel (see the spec's "Sentinel
// representation" design note).
func (l *List) compareNodeToValue(n *Node, v Element) int {
	switch n {
	case l.head:
		return -1
	case l.tail:
		return 1
	default:
		return l.cmp(n.value, v)
	}
}

