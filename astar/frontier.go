package astar

import "slices"

// frontier is the open list: node IDs kept in descending f order from head to
// tail, so the lowest f is always at the tail and pops in O(1).
//
// Entries are keyed by the node's current f in the shared score table, not by
// the f it was queued under. Rediscovering a queued node appends another
// entry and leaves the old one in place; the old entry keeps its position
// even though its score moved, and may pop first. A node can therefore be
// popped, and expanded, more than once.
//
// Push walks from the tail towards the head and inserts the node right behind
// the first entry whose f is >= its own. Equal f values therefore pop
// newest-first.
type frontier struct {
	items []string
	f     map[string]float64
}

func newFrontier(fScore map[string]float64, capacity int) *frontier {
	return &frontier{
		items: make([]string, 0, capacity),
		f:     fScore,
	}
}

// Len returns the number of queued entries, duplicates included.
func (q *frontier) Len() int { return len(q.items) }

// Push queues id under its current f-score.
func (q *frontier) Push(id string) {
	f := q.f[id]
	i := len(q.items) - 1
	for ; i >= 0; i-- {
		if q.f[q.items[i]] >= f {
			break
		}
	}
	q.items = slices.Insert(q.items, i+1, id)
}

// Pop removes and returns the tail entry.
// Must not be called on an empty frontier.
func (q *frontier) Pop() string {
	last := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]

	return last
}

// Any reports whether pred holds for some queued entry.
func (q *frontier) Any(pred func(id string) bool) bool {
	return slices.ContainsFunc(q.items, pred)
}

// IDs returns the queued entries from head to tail (next to pop).
func (q *frontier) IDs() []string {
	return slices.Clone(q.items)
}
