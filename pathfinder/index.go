package pathfinder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/navgraph"
)

type bucketKey [3]int64

type indexEntry struct {
	id    string
	order int
	pos   mgl64.Vec3
}

// spatialIndex is a uniform hash over node positions with buckets as wide as
// the tolerance, so every candidate of a query lies in the 27 buckets around
// the query's own bucket. It is immutable after construction.
type spatialIndex struct {
	tol     float64
	buckets map[bucketKey][]indexEntry
	size    int
}

func newSpatialIndex(g *navgraph.Graph, tol float64) *spatialIndex {
	idx := &spatialIndex{
		tol:     tol,
		buckets: make(map[bucketKey][]indexEntry),
	}
	for i, n := range g.Nodes() {
		k, ok := idx.key(n.Position)
		if !ok {
			continue
		}
		idx.buckets[k] = append(idx.buckets[k], indexEntry{id: n.ID, order: i, pos: n.Position})
		idx.size++
	}
	return idx
}

func (idx *spatialIndex) key(p mgl64.Vec3) (bucketKey, bool) {
	var k bucketKey
	for i := 0; i < 3; i++ {
		c := math.Floor(p[i] / idx.tol)
		if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) > math.MaxInt64/2 {
			return k, false
		}
		k[i] = int64(c)
	}
	return k, true
}

// Nearest returns the node closest to p with distance strictly below the
// tolerance. Ties go to the node that comes first in graph order.
func (idx *spatialIndex) Nearest(p mgl64.Vec3) (string, bool) {
	if idx == nil {
		return "", false
	}
	center, ok := idx.key(p)
	if !ok {
		return "", false
	}

	var (
		best     *indexEntry
		bestDist float64
	)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				bucket := idx.buckets[bucketKey{center[0] + dx, center[1] + dy, center[2] + dz}]
				for i := range bucket {
					e := &bucket[i]
					d := e.pos.Sub(p).Len()
					if d >= idx.tol {
						continue
					}
					if best == nil || d < bestDist || (d == bestDist && e.order < best.order) {
						best, bestDist = e, d
					}
				}
			}
		}
	}
	if best == nil {
		return "", false
	}
	return best.id, true
}

// Len returns the number of indexed nodes.
func (idx *spatialIndex) Len() int {
	if idx == nil {
		return 0
	}
	return idx.size
}
