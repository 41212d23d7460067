package stlmesh

import "github.com/google/btree"

type pointEntry struct {
	point Point
	id    PointID
}

// PointTable merges exactly equal points and hands out stable ids.
//
// Lookups go through a B-tree ordered by ComparePoints. The ids themselves
// follow insertion order, which is what points holds.
type PointTable struct {
	index  *btree.BTreeG[pointEntry]
	points []Point
}

func NewPointTable() *PointTable {
	return &PointTable{
		index: btree.NewG(16, func(a, b pointEntry) bool {
			return ComparePoints(a.point, b.point) < 0
		}),
		points: make([]Point, 0),
	}
}

// Insert returns the id of p, adding it to the table if it has not been seen
// before.
func (t *PointTable) Insert(p Point) PointID {
	if e, found := t.index.Get(pointEntry{point: p}); found {
		return e.id
	}

	id := PointID(len(t.points))
	t.points = append(t.points, p)
	t.index.ReplaceOrInsert(pointEntry{point: p, id: id})

	return id
}

func (t *PointTable) Lookup(p Point) (PointID, bool) {
	e, found := t.index.Get(pointEntry{point: p})
	return e.id, found
}

// Point returns the coordinates registered under id. It panics if id was
// never handed out by this table.
func (t *PointTable) Point(id PointID) Point {
	return t.points[id]
}

func (t *PointTable) Len() int {
	return len(t.points)
}

// Points returns a copy of the table's points indexed by PointID.
func (t *PointTable) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}
