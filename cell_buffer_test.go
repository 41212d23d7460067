package stlmesh

import (
	"errors"
	"testing"
)

func TestIsTriangle(t *testing.T) {
	testCases := []struct {
		ct   CellType
		n    int
		want bool
	}{
		{TriangleCell, 3, true},
		{PolygonCell, 3, true},
		{PolygonCell, 4, false},
		{QuadrilateralCell, 4, false},
		{LineCell, 2, false},
		{VertexCell, 1, false},
		{QuadraticTriangleCell, 6, false},
		{TetrahedronCell, 4, false},
	}

	for _, tc := range testCases {
		t.Run(tc.ct.String(), func(t *testing.T) {
			if got := IsTriangle(tc.ct, tc.n); got != tc.want {
				t.Errorf("IsTriangle(%v, %d) = %v, want %v", tc.ct, tc.n, got, tc.want)
			}
		})
	}
}

func TestCellBufferWalk(t *testing.T) {
	var cells CellBuffer
	cells = cells.AppendCell(TriangleCell, 0, 1, 2)
	cells = cells.AppendCell(LineCell, 2, 3)
	cells = cells.AppendCell(PolygonCell, 0, 1, 2, 3)

	want := []struct {
		ct  CellType
		ids []uint64
	}{
		{TriangleCell, []uint64{0, 1, 2}},
		{LineCell, []uint64{2, 3}},
		{PolygonCell, []uint64{0, 1, 2, 3}},
	}

	i := 0
	err := cells.Walk(func(ct CellType, ids []uint64) error {
		if ct != want[i].ct {
			t.Errorf("cell %d type = %v, want %v", i, ct, want[i].ct)
		}
		if len(ids) != len(want[i].ids) {
			t.Fatalf("cell %d has %d ids, want %d", i, len(ids), len(want[i].ids))
		}
		for k := range ids {
			if ids[k] != want[i].ids[k] {
				t.Errorf("cell %d id %d = %d, want %d", i, k, ids[k], want[i].ids[k])
			}
		}
		i++
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if i != 3 || cells.Len() != 3 {
		t.Errorf("walked %d cells, Len() = %d, want 3", i, cells.Len())
	}
}

func TestCellBufferWalkMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		cells CellBuffer
	}{
		{"missing vertex count", CellBuffer{uint64(TriangleCell)}},
		{"missing vertices", CellBuffer{uint64(TriangleCell), 3, 0, 1}},
		{"huge vertex count", CellBuffer{uint64(PolygonCell), 1 << 63, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cells.Walk(func(CellType, []uint64) error { return nil })
			if !errors.Is(err, ErrInvalidCell) {
				t.Errorf("Walk() error = %v, want ErrInvalidCell", err)
			}
			if tc.cells.Len() != -1 {
				t.Errorf("Len() = %d, want -1", tc.cells.Len())
			}
		})
	}
}

func TestCellBufferWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	cells := CellBuffer{}.AppendCell(VertexCell, 0).AppendCell(VertexCell, 1)
	calls := 0
	err := cells.Walk(func(CellType, []uint64) error {
		calls++
		return stop
	})
	if err != stop || calls != 1 {
		t.Errorf("Walk() = %v after %d calls, want stop after 1", err, calls)
	}
}
