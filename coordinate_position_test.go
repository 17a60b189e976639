package relate

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestCoordinatePosition(t *testing.T) {
	var tts = []struct {
		coord XY
		wkt   string
		pos   CoordPos
	}{
		{XY{1, 1}, "POINT(1 1)", Inside},
		{XY{1, 2}, "POINT(1 1)", Outside},
		{XY{1, 0}, "LINESTRING(0 0,2 0)", Inside},
		{XY{0, 0}, "LINESTRING(0 0,2 0)", OnBoundary},
		{XY{1, 1}, "LINESTRING(0 0,2 0)", Outside},
		{XY{2, 0}, "LINESTRING(0 0,2 0,2 2,0 2,0 0)", Inside},
		{XY{0, 0}, "LINESTRING(0 0,2 0,2 2,0 2,0 0)", Inside},
		{XY{2, 2}, "POLYGON((0 0,0 4,4 4,4 0,0 0))", Inside},
		{XY{0, 2}, "POLYGON((0 0,0 4,4 4,4 0,0 0))", OnBoundary},
		{XY{4, 4}, "POLYGON((0 0,0 4,4 4,4 0,0 0))", OnBoundary},
		{XY{5, 2}, "POLYGON((0 0,0 4,4 4,4 0,0 0))", Outside},
		// coordinate level with the top edge but beside the polygon
		{XY{-1, 4}, "POLYGON((0 0,0 4,4 4,4 0,0 0))", Outside},
		// polygon with a hole
		{XY{2, 2}, "POLYGON((0 0,0 6,6 6,6 0,0 0),(1 1,1 3,3 3,3 1,1 1))", Inside},
		{XY{1, 2}, "POLYGON((0 0,0 6,6 6,6 0,0 0),(1 1,1 3,3 3,3 1,1 1))", OnBoundary},
		{XY{0.5, 2}, "POLYGON((0 0,0 6,6 6,6 0,0 0),(1 1,1 3,3 3,3 1,1 1))", Inside},
		// the shared endpoint of two line elements cancels out of the boundary
		{XY{5, 0}, "MULTILINESTRING((0 0,5 0),(5 0,10 0))", Inside},
		{XY{0, 0}, "MULTILINESTRING((0 0,5 0),(5 0,10 0))", OnBoundary},
		{XY{1, 1}, "MULTIPOINT(1 1,3 3)", Inside},
		{XY{2, 2}, "MULTIPOINT(1 1,3 3)", Outside},
		{XY{1, 2}, "GEOMETRYCOLLECTION(POINT(1 1),LINESTRING(0 0,0 4))", Outside},
		{XY{0, 0}, "GEOMETRYCOLLECTION(POINT(1 1),LINESTRING(0 0,0 4))", OnBoundary},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, CoordinatePosition(tt.coord, parseGeometry(tt.wkt)), tt.pos)
		})
	}
}

func TestCoordPosRelativeToRing(t *testing.T) {
	// winding order must not matter
	cw := []XY{{0, 0}, {0, 4}, {4, 4}, {4, 0}, {0, 0}}
	ccw := []XY{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	for _, ring := range [][]XY{cw, ccw} {
		test.T(t, coordPosRelativeToRing(XY{2, 2}, ring), Inside)
		test.T(t, coordPosRelativeToRing(XY{0, 2}, ring), OnBoundary)
		test.T(t, coordPosRelativeToRing(XY{0, 0}, ring), OnBoundary)
		test.T(t, coordPosRelativeToRing(XY{-1, 2}, ring), Outside)
		test.T(t, coordPosRelativeToRing(XY{2, 5}, ring), Outside)
	}
}

func TestPointOnSegment(t *testing.T) {
	test.That(t, pointOnSegment(XY{1, 1}, XY{0, 0}, XY{2, 2}), "midpoint")
	test.That(t, pointOnSegment(XY{0, 0}, XY{0, 0}, XY{2, 2}), "start")
	test.That(t, !pointOnSegment(XY{3, 3}, XY{0, 0}, XY{2, 2}), "past the end")
	test.That(t, !pointOnSegment(XY{1, 0}, XY{0, 0}, XY{2, 2}), "off the segment")
}
