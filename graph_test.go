package relate

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
	"github.com/twpayne/go-geom"
)

func discardWarn(string, ...interface{}) {}

func TestGraphBoundaryNodes(t *testing.T) {
	var tts = []struct {
		wkt      string
		boundary []XY
	}{
		{"LINESTRING(0 0,5 0)", []XY{{0, 0}, {5, 0}}},
		// a closed line has no boundary
		{"LINESTRING(0 0,2 0,2 2,0 2,0 0)", nil},
		// the shared endpoint occurs twice and cancels out
		{"MULTILINESTRING((0 0,5 0),(5 0,10 0))", []XY{{0, 0}, {10, 0}}},
		// three lines meeting in one point leave it on the boundary
		{"MULTILINESTRING((0 0,5 0),(5 0,10 0),(5 0,5 5))", []XY{{0, 0}, {5, 0}, {5, 5}, {10, 0}}},
		{"POINT(1 1)", nil},
		// ring start points of an area are boundary nodes
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", []XY{{0, 0}}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			g := newGeometryGraph(0, parseGeometry(tt.wkt), discardWarn)
			test.T(t, g.boundaryNodes(), tt.boundary)
		})
	}
}

func TestGraphEdgeLabels(t *testing.T) {
	// a clockwise shell keeps the interior on its right
	g := newGeometryGraph(0, parseGeometry("POLYGON((0 0,0 2,2 2,2 0,0 0))"), discardWarn)
	test.T(t, len(g.edges), 1)
	e := g.edges[0]
	test.T(t, e.label.onPosition(0), OnBoundary)
	test.T(t, e.label.position(0, posLeft), Outside)
	test.T(t, e.label.position(0, posRight), Inside)

	// the counterclockwise ring swaps the sides
	g = newGeometryGraph(0, parseGeometry("POLYGON((0 0,2 0,2 2,0 2,0 0))"), discardWarn)
	e = g.edges[0]
	test.T(t, e.label.position(0, posLeft), Inside)
	test.T(t, e.label.position(0, posRight), Outside)

	// line edges carry an interior on position and no sides
	g = newGeometryGraph(0, parseGeometry("LINESTRING(0 0,5 0)"), discardWarn)
	e = g.edges[0]
	test.T(t, e.label.onPosition(0), Inside)
	test.T(t, e.label.isGeomArea(0), false)
}

func TestGraphRepeatedCoords(t *testing.T) {
	g := newGeometryGraph(0, parseGeometry("LINESTRING(0 0,0 0,5 0,5 0,9 0)"), discardWarn)
	test.T(t, len(g.edges), 1)
	test.T(t, g.edges[0].coords, []XY{{0, 0}, {5, 0}, {9, 0}})
}

func TestGraphDegenerateInput(t *testing.T) {
	var warnings int
	warn := func(string, ...interface{}) { warnings++ }

	// single point line string becomes a point
	g := newGeometryGraph(0, parseGeometry("LINESTRING(1 1,1 1)"), warn)
	test.T(t, len(g.edges), 0)
	test.T(t, warnings, 1)
	entry, ok := g.nodes.find(XY{1, 1})
	test.That(t, ok, "node for collapsed line string")
	test.T(t, entry.node.label.onPosition(0), Inside)

	// degenerate ring is dropped
	warnings = 0
	poly := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 1, 0, 0}, []int{6})
	g = newGeometryGraph(0, poly, warn)
	test.T(t, len(g.edges), 0)
	test.T(t, warnings, 1)
}

func TestGraphSelfIntersection(t *testing.T) {
	// a bowtie line crossing itself gets a node at the crossing
	g := newGeometryGraph(0, parseGeometry("LINESTRING(0 0,4 4,4 0,0 4)"), discardWarn)
	g.computeSelfNodes()

	entry, ok := g.nodes.find(XY{2, 2})
	test.That(t, ok, "node at the self-intersection")
	test.T(t, entry.node.label.onPosition(0), Inside)
}
