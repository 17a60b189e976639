package relate

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// geometryGraph is the topology graph of one input geometry: its edges, and
// nodes at the endpoints and self-intersections of those edges. argIndex tells
// which side of a label the geometry writes to.
type geometryGraph struct {
	argIndex int
	geometry geom.T
	nodes    nodeMap[struct{}]
	edges    []*edge
	warn     WarnFunc

	// the mod-2 boundary rule is disabled for MultiPolygons, whose ring
	// boundaries never cancel each other out
	useBoundaryDeterminationRule bool

	// lazily built spatial index over the graph's segments, reused between
	// the self and cross intersection passes
	index *indexedEdgeSetIntersector
}

func newGeometryGraph(argIndex int, g geom.T, warn WarnFunc) *geometryGraph {
	graph := &geometryGraph{
		argIndex:                     argIndex,
		geometry:                     g,
		nodes:                        newNodeMap(func() struct{} { return struct{}{} }),
		warn:                         warn,
		useBoundaryDeterminationRule: true,
	}
	graph.add(g)
	return graph
}

func (g *geometryGraph) add(geometry geom.T) {
	switch geometry := geometry.(type) {
	case *geom.Point:
		if len(geometry.FlatCoords()) > 0 {
			g.addPoint(XY{geometry.X(), geometry.Y()})
		}
	case *geom.MultiPoint:
		for i := 0; i < geometry.NumPoints(); i++ {
			g.add(geometry.Point(i))
		}
	case *geom.LineString:
		g.addLineString(flatToXYs(geometry.FlatCoords(), geometry.Stride()))
	case *geom.LinearRing:
		g.addPolygonRing(flatToXYs(geometry.FlatCoords(), geometry.Stride()), Outside, Inside)
	case *geom.MultiLineString:
		for i := 0; i < geometry.NumLineStrings(); i++ {
			g.add(geometry.LineString(i))
		}
	case *geom.Polygon:
		g.addPolygon(geometry)
	case *geom.MultiPolygon:
		g.useBoundaryDeterminationRule = false
		for i := 0; i < geometry.NumPolygons(); i++ {
			g.add(geometry.Polygon(i))
		}
	case *geom.GeometryCollection:
		for _, sub := range geometry.Geoms() {
			g.add(sub)
		}
	}
}

func (g *geometryGraph) addPoint(coord XY) {
	g.insertPoint(coord, Inside)
}

func (g *geometryGraph) addLineString(pts []XY) {
	coords := dedupCoords(pts)
	if len(coords) == 0 {
		return
	}
	if len(coords) == 1 {
		g.warn("treating degenerate line string %v as point, topology may be invalid", coords[0])
		g.addPoint(coords[0])
		return
	}
	e := newEdge(coords, newLabelFor(g.argIndex, lineOrPointPosition(Inside)))
	g.edges = append(g.edges, e)

	// both endpoints join the boundary under the mod-2 rule, so the shared
	// endpoint of a closed line string cancels back to the interior
	g.insertBoundaryPoint(coords[0])
	g.insertBoundaryPoint(coords[len(coords)-1])
}

func (g *geometryGraph) addPolygon(polygon *geom.Polygon) {
	if polygon.NumLinearRings() == 0 {
		return
	}
	shell := polygon.LinearRing(0)
	g.addPolygonRing(flatToXYs(shell.FlatCoords(), shell.Stride()), Outside, Inside)
	for i := 1; i < polygon.NumLinearRings(); i++ {
		// holes are labelled opposite to the shell
		hole := polygon.LinearRing(i)
		g.addPolygonRing(flatToXYs(hole.FlatCoords(), hole.Stride()), Inside, Outside)
	}
}

// addPolygonRing adds one ring of an area geometry. cwLeft and cwRight are the
// positions beside the ring when its winding is clockwise; they swap for a
// counterclockwise ring.
func (g *geometryGraph) addPolygonRing(pts []XY, cwLeft, cwRight CoordPos) {
	coords := dedupCoords(pts)
	if len(coords) == 0 {
		return
	}
	if len(coords) < 4 {
		g.warn("ignoring degenerate ring at %v with fewer than 4 distinct points", coords[0])
		return
	}
	left, right := cwLeft, cwRight
	if xy.IsRingCounterClockwise(geom.XY, xysToFlat(coords)) {
		left, right = right, left
	}
	e := newEdge(coords, newLabelFor(g.argIndex, areaPosition(OnBoundary, left, right)))
	g.edges = append(g.edges, e)
	g.insertPoint(coords[0], OnBoundary)
}

func (g *geometryGraph) insertPoint(coord XY, pos CoordPos) {
	entry := g.nodes.insert(coord)
	entry.node.setLabelOnPosition(g.argIndex, pos)
}

// insertBoundaryPoint merges a boundary point into the node at its
// coordinate, flipping between boundary and interior per the mod-2 rule.
func (g *geometryGraph) insertBoundaryPoint(coord XY) {
	entry := g.nodes.insert(coord)
	boundaryCount := 1
	if entry.node.label.onPosition(g.argIndex) == OnBoundary {
		boundaryCount++
	}
	entry.node.setLabelOnPosition(g.argIndex, determineBoundary(boundaryCount))
}

func (g *geometryGraph) boundaryNodes() []XY {
	var coords []XY
	for _, entry := range g.nodes.sorted() {
		if entry.node.label.onPosition(g.argIndex) == OnBoundary {
			coords = append(coords, entry.node.coord)
		}
	}
	return coords
}

func (g *geometryGraph) segmentCount() int {
	n := 0
	for _, e := range g.edges {
		n += len(e.coords) - 1
	}
	return n
}

// computeSelfNodes finds the intersections among the geometry's own edges and
// turns them into nodes. Edges of rings are assumed not to intersect
// themselves, so only distinct edge pairs are tested for them.
func (g *geometryGraph) computeSelfNodes() {
	si := newSegmentIntersector(true)
	isRings := false
	switch geometry := g.geometry.(type) {
	case *geom.LineString:
		isRings = curveClosed(geometry.FlatCoords(), geometry.Stride())
	case *geom.MultiLineString:
		isRings = multiCurveClosed(geometry)
	case *geom.LinearRing, *geom.Polygon, *geom.MultiPolygon:
		isRings = true
	}
	g.edgeSetIntersector(g.segmentCount()).computeIntersectionsWithinSet(!isRings, si)
	g.addSelfIntersectionNodes()
}

// computeEdgeIntersections finds the intersections between this geometry's
// edges and another's, and reports back the segment intersector so proper
// intersections can feed the matrix directly.
func (g *geometryGraph) computeEdgeIntersections(other *geometryGraph) *segmentIntersector {
	si := newSegmentIntersector(false)
	si.setBoundaryNodes(g.boundaryNodes(), other.boundaryNodes())
	esi := other.edgeSetIntersector(g.segmentCount() + other.segmentCount())
	esi.computeIntersectionsBetweenSets(g.edges, si)
	return si
}

// edgeSetIntersector picks a pairing strategy by input size. The brute force
// scan wins for small inputs; everything else gets the graph's cached index.
func (g *geometryGraph) edgeSetIntersector(totalSegments int) edgeSetIntersector {
	if totalSegments < indexedIntersectorThreshold {
		return simpleEdgeSetIntersector{edges: g.edges}
	}
	if g.index == nil {
		g.index = newIndexedEdgeSetIntersector(g.edges)
	}
	return g.index
}

func (g *geometryGraph) addSelfIntersectionNodes() {
	for _, e := range g.edges {
		pos := e.label.onPosition(g.argIndex)
		for _, ei := range e.intersections {
			g.addSelfIntersectionNode(ei.coord, pos)
		}
	}
}

// addSelfIntersectionNode adds a node at a self-intersection point, unless the
// point is already a boundary node and must stay one.
func (g *geometryGraph) addSelfIntersectionNode(coord XY, pos CoordPos) {
	if g.isBoundaryNode(coord) {
		return
	}
	if pos == OnBoundary && g.useBoundaryDeterminationRule {
		g.insertBoundaryPoint(coord)
	} else {
		g.insertPoint(coord, pos)
	}
}

func (g *geometryGraph) isBoundaryNode(coord XY) bool {
	entry, ok := g.nodes.find(coord)
	return ok && entry.node.label.onPosition(g.argIndex) == OnBoundary
}

func dedupCoords(pts []XY) []XY {
	coords := make([]XY, 0, len(pts))
	for _, pt := range pts {
		if len(coords) == 0 || coords[len(coords)-1] != pt {
			coords = append(coords, pt)
		}
	}
	return coords
}

func xysToFlat(pts []XY) []float64 {
	flat := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		flat = append(flat, pt.X, pt.Y)
	}
	return flat
}
