package relate

import (
	"github.com/twpayne/go-geom"
)

// Relate computes the DE-9IM intersection matrix of two geometries. Degenerate
// input, such as rings with too few points, is reported through the package
// logger and otherwise skipped.
func Relate(a, b geom.T) IntersectionMatrix {
	return RelateWithDiagnostics(a, b, defaultWarn)
}

// RelateWithDiagnostics is Relate with warnings routed to warn.
func RelateWithDiagnostics(a, b geom.T, warn WarnFunc) IntersectionMatrix {
	op := &relateOperation{
		geoms: [2]geom.T{a, b},
		nodes: newNodeMap(newEdgeEndBundleStar),
		warn:  warn,
	}
	op.graphs = [2]*geometryGraph{
		newGeometryGraph(0, a, warn),
		newGeometryGraph(1, b, warn),
	}
	return op.computeIntersectionMatrix()
}

// Intersects reports whether the geometries have any point in common.
func Intersects(a, b geom.T) bool { return Relate(a, b).IsIntersects() }

// Disjoint reports whether the geometries have no point in common.
func Disjoint(a, b geom.T) bool { return Relate(a, b).IsDisjoint() }

// Within reports whether a lies completely inside b.
func Within(a, b geom.T) bool { return Relate(a, b).IsWithin() }

// Contains reports whether b lies completely inside a.
func Contains(a, b geom.T) bool { return Relate(a, b).IsContains() }

// EqualsTopo reports whether the geometries cover the same point set.
func EqualsTopo(a, b geom.T) bool { return Relate(a, b).IsEqualTopo() }

// CoveredBy reports whether every point of a is a point of b.
func CoveredBy(a, b geom.T) bool { return Relate(a, b).IsCoveredBy() }

// Covers reports whether every point of b is a point of a.
func Covers(a, b geom.T) bool { return Relate(a, b).IsCovers() }

// Touches reports whether the geometries meet only at boundary points.
func Touches(a, b geom.T) bool { return Relate(a, b).IsTouches() }

// Crosses reports whether the geometries share some but not all interior
// points in a lower dimension than the higher dimensional input.
func Crosses(a, b geom.T) bool { return Relate(a, b).IsCrosses() }

// Overlaps reports whether same-dimensional geometries partially share their
// interiors.
func Overlaps(a, b geom.T) bool { return Relate(a, b).IsOverlaps() }

// relateOperation computes the intersection matrix from the topology graphs of
// the two geometries. It owns the combined node map in which the graphs' nodes
// and intersection points merge, each node carrying the star of edge ends
// around it.
type relateOperation struct {
	geoms         [2]geom.T
	graphs        [2]*geometryGraph
	nodes         nodeMap[*edgeEndBundleStar]
	isolatedEdges []*edge
	warn          WarnFunc
}

func (op *relateOperation) computeIntersectionMatrix() IntersectionMatrix {
	im := emptyDisjointMatrix()

	if !op.geoms[0].Bounds().Overlaps(geom.XY, op.geoms[1].Bounds()) {
		op.computeDisjointMatrix(&im)
		return im
	}

	op.graphs[0].computeSelfNodes()
	op.graphs[1].computeSelfNodes()

	si := op.graphs[0].computeEdgeIntersections(op.graphs[1])

	op.computeIntersectionNodes(0)
	op.computeIntersectionNodes(1)
	// labels from the parent geometries override any label determined by
	// intersections between the geometries
	op.copyNodesAndLabels(0)
	op.copyNodesAndLabels(1)

	// complete the labelling of nodes touched by only one geometry
	op.labelIsolatedNodes()

	op.computeProperIntersectionMatrix(si, &im)

	op.insertEdgeEnds(computeEdgeEnds(op.graphs[0].edges))
	op.insertEdgeEnds(computeEdgeEnds(op.graphs[1].edges))

	op.labelNodeEdges()

	op.labelIsolatedEdges(0, 1)
	op.labelIsolatedEdges(1, 0)
	op.labelIsolatedNodes()

	op.updateMatrix(&im)
	return im
}

// computeDisjointMatrix fills in the matrix for geometries whose bounds do not
// overlap: each geometry and its boundary lie entirely in the other's
// exterior.
func (op *relateOperation) computeDisjointMatrix(im *IntersectionMatrix) {
	if dimA := Dimensionality(op.geoms[0]); dimA != Empty {
		im.set(Inside, Outside, dimA)
		im.set(OnBoundary, Outside, BoundaryDimensionality(op.geoms[0]))
	}
	if dimB := Dimensionality(op.geoms[1]); dimB != Empty {
		im.set(Outside, Inside, dimB)
		im.set(Outside, OnBoundary, BoundaryDimensionality(op.geoms[1]))
	}
}

// computeIntersectionNodes turns the intersection points recorded on one
// geometry's edges into nodes. Points on a boundary edge merge with the mod-2
// rule; all others land in the interior unless already labelled.
func (op *relateOperation) computeIntersectionNodes(geomIndex int) {
	for _, e := range op.graphs[geomIndex].edges {
		edgePos := e.label.onPosition(geomIndex)
		for _, ei := range e.intersections {
			entry := op.nodes.insert(ei.coord)
			if edgePos == OnBoundary {
				entry.node.setLabelBoundary(geomIndex)
			} else if entry.node.label.onPosition(geomIndex) == posUnset {
				entry.node.setLabelOnPosition(geomIndex, Inside)
			}
		}
	}
}

func (op *relateOperation) copyNodesAndLabels(geomIndex int) {
	for _, entry := range op.graphs[geomIndex].nodes.sorted() {
		if pos := entry.node.label.onPosition(geomIndex); pos != posUnset {
			op.nodes.insert(entry.node.coord).node.setLabelOnPosition(geomIndex, pos)
		}
	}
}

// labelIsolatedNodes locates each node touched by only one geometry relative
// to the other geometry.
func (op *relateOperation) labelIsolatedNodes() {
	for _, entry := range op.nodes.sorted() {
		n := entry.node
		if !n.isIsolated() {
			continue
		}
		if n.label.isEmpty(0) {
			op.labelIsolatedNode(n, 0)
		} else {
			op.labelIsolatedNode(n, 1)
		}
	}
}

func (op *relateOperation) labelIsolatedNode(n *coordNode, targetIndex int) {
	pos := CoordinatePosition(n.coord, op.geoms[targetIndex])
	n.label.setAllPositions(targetIndex, pos)
}

// computeProperIntersectionMatrix raises the matrix to the lower bound implied
// by a proper intersection, before any node labelling happens. Which entries
// follow depends only on the input dimensions.
func (op *relateOperation) computeProperIntersectionMatrix(si *segmentIntersector, im *IntersectionMatrix) {
	dimA := Dimensionality(op.geoms[0])
	dimB := Dimensionality(op.geoms[1])
	switch {
	case dimA == TwoDimensional && dimB == TwoDimensional:
		if si.hasProper {
			im.setAtLeastFromString("212101212")
		}
	case dimA == TwoDimensional && dimB == OneDimensional:
		if si.hasProper {
			im.setAtLeastFromString("FFF0FFFF2")
		}
		if si.hasProperInterior {
			im.setAtLeastFromString("1FFFFF1FF")
		}
	case dimA == OneDimensional && dimB == TwoDimensional:
		if si.hasProper {
			im.setAtLeastFromString("F0FFFFFF2")
		}
		if si.hasProperInterior {
			im.setAtLeastFromString("1F1FFFFFF")
		}
	case dimA == OneDimensional && dimB == OneDimensional:
		if si.hasProperInterior {
			im.setAtLeastFromString("0FFFFFFFF")
		}
	}
}

func (op *relateOperation) insertEdgeEnds(ends []edgeEnd) {
	for _, end := range ends {
		op.nodes.insert(end.origin).edges.insert(end)
	}
}

func (op *relateOperation) labelNodeEdges() {
	for _, entry := range op.nodes.sorted() {
		entry.edges.computeLabeling(op.graphs[0], op.graphs[1], op.warn)
	}
}

// labelIsolatedEdges locates the edges of one geometry that never intersect
// the other geometry. Such an edge lies wholly inside or wholly outside the
// other geometry, so one coordinate decides for the whole edge.
func (op *relateOperation) labelIsolatedEdges(thisIndex, targetIndex int) {
	for _, e := range op.graphs[thisIndex].edges {
		if !e.isolated {
			continue
		}
		op.labelIsolatedEdge(e, targetIndex)
		op.isolatedEdges = append(op.isolatedEdges, e)
	}
}

func (op *relateOperation) labelIsolatedEdge(e *edge, targetIndex int) {
	target := op.geoms[targetIndex]
	if Dimensionality(target) > ZeroDimensional {
		e.label.setAllPositions(targetIndex, CoordinatePosition(e.coords[0], target))
	} else {
		e.label.setAllPositions(targetIndex, Outside)
	}
}

func (op *relateOperation) updateMatrix(im *IntersectionMatrix) {
	for _, e := range op.isolatedEdges {
		updateMatrixFromLabel(e.label, im)
	}
	for _, entry := range op.nodes.sorted() {
		entry.node.updateMatrix(im)
		entry.edges.updateMatrix(im)
	}
}
