package relate

import (
	"math"
	"sort"
)

// edgeIntersection is a point where another segment meets an edge, positioned
// along the edge by segment index and distance along that segment.
type edgeIntersection struct {
	coord        XY
	segmentIndex int
	dist         float64
}

func (ei edgeIntersection) before(other edgeIntersection) bool {
	if ei.segmentIndex != other.segmentIndex {
		return ei.segmentIndex < other.segmentIndex
	}
	return ei.dist < other.dist
}

// edge is a chain of coordinates carrying a topology label and the sorted set
// of intersections discovered on it. An edge starts out isolated and is marked
// otherwise as soon as it intersects the other geometry.
type edge struct {
	coords        []XY
	label         label
	isolated      bool
	intersections []edgeIntersection
}

func newEdge(coords []XY, lbl label) *edge {
	return &edge{coords: coords, label: lbl, isolated: true}
}

func (e *edge) isClosed() bool {
	return e.coords[0] == e.coords[len(e.coords)-1]
}

// addEndpointIntersections registers both endpoints of the edge so that stub
// edges get built at them.
func (e *edge) addEndpointIntersections() {
	maxSegmentIndex := len(e.coords) - 1
	e.insertIntersection(edgeIntersection{e.coords[0], 0, 0.0})
	e.insertIntersection(edgeIntersection{e.coords[maxSegmentIndex], maxSegmentIndex, 0.0})
}

// addIntersections records every point of an intersection result found on the
// given segment of the edge.
func (e *edge) addIntersections(inx lineIntersection, seg line, segmentIndex int) {
	if inx.collinear {
		e.addIntersection(inx.overlap.start, seg, segmentIndex)
		e.addIntersection(inx.overlap.end, seg, segmentIndex)
		return
	}
	e.addIntersection(inx.point, seg, segmentIndex)
}

// addIntersection records a single intersection point. A point that falls
// exactly on a vertex of the edge is normalized to the start of the following
// segment.
func (e *edge) addIntersection(coord XY, seg line, segmentIndex int) {
	dist := edgeDistance(coord, seg)
	if next := segmentIndex + 1; next < len(e.coords) && coord == e.coords[next] {
		segmentIndex = next
		dist = 0.0
	}
	e.insertIntersection(edgeIntersection{coord, segmentIndex, dist})
}

func (e *edge) insertIntersection(ei edgeIntersection) {
	i := sort.Search(len(e.intersections), func(i int) bool {
		return !e.intersections[i].before(ei)
	})
	if i < len(e.intersections) &&
		e.intersections[i].segmentIndex == ei.segmentIndex && e.intersections[i].dist == ei.dist {
		return
	}
	e.intersections = append(e.intersections, edgeIntersection{})
	copy(e.intersections[i+1:], e.intersections[i:])
	e.intersections[i] = ei
}

// edgeDistance is a pseudo-distance of an intersection point along a segment,
// measured on the longer axis. Endpoints of the segment get exact values so
// intersections sort stably.
func edgeDistance(intersection XY, seg line) float64 {
	dx := math.Abs(seg.end.X - seg.start.X)
	dy := math.Abs(seg.end.Y - seg.start.Y)
	switch intersection {
	case seg.start:
		return 0.0
	case seg.end:
		if dx > dy {
			return dx
		}
		return dy
	}
	intersectionDx := math.Abs(intersection.X - seg.start.X)
	intersectionDy := math.Abs(intersection.Y - seg.start.Y)
	dist := intersectionDy
	if dx > dy {
		dist = intersectionDx
	}
	if dist == 0.0 {
		// non-endpoints must not sort onto the segment start
		dist = math.Max(intersectionDx, intersectionDy)
	}
	return dist
}

// updateMatrixFromLabel folds a completed component label into the matrix. The
// component itself contributes a 1-dimensional intersection where both on
// positions are known; for area labels the regions beside it contribute
// 2-dimensional intersections.
func updateMatrixFromLabel(lbl label, im *IntersectionMatrix) {
	im.setAtLeastIfInBoth(lbl.position(0, posOn), lbl.position(1, posOn), OneDimensional)
	if lbl.isArea() {
		im.setAtLeastIfInBoth(lbl.position(0, posLeft), lbl.position(1, posLeft), TwoDimensional)
		im.setAtLeastIfInBoth(lbl.position(0, posRight), lbl.position(1, posRight), TwoDimensional)
	}
}
