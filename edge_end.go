package relate

// quadrant of a direction vector, numbered counterclockwise from the positive
// x axis.
const (
	quadrantNE = iota
	quadrantNW
	quadrantSW
	quadrantSE
)

func quadrantOf(dx, dy float64) int {
	switch {
	case dx >= 0 && dy >= 0:
		return quadrantNE
	case dx < 0 && dy >= 0:
		return quadrantNW
	case dx < 0:
		return quadrantSW
	}
	return quadrantSE
}

// edgeEnd is a stub: the start of one edge segment incident on a node,
// directed away from it. Edge ends around a node are ordered
// counterclockwise by direction.
type edgeEnd struct {
	label    label
	origin   XY
	directed XY
	quadrant int
}

func newEdgeEnd(origin, directed XY, lbl label) edgeEnd {
	return edgeEnd{
		label:    lbl,
		origin:   origin,
		directed: directed,
		quadrant: quadrantOf(directed.X-origin.X, directed.Y-origin.Y),
	}
}

// compareDirection orders edge ends counterclockwise around their shared
// origin. It compares quadrants first and falls back to a robust orientation
// test within a quadrant.
func (e *edgeEnd) compareDirection(other *edgeEnd) int {
	dx, dy := e.directed.X-e.origin.X, e.directed.Y-e.origin.Y
	odx, ody := other.directed.X-other.origin.X, other.directed.Y-other.origin.Y
	if dx == odx && dy == ody {
		return 0
	}
	if e.quadrant != other.quadrant {
		if e.quadrant > other.quadrant {
			return 1
		}
		return -1
	}
	switch o := orient2d(other.origin, other.directed, e.directed); {
	case o < 0:
		return -1
	case o > 0:
		return 1
	}
	return 0
}

// computeEdgeEnds builds the stub edges for a set of edges, two per
// intersection point: one back along the edge and one forward.
func computeEdgeEnds(edges []*edge) []edgeEnd {
	var ends []edgeEnd
	for _, e := range edges {
		ends = computeEndsForEdge(e, ends)
	}
	return ends
}

func computeEndsForEdge(e *edge, ends []edgeEnd) []edgeEnd {
	e.addEndpointIntersections()
	for i := range e.intersections {
		var eiPrev, eiNext *edgeIntersection
		if i > 0 {
			eiPrev = &e.intersections[i-1]
		}
		if i+1 < len(e.intersections) {
			eiNext = &e.intersections[i+1]
		}
		ends = createEdgeEndForPrev(e, ends, &e.intersections[i], eiPrev)
		ends = createEdgeEndForNext(e, ends, &e.intersections[i], eiNext)
	}
	return ends
}

// createEdgeEndForPrev adds a stub directed back along the edge from the
// intersection, unless the intersection is the first point of the edge. The
// stub runs against the edge direction, so its label is flipped.
func createEdgeEndForPrev(e *edge, ends []edgeEnd, eiCurr, eiPrev *edgeIntersection) []edgeEnd {
	iPrev := eiCurr.segmentIndex
	if eiCurr.dist == 0.0 {
		if iPrev == 0 {
			return ends
		}
		iPrev--
	}
	coordPrev := e.coords[iPrev]
	// a closer intersection on the same stretch becomes the stub endpoint
	if eiPrev != nil && eiPrev.segmentIndex >= iPrev {
		coordPrev = eiPrev.coord
	}
	lbl := e.label
	lbl.flip()
	return append(ends, newEdgeEnd(eiCurr.coord, coordPrev, lbl))
}

// createEdgeEndForNext adds a stub directed forward along the edge from the
// intersection, unless the intersection is the last point of the edge.
func createEdgeEndForNext(e *edge, ends []edgeEnd, eiCurr, eiNext *edgeIntersection) []edgeEnd {
	iNext := eiCurr.segmentIndex + 1
	if iNext >= len(e.coords) && eiNext == nil {
		return ends
	}
	var coordNext XY
	if iNext < len(e.coords) {
		coordNext = e.coords[iNext]
	}
	if eiNext != nil && eiNext.segmentIndex == eiCurr.segmentIndex {
		coordNext = eiNext.coord
	}
	return append(ends, newEdgeEnd(eiCurr.coord, coordNext, e.label))
}
