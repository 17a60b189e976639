package relate

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// orient2d gives the orientation of c relative to the directed segment a->b,
// computed with extended precision so nearly collinear inputs do not flip sign.
func orient2d(a, b, c XY) orientation.Type {
	return bigxy.OrientationIndex(geom.Coord{a.X, a.Y}, geom.Coord{b.X, b.Y}, geom.Coord{c.X, c.Y})
}

// lineIntersection describes how two segments meet. When collinear is set the
// segments overlap along the overlap segment, which may be degenerate. A proper
// intersection point lies in the interior of both segments.
type lineIntersection struct {
	collinear bool
	point     XY
	proper    bool
	overlap   line
}

// intersectLines computes the intersection of two segments, if any. Endpoint
// coordinates that take part in the intersection are returned exactly; only the
// proper case computes a new coordinate.
func intersectLines(p, q line) (lineIntersection, bool) {
	if !segmentBoundsOverlap(p, q) {
		return lineIntersection{}, false
	}

	pq1 := orient2d(p.start, p.end, q.start)
	pq2 := orient2d(p.start, p.end, q.end)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return lineIntersection{}, false
	}

	qp1 := orient2d(q.start, q.end, p.start)
	qp2 := orient2d(q.start, q.end, p.end)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return lineIntersection{}, false
	}

	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		return collinearIntersection(p, q)
	}

	// exactly one point of intersection
	if pq1 == 0 || pq2 == 0 || qp1 == 0 || qp2 == 0 {
		var pt XY
		switch {
		case p.start == q.start || p.start == q.end:
			pt = p.start
		case p.end == q.start || p.end == q.end:
			pt = p.end
		case pq1 == 0:
			pt = q.start
		case pq2 == 0:
			pt = q.end
		case qp1 == 0:
			pt = p.start
		default:
			pt = p.end
		}
		return lineIntersection{point: pt}, true
	}
	return lineIntersection{point: properIntersection(p, q), proper: true}, true
}

func collinearIntersection(p, q line) (lineIntersection, bool) {
	collinear := func(l line) (lineIntersection, bool) {
		return lineIntersection{collinear: true, overlap: l}, true
	}
	improper := func(pt XY) (lineIntersection, bool) {
		return lineIntersection{point: pt}, true
	}

	qs := segmentBoundsContain(p, q.start)
	qe := segmentBoundsContain(p, q.end)
	ps := segmentBoundsContain(q, p.start)
	pe := segmentBoundsContain(q, p.end)
	switch {
	case qs && qe:
		return collinear(q)
	case ps && pe:
		return collinear(p)
	case qs && ps && q.start == p.start && !qe && !pe:
		return improper(q.start)
	case qs && ps:
		return collinear(line{q.start, p.start})
	case qs && pe && q.start == p.end && !qe && !ps:
		return improper(q.start)
	case qs && pe:
		return collinear(line{q.start, p.end})
	case qe && ps && q.end == p.start && !qs && !pe:
		return improper(q.end)
	case qe && ps:
		return collinear(line{q.end, p.start})
	case qe && pe && q.end == p.end && !qs && !ps:
		return improper(q.end)
	case qe && pe:
		return collinear(line{q.end, p.end})
	}
	return lineIntersection{}, false
}

// properIntersection computes the interior crossing point of two segments. When
// round-off pushes the raw result outside both segments' bounds, typically for
// nearly parallel inputs, the nearest endpoint is a safer approximation.
func properIntersection(p, q line) XY {
	pt, ok := rawLineIntersection(p, q)
	if !ok {
		pt = nearestEndpoint(p, q)
	}
	if !segmentBoundsContain(p, pt) && !segmentBoundsContain(q, pt) {
		pt = nearestEndpoint(p, q)
	}
	return pt
}

// rawLineIntersection intersects the infinite lines through p and q using
// homogeneous coordinates. Ordinates are conditioned by subtracting the
// midpoint of the bounds overlap to reduce round-off.
func rawLineIntersection(p, q line) (XY, bool) {
	minX0, maxX0 := math.Min(p.start.X, p.end.X), math.Max(p.start.X, p.end.X)
	minY0, maxY0 := math.Min(p.start.Y, p.end.Y), math.Max(p.start.Y, p.end.Y)
	minX1, maxX1 := math.Min(q.start.X, q.end.X), math.Max(q.start.X, q.end.X)
	minY1, maxY1 := math.Min(q.start.Y, q.end.Y), math.Max(q.start.Y, q.end.Y)
	midX := (math.Max(minX0, minX1) + math.Min(maxX0, maxX1)) / 2.0
	midY := (math.Max(minY0, minY1) + math.Min(maxY0, maxY1)) / 2.0

	p1x, p1y := p.start.X-midX, p.start.Y-midY
	p2x, p2y := p.end.X-midX, p.end.Y-midY
	q1x, q1y := q.start.X-midX, q.start.Y-midY
	q2x, q2y := q.end.X-midX, q.end.Y-midY

	px := p1y - p2y
	py := p2x - p1x
	pw := p1x*p2y - p2x*p1y

	qx := q1y - q2y
	qy := q2x - q1x
	qw := q1x*q2y - q2x*q1y

	xw := py*qw - qy*pw
	yw := qx*pw - px*qw
	w := px*qy - qx*py

	xInt := xw / w
	yInt := yw / w
	if math.IsNaN(xInt) || math.IsInf(xInt, 0) || math.IsNaN(yInt) || math.IsInf(yInt, 0) {
		return XY{}, false
	}
	return XY{xInt + midX, yInt + midY}, true
}

// nearestEndpoint finds the endpoint of one segment closest to the other
// segment. For nearly parallel segments this is within round-off of the true
// intersection.
func nearestEndpoint(p, q line) XY {
	nearest := p.start
	minDist := distancePointToSegment(p.start, q)
	if d := distancePointToSegment(p.end, q); d < minDist {
		minDist, nearest = d, p.end
	}
	if d := distancePointToSegment(q.start, p); d < minDist {
		minDist, nearest = d, q.start
	}
	if d := distancePointToSegment(q.end, p); d < minDist {
		nearest = q.end
	}
	return nearest
}

func distancePointToSegment(p XY, l line) float64 {
	return xy.DistanceFromPointToLine(geom.Coord{p.X, p.Y},
		geom.Coord{l.start.X, l.start.Y}, geom.Coord{l.end.X, l.end.Y})
}

func segmentBoundsOverlap(p, q line) bool {
	if math.Min(p.start.X, p.end.X) > math.Max(q.start.X, q.end.X) ||
		math.Max(p.start.X, p.end.X) < math.Min(q.start.X, q.end.X) ||
		math.Min(p.start.Y, p.end.Y) > math.Max(q.start.Y, q.end.Y) ||
		math.Max(p.start.Y, p.end.Y) < math.Min(q.start.Y, q.end.Y) {
		return false
	}
	return true
}

func segmentBoundsContain(l line, p XY) bool {
	return valueInBetween(p.X, l.start.X, l.end.X) && valueInBetween(p.Y, l.start.Y, l.end.Y)
}
