package relate

import (
	"github.com/twpayne/go-geom"
)

// CoordinatePosition determines whether a coordinate lies in the interior, on
// the boundary, or in the exterior of a geometry. Boundary membership of
// multi-geometries follows the mod-2 rule, so a coordinate shared by an even
// number of element boundaries lands in the interior.
func CoordinatePosition(coord XY, g geom.T) CoordPos {
	var isInside bool
	var boundaryCount int
	accumulatePosition(coord, g, &isInside, &boundaryCount)
	if boundaryCount%2 == 1 {
		return OnBoundary
	}
	if isInside {
		return Inside
	}
	return Outside
}

func accumulatePosition(coord XY, g geom.T, isInside *bool, boundaryCount *int) {
	switch g := g.(type) {
	case *geom.Point:
		if len(g.FlatCoords()) == 0 {
			return
		}
		if coord.X == g.X() && coord.Y == g.Y() {
			*isInside = true
		}
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			accumulatePosition(coord, g.Point(i), isInside, boundaryCount)
		}
	case *geom.LineString:
		lineStringPosition(coord, flatToXYs(g.FlatCoords(), g.Stride()), isInside, boundaryCount)
	case *geom.LinearRing:
		lineStringPosition(coord, flatToXYs(g.FlatCoords(), g.Stride()), isInside, boundaryCount)
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			accumulatePosition(coord, g.LineString(i), isInside, boundaryCount)
		}
	case *geom.Polygon:
		polygonPosition(coord, g, isInside, boundaryCount)
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			accumulatePosition(coord, g.Polygon(i), isInside, boundaryCount)
		}
	case *geom.GeometryCollection:
		for _, sub := range g.Geoms() {
			accumulatePosition(coord, sub, isInside, boundaryCount)
		}
	}
}

func lineStringPosition(coord XY, pts []XY, isInside *bool, boundaryCount *int) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		if coord == pts[0] {
			*isInside = true
		}
		return
	}
	closed := pts[0] == pts[len(pts)-1]
	if !closed && (coord == pts[0] || coord == pts[len(pts)-1]) {
		*boundaryCount++
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		if pointOnSegment(coord, pts[i], pts[i+1]) {
			*isInside = true
			return
		}
	}
}

func polygonPosition(coord XY, poly *geom.Polygon, isInside *bool, boundaryCount *int) {
	if poly.NumLinearRings() == 0 {
		return
	}
	shell := flatToXYs(poly.LinearRing(0).FlatCoords(), poly.Stride())
	switch coordPosRelativeToRing(coord, shell) {
	case Outside:
	case OnBoundary:
		*boundaryCount++
	case Inside:
		for i := 1; i < poly.NumLinearRings(); i++ {
			hole := flatToXYs(poly.LinearRing(i).FlatCoords(), poly.Stride())
			switch coordPosRelativeToRing(coord, hole) {
			case Inside:
				return
			case OnBoundary:
				*boundaryCount++
				return
			}
		}
		*isInside = true
	}
}

// coordPosRelativeToRing locates a coordinate relative to a closed ring using
// the winding number, detecting boundary coordinates along the way. The ring's
// winding order does not matter.
func coordPosRelativeToRing(coord XY, ring []XY) CoordPos {
	if len(ring) == 0 {
		return Outside
	}
	if len(ring) == 1 {
		if coord == ring[0] {
			return OnBoundary
		}
		return Outside
	}
	winding := 0
	for i := 0; i+1 < len(ring); i++ {
		start, end := ring[i], ring[i+1]
		if start.Y <= coord.Y {
			if end.Y >= coord.Y {
				o := orient2d(start, end, coord)
				if o > 0 && end.Y > coord.Y {
					winding++
				} else if o == 0 && valueInBetween(coord.X, start.X, end.X) {
					return OnBoundary
				}
			}
		} else if end.Y <= coord.Y {
			o := orient2d(start, end, coord)
			if o < 0 {
				winding--
			} else if o == 0 && valueInBetween(coord.X, start.X, end.X) {
				return OnBoundary
			}
		}
	}
	if winding == 0 {
		return Outside
	}
	return Inside
}

func pointOnSegment(p, start, end XY) bool {
	return orient2d(start, end, p) == 0 &&
		valueInBetween(p.X, start.X, end.X) &&
		valueInBetween(p.Y, start.Y, end.Y)
}

func valueInBetween(x, bound1, bound2 float64) bool {
	if bound1 < bound2 {
		return bound1 <= x && x <= bound2
	}
	return bound2 <= x && x <= bound1
}

func flatToXYs(flat []float64, stride int) []XY {
	pts := make([]XY, 0, len(flat)/stride)
	for i := 0; i+1 < len(flat); i += stride {
		pts = append(pts, XY{flat[i], flat[i+1]})
	}
	return pts
}
