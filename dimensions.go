package relate

import (
	"github.com/twpayne/go-geom"
)

// Dimensions is the dimensionality of a geometry or of an intersection matrix
// entry. Empty corresponds to the DE-9IM "F" entry.
type Dimensions int8

const (
	Empty Dimensions = iota
	ZeroDimensional
	OneDimensional
	TwoDimensional
)

func (d Dimensions) String() string {
	switch d {
	case ZeroDimensional:
		return "0"
	case OneDimensional:
		return "1"
	case TwoDimensional:
		return "2"
	}
	return "F"
}

// Dimensionality returns the effective dimension of a geometry, accounting for
// emptiness and for degenerate collapses such as a line string whose
// coordinates are all identical.
func Dimensionality(g geom.T) Dimensions {
	switch g := g.(type) {
	case *geom.Point:
		if len(g.FlatCoords()) == 0 {
			return Empty
		}
		return ZeroDimensional
	case *geom.MultiPoint:
		if g.NumPoints() == 0 {
			return Empty
		}
		return ZeroDimensional
	case *geom.LineString:
		return curveDimensions(g.FlatCoords(), g.Stride())
	case *geom.LinearRing:
		return curveDimensions(g.FlatCoords(), g.Stride())
	case *geom.MultiLineString:
		max := Empty
		for i := 0; i < g.NumLineStrings(); i++ {
			if d := Dimensionality(g.LineString(i)); max < d {
				max = d
			}
		}
		return max
	case *geom.Polygon:
		if g.NumLinearRings() == 0 {
			return Empty
		}
		return surfaceDimensions(g.LinearRing(0).FlatCoords(), g.Stride())
	case *geom.MultiPolygon:
		max := Empty
		for i := 0; i < g.NumPolygons(); i++ {
			if d := Dimensionality(g.Polygon(i)); max < d {
				max = d
			}
		}
		return max
	case *geom.GeometryCollection:
		max := Empty
		for _, sub := range g.Geoms() {
			if d := Dimensionality(sub); max < d {
				max = d
			}
		}
		return max
	}
	return Empty
}

// BoundaryDimensionality returns the dimension of a geometry's boundary. Closed
// curves and points have an empty boundary.
func BoundaryDimensionality(g geom.T) Dimensions {
	switch g := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return Empty
	case *geom.LineString:
		return curveBoundaryDimensions(g.FlatCoords(), g.Stride())
	case *geom.LinearRing:
		return Empty
	case *geom.MultiLineString:
		if multiCurveClosed(g) {
			return Empty
		}
		max := Empty
		for i := 0; i < g.NumLineStrings(); i++ {
			if d := curveBoundaryDimensions(g.LineString(i).FlatCoords(), g.Stride()); max < d {
				max = d
			}
		}
		return max
	case *geom.Polygon:
		if Dimensionality(g) == TwoDimensional {
			return OneDimensional
		}
		return Empty
	case *geom.MultiPolygon:
		if Dimensionality(g) == TwoDimensional {
			return OneDimensional
		}
		return Empty
	case *geom.GeometryCollection:
		max := Empty
		for _, sub := range g.Geoms() {
			if d := BoundaryDimensionality(sub); max < d {
				max = d
			}
			if max == OneDimensional {
				// no geometry has a higher-dimensional boundary
				return max
			}
		}
		return max
	}
	return Empty
}

func curveDimensions(flat []float64, stride int) Dimensions {
	if len(flat) == 0 {
		return Empty
	}
	if allCoordsEqual(flat, stride) {
		return ZeroDimensional
	}
	return OneDimensional
}

func curveBoundaryDimensions(flat []float64, stride int) Dimensions {
	if curveClosed(flat, stride) {
		return Empty
	}
	if curveDimensions(flat, stride) == OneDimensional {
		return ZeroDimensional
	}
	return Empty
}

func curveClosed(flat []float64, stride int) bool {
	if len(flat) < stride {
		return true
	}
	n := len(flat)
	return flat[0] == flat[n-stride] && flat[1] == flat[n-stride+1]
}

func multiCurveClosed(g *geom.MultiLineString) bool {
	for i := 0; i < g.NumLineStrings(); i++ {
		ls := g.LineString(i)
		if len(ls.FlatCoords()) == 0 {
			continue
		}
		if !curveClosed(ls.FlatCoords(), ls.Stride()) {
			return false
		}
	}
	return true
}

func surfaceDimensions(flat []float64, stride int) Dimensions {
	if len(flat) == 0 {
		return Empty
	}
	if allCoordsEqual(flat, stride) {
		return ZeroDimensional
	}
	return TwoDimensional
}

func allCoordsEqual(flat []float64, stride int) bool {
	x, y := flat[0], flat[1]
	for i := stride; i+1 < len(flat); i += stride {
		if flat[i] != x || flat[i+1] != y {
			return false
		}
	}
	return true
}
