package relate

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

func parseGeometry(s string) geom.T {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		panic(err)
	}
	return g
}

func TestRelateMatrix(t *testing.T) {
	var tts = []struct {
		a, b   string
		matrix string
	}{
		// disjoint squares
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((3 3,3 5,5 5,5 3,3 3))", "FF2FF1212"},
		// square contained in square
		{"POLYGON((0 0,0 10,10 10,10 0,0 0))", "POLYGON((2 2,2 5,5 5,5 2,2 2))", "212FF1FF2"},
		// overlapping squares
		{"POLYGON((0 0,0 4,4 4,4 0,0 0))", "POLYGON((2 2,2 6,6 6,6 2,2 2))", "212101212"},
		// squares sharing an edge
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((2 0,2 2,4 2,4 0,2 0))", "FF2F11212"},
		// squares sharing a corner
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((2 2,2 4,4 4,4 2,2 2))", "FF2F01212"},
		// square sharing part of its boundary with a containing square
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((0 0,0 4,4 4,4 0,0 0))", "2FF11F212"},
		// line crossing a square
		{"LINESTRING(-1 2,5 2)", "POLYGON((0 0,0 4,4 4,4 0,0 0))", "101FF0212"},
		// line inside a square
		{"LINESTRING(1 1,3 3)", "POLYGON((0 0,0 4,4 4,4 0,0 0))", "1FF0FF212"},
		// point inside a square
		{"POINT(1 1)", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "0FFFFF212"},
		// point on a square's boundary
		{"POINT(0 1)", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "F0FFFF212"},
		// point away from a square
		{"POINT(5 5)", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "FF0FFF212"},
		// crossing lines
		{"LINESTRING(0 0,2 2)", "LINESTRING(0 2,2 0)", "0F1FF0102"},
		// lines touching at endpoints
		{"LINESTRING(0 0,1 1)", "LINESTRING(1 1,2 0)", "FF1F00102"},
		// collinear overlapping lines
		{"LINESTRING(0 0,3 0)", "LINESTRING(1 0,4 0)", "1010F0102"},
		// identical lines, reversed direction
		{"LINESTRING(0 0,1 0,2 1)", "LINESTRING(2 1,1 0,0 0)", "1FFF0FFF2"},
		// line covering another's tail
		{"LINESTRING(0 0,4 0)", "LINESTRING(1 0,4 0)", "101F00FF2"},
		// point on a closed line, which has no boundary
		{"POINT(0 0)", "LINESTRING(0 0,2 0,2 2,0 2,0 0)", "0FFFFF1F2"},
		// point on an open line's endpoint
		{"POINT(0 0)", "LINESTRING(0 0,2 0)", "F0FFFF102"},
		// chain of two lines equal to one line under the mod-2 rule
		{"MULTILINESTRING((0 0,5 0),(5 0,10 0))", "LINESTRING(0 0,10 0)", "1FFF0FFF2"},
		// multipoint straddling a square
		{"MULTIPOINT(1 1,5 5)", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "0F0FFF212"},
		// point inside one square of a multipolygon
		{"POINT(1 1)", "MULTIPOLYGON(((0 0,0 2,2 2,2 0,0 0)),((5 5,5 7,7 7,7 5,5 5)))", "0FFFFF212"},
		// empty geometry against a square
		{"POINT EMPTY", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "FFFFFF212"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			im := Relate(parseGeometry(tt.a), parseGeometry(tt.b))
			test.T(t, im.String(), tt.matrix)
		})
	}
}

func TestRelatePredicates(t *testing.T) {
	var tts = []struct {
		a, b string
		pred string
		want bool
	}{
		{"POLYGON((0 0,0 4,4 4,4 0,0 0))", "POLYGON((2 2,2 6,6 6,6 2,2 2))", "overlaps", true},
		{"POLYGON((0 0,0 4,4 4,4 0,0 0))", "POLYGON((2 2,2 6,6 6,6 2,2 2))", "touches", false},
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((2 0,2 2,4 2,4 0,2 0))", "touches", true},
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((2 0,2 2,4 2,4 0,2 0))", "intersects", true},
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((3 3,3 5,5 5,5 3,3 3))", "disjoint", true},
		{"POLYGON((2 2,2 5,5 5,5 2,2 2))", "POLYGON((0 0,0 10,10 10,10 0,0 0))", "within", true},
		{"POLYGON((0 0,0 10,10 10,10 0,0 0))", "POLYGON((2 2,2 5,5 5,5 2,2 2))", "contains", true},
		{"POLYGON((0 0,0 2,2 2,2 0,0 0))", "POLYGON((0 0,0 4,4 4,4 0,0 0))", "coveredby", true},
		{"POLYGON((0 0,0 4,4 4,4 0,0 0))", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "covers", true},
		{"LINESTRING(-1 2,5 2)", "POLYGON((0 0,0 4,4 4,4 0,0 0))", "crosses", true},
		{"LINESTRING(0 0,2 2)", "LINESTRING(0 2,2 0)", "crosses", true},
		{"LINESTRING(0 0,3 0)", "LINESTRING(1 0,4 0)", "overlaps", true},
		{"LINESTRING(0 0,3 0)", "LINESTRING(1 0,4 0)", "crosses", false},
		{"LINESTRING(0 0,1 1)", "LINESTRING(1 1,2 0)", "touches", true},
		{"LINESTRING(0 0,1 0,2 1)", "LINESTRING(2 1,1 0,0 0)", "equals", true},
		{"MULTILINESTRING((0 0,5 0),(5 0,10 0))", "LINESTRING(0 0,10 0)", "equals", true},
		{"MULTIPOINT(1 1,5 5)", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "crosses", true},
		{"POINT EMPTY", "POINT EMPTY", "equals", true},
		{"POINT EMPTY", "POLYGON((0 0,0 2,2 2,2 0,0 0))", "disjoint", true},
	}
	predicates := map[string]func(a, b geom.T) bool{
		"intersects": Intersects,
		"disjoint":   Disjoint,
		"within":     Within,
		"contains":   Contains,
		"equals":     EqualsTopo,
		"coveredby":  CoveredBy,
		"covers":     Covers,
		"touches":    Touches,
		"crosses":    Crosses,
		"overlaps":   Overlaps,
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := predicates[tt.pred](parseGeometry(tt.a), parseGeometry(tt.b))
			test.T(t, got, tt.want)
		})
	}
}

func TestRelateGeometryCollection(t *testing.T) {
	gc := parseGeometry("GEOMETRYCOLLECTION(POINT(1 1),LINESTRING(3 3,4 4))")
	square := parseGeometry("POLYGON((0 0,0 5,5 5,5 0,0 0))")

	im := Relate(gc, square)
	test.That(t, im.IsWithin(), "collection within the square")
	test.That(t, im.IsIntersects(), "collection intersects the square")
	test.That(t, !im.IsTouches(), "collection does not touch the square")
}

// Relating b to a must give the transposed matrix of relating a to b.
func TestRelateSymmetry(t *testing.T) {
	geometries := []string{
		"POINT(1 1)",
		"POINT(3 3)",
		"LINESTRING(-1 2,5 2)",
		"LINESTRING(0 0,3 0)",
		"LINESTRING(1 0,4 0)",
		"POLYGON((0 0,0 4,4 4,4 0,0 0))",
		"POLYGON((2 2,2 6,6 6,6 2,2 2))",
		"MULTILINESTRING((0 0,5 0),(5 0,10 0))",
		"MULTIPOINT(1 1,5 5)",
	}
	for i, sa := range geometries {
		for j, sb := range geometries {
			t.Run(fmt.Sprintf("%d-%d", i, j), func(t *testing.T) {
				a, b := parseGeometry(sa), parseGeometry(sb)
				test.T(t, Relate(a, b).Transposed(), Relate(b, a))
			})
		}
	}
}

// Every geometry equals itself.
func TestRelateReflexive(t *testing.T) {
	var tts = []struct {
		wkt    string
		matrix string
	}{
		{"POINT(1 1)", "0FFFFFFF2"},
		{"LINESTRING(0 0,3 0)", "1FFF0FFF2"},
		{"POLYGON((0 0,0 4,4 4,4 0,0 0))", "2FFF1FFF2"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			im := Relate(parseGeometry(tt.wkt), parseGeometry(tt.wkt))
			test.T(t, im.String(), tt.matrix)
			test.That(t, im.IsEqualTopo(), "geometry equals itself")
		})
	}
}

// The same inputs must always produce the same matrix, regardless of map
// iteration order inside the graph.
func TestRelateDeterministic(t *testing.T) {
	a := parseGeometry("POLYGON((0 0,0 4,4 4,4 0,0 0))")
	b := parseGeometry("POLYGON((2 2,2 6,6 6,6 2,2 2))")
	first := Relate(a, b)
	for i := 0; i < 10; i++ {
		test.T(t, Relate(a, b), first)
	}
}

func TestRelateWithDiagnostics(t *testing.T) {
	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	// a ring with fewer than 4 distinct points is dropped with a warning
	a := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 1, 0, 0}, []int{6})
	b := parseGeometry("POINT(0 0)")
	RelateWithDiagnostics(a, b, warn)
	test.T(t, len(warnings), 1)
}
