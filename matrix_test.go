package relate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func mustMatrix(s string) IntersectionMatrix {
	im, err := ParseMatrix(s)
	if err != nil {
		panic(err)
	}
	return im
}

func TestMatrixString(t *testing.T) {
	for _, s := range []string{"FF2FF1212", "212101212", "0F1FF0102", "FFFFFFFF2"} {
		t.Run(s, func(t *testing.T) {
			test.T(t, mustMatrix(s).String(), s)
		})
	}
}

func TestMatrixParseError(t *testing.T) {
	_, err := ParseMatrix("FF2FF121")
	test.That(t, err != nil, "too short")
	_, err = ParseMatrix("FF2FF121*")
	test.That(t, err != nil, "bad character")
}

func TestMatrixGet(t *testing.T) {
	im := mustMatrix("012FFF210")
	test.T(t, im.Get(Inside, Inside), ZeroDimensional)
	test.T(t, im.Get(Inside, OnBoundary), OneDimensional)
	test.T(t, im.Get(Inside, Outside), TwoDimensional)
	test.T(t, im.Get(OnBoundary, Inside), Empty)
	test.T(t, im.Get(Outside, Outside), ZeroDimensional)
}

func TestMatrixTransposed(t *testing.T) {
	im := mustMatrix("101FF0212")
	test.T(t, im.Transposed().String(), "1F20F1102")
	test.T(t, im.Transposed().Transposed(), im)
}

func TestMatrixMatches(t *testing.T) {
	var tts = []struct {
		matrix  string
		pattern string
		matches bool
	}{
		{"212101212", "T*T***T**", true},
		{"212101212", "212101212", true},
		{"212101212", "TTTTTTTTT", true},
		{"FF2FF1212", "FF*FF****", true},
		{"FF2FF1212", "T********", false},
		{"0F1FF0102", "0********", true},
		{"0F1FF0102", "1********", false},
		{"101FF0212", "1*1***ff*", false},
		{"101FF0212", "1*1ff*2*2", true},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			matches, err := mustMatrix(tt.matrix).Matches(tt.pattern)
			test.Error(t, err)
			test.T(t, matches, tt.matches)
		})
	}

	_, err := mustMatrix("212101212").Matches("T*T***T*")
	test.That(t, err != nil, "too short")
	_, err = mustMatrix("212101212").Matches("T*T***T*x")
	test.That(t, err != nil, "bad character")
}

func TestMatrixPredicates(t *testing.T) {
	var tts = []struct {
		matrix string
		preds  string
	}{
		{"FF2FF1212", "disjoint"},
		{"212FF1FF2", "intersects contains covers"},
		{"212101212", "intersects overlaps"},
		{"2FF11F212", "intersects within coveredby"},
		{"FF2F11212", "intersects touches"},
		{"FF2F01212", "intersects touches"},
		{"101FF0212", "intersects crosses"},
		{"0F1FF0102", "intersects crosses"},
		{"1010F0102", "intersects overlaps"},
		{"1FFF0FFF2", "intersects within contains equals coveredby covers"},
		{"0FFFFF212", "intersects within coveredby"},
		{"F0FFFF212", "intersects coveredby touches"},
	}
	predicates := map[string]func(im IntersectionMatrix) bool{
		"intersects": IntersectionMatrix.IsIntersects,
		"disjoint":   IntersectionMatrix.IsDisjoint,
		"within":     IntersectionMatrix.IsWithin,
		"contains":   IntersectionMatrix.IsContains,
		"equals":     IntersectionMatrix.IsEqualTopo,
		"coveredby":  IntersectionMatrix.IsCoveredBy,
		"covers":     IntersectionMatrix.IsCovers,
		"touches":    IntersectionMatrix.IsTouches,
		"crosses":    IntersectionMatrix.IsCrosses,
		"overlaps":   IntersectionMatrix.IsOverlaps,
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			im := mustMatrix(tt.matrix)
			want := map[string]bool{}
			for _, name := range strings.Fields(tt.preds) {
				want[name] = true
			}
			for name, pred := range predicates {
				test.That(t, pred(im) == want[name], name)
			}
		})
	}
}

// Two empty geometries relate through the empty disjoint matrix and still
// count as topologically equal.
func TestMatrixEmptyEqualTopo(t *testing.T) {
	test.That(t, mustMatrix("FFFFFFFF2").IsEqualTopo(), "empty matrix equal")
	test.That(t, !mustMatrix("FFFFFFFF2").IsIntersects(), "empty matrix does not intersect")
	test.That(t, !mustMatrix("FFFFFF212").IsEqualTopo(), "one empty geometry is not equal")
}
