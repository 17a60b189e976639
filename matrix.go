package relate

import "fmt"

// IntersectionMatrix is a DE-9IM matrix: the dimension of the intersection of
// the interior, boundary and exterior of one geometry with those of another.
// Rows index the first geometry, columns the second, both in the order
// interior, boundary, exterior.
type IntersectionMatrix [3][3]Dimensions

func (p CoordPos) index() int {
	return int(p) - 1
}

// emptyDisjointMatrix is the matrix of two disjoint non-empty geometries before
// any dimensions are filled in: their exteriors always intersect in the plane.
func emptyDisjointMatrix() IntersectionMatrix {
	var im IntersectionMatrix
	im.set(Outside, Outside, TwoDimensional)
	return im
}

// Get returns the entry for a pair of positions, each one of Inside,
// OnBoundary or Outside.
func (im *IntersectionMatrix) Get(posA, posB CoordPos) Dimensions {
	return im[posA.index()][posB.index()]
}

func (im *IntersectionMatrix) set(posA, posB CoordPos, dim Dimensions) {
	im[posA.index()][posB.index()] = dim
}

func (im *IntersectionMatrix) setAtLeast(posA, posB CoordPos, minDim Dimensions) {
	if im[posA.index()][posB.index()] < minDim {
		im[posA.index()][posB.index()] = minDim
	}
}

// setAtLeastIfInBoth raises an entry only when both positions are known.
func (im *IntersectionMatrix) setAtLeastIfInBoth(posA, posB CoordPos, minDim Dimensions) {
	if posA == posUnset || posB == posUnset {
		return
	}
	im.setAtLeast(posA, posB, minDim)
}

func (im *IntersectionMatrix) setAtLeastFromString(dimensions string) {
	if len(dimensions) != 9 {
		panic(fmt.Sprintf("invalid dimensions string %q", dimensions))
	}
	for i, c := range []byte(dimensions) {
		dim, err := parseDimension(c)
		if err != nil {
			panic(err)
		}
		if im[i/3][i%3] < dim {
			im[i/3][i%3] = dim
		}
	}
}

// Transposed swaps the roles of the two geometries.
func (im IntersectionMatrix) Transposed() IntersectionMatrix {
	var t IntersectionMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = im[i][j]
		}
	}
	return t
}

// String renders the matrix as its nine DE-9IM characters in row-major order,
// for example "212101212".
func (im IntersectionMatrix) String() string {
	var buf [9]byte
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			buf[3*i+j] = im[i][j].String()[0]
		}
	}
	return string(buf[:])
}

// ParseMatrix reads a nine character DE-9IM string such as "FF2FF1212" into a
// matrix. Valid characters are 0, 1, 2 and F.
func ParseMatrix(str string) (IntersectionMatrix, error) {
	var im IntersectionMatrix
	if len(str) != 9 {
		return im, fmt.Errorf("expected 9 dimension characters, got %q", str)
	}
	for i := 0; i < 9; i++ {
		dim, err := parseDimension(str[i])
		if err != nil {
			return im, err
		}
		im[i/3][i%3] = dim
	}
	return im, nil
}

func parseDimension(c byte) (Dimensions, error) {
	switch c {
	case '0':
		return ZeroDimensional, nil
	case '1':
		return OneDimensional, nil
	case '2':
		return TwoDimensional, nil
	case 'F', 'f':
		return Empty, nil
	}
	return Empty, fmt.Errorf("invalid dimension character %q", c)
}

// Matches checks the matrix against a DE-9IM pattern. Pattern characters are
// 0, 1 and 2 for an exact dimension, T for any non-empty entry, F for an empty
// entry, and * for any entry.
func (im IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, fmt.Errorf("expected 9 pattern characters, got %q", pattern)
	}
	for i := 0; i < 9; i++ {
		dim := im[i/3][i%3]
		switch c := pattern[i]; c {
		case '*':
		case 'T', 't':
			if dim == Empty {
				return false, nil
			}
		case 'F', 'f':
			if dim != Empty {
				return false, nil
			}
		case '0', '1', '2':
			if dim != Dimensions(c-'0'+1) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("invalid pattern character %q", c)
		}
	}
	return true, nil
}

// IsDisjoint reports that the geometries have no point in common.
func (im IntersectionMatrix) IsDisjoint() bool {
	return im.Get(Inside, Inside) == Empty &&
		im.Get(Inside, OnBoundary) == Empty &&
		im.Get(OnBoundary, Inside) == Empty &&
		im.Get(OnBoundary, OnBoundary) == Empty
}

// IsIntersects reports that the geometries have at least one point in common.
func (im IntersectionMatrix) IsIntersects() bool {
	return !im.IsDisjoint()
}

// IsWithin reports that the first geometry lies completely inside the second.
func (im IntersectionMatrix) IsWithin() bool {
	return im.Get(Inside, Inside) != Empty &&
		im.Get(Inside, Outside) == Empty &&
		im.Get(OnBoundary, Outside) == Empty
}

// IsContains reports that the second geometry lies completely inside the
// first.
func (im IntersectionMatrix) IsContains() bool {
	return im.Get(Inside, Inside) != Empty &&
		im.Get(Outside, Inside) == Empty &&
		im.Get(Outside, OnBoundary) == Empty
}

// IsEqualTopo reports that the geometries cover the same point set. Two empty
// geometries are topologically equal.
func (im IntersectionMatrix) IsEqualTopo() bool {
	if im == emptyDisjointMatrix() {
		return true
	}
	return im.Get(Inside, Inside) != Empty &&
		im.Get(Inside, Outside) == Empty &&
		im.Get(Outside, Inside) == Empty &&
		im.Get(OnBoundary, Outside) == Empty &&
		im.Get(Outside, OnBoundary) == Empty
}

// IsCoveredBy reports that every point of the first geometry is a point of the
// second.
func (im IntersectionMatrix) IsCoveredBy() bool {
	intersects := im.Get(Inside, Inside) != Empty ||
		im.Get(Inside, OnBoundary) != Empty ||
		im.Get(OnBoundary, Inside) != Empty ||
		im.Get(OnBoundary, OnBoundary) != Empty
	return intersects &&
		im.Get(Inside, Outside) == Empty &&
		im.Get(OnBoundary, Outside) == Empty
}

// IsCovers reports that every point of the second geometry is a point of the
// first.
func (im IntersectionMatrix) IsCovers() bool {
	intersects := im.Get(Inside, Inside) != Empty ||
		im.Get(Inside, OnBoundary) != Empty ||
		im.Get(OnBoundary, Inside) != Empty ||
		im.Get(OnBoundary, OnBoundary) != Empty
	return intersects &&
		im.Get(Outside, Inside) == Empty &&
		im.Get(Outside, OnBoundary) == Empty
}

// IsTouches reports that the geometries meet only at boundary points.
func (im IntersectionMatrix) IsTouches() bool {
	return im.Get(Inside, Inside) == Empty &&
		(im.Get(Inside, OnBoundary) != Empty ||
			im.Get(OnBoundary, Inside) != Empty ||
			im.Get(OnBoundary, OnBoundary) != Empty)
}

// IsCrosses reports that the geometries share some but not all interior
// points, and the shared part has a lower dimension than the higher
// dimensional of the two. The geometry dimensions are recovered from the
// matrix itself.
func (im IntersectionMatrix) IsCrosses() bool {
	dimA := im.dimensionOfA()
	dimB := im.dimensionOfB()
	switch {
	case dimA < dimB:
		return im.Get(Inside, Inside) != Empty && im.Get(Inside, Outside) != Empty
	case dimA > dimB:
		return im.Get(Inside, Inside) != Empty && im.Get(Outside, Inside) != Empty
	case dimA == OneDimensional && dimB == OneDimensional:
		return im.Get(Inside, Inside) == ZeroDimensional
	}
	return false
}

// IsOverlaps reports that the geometries share the same dimension, each has
// interior points the other lacks, and their interiors intersect in that same
// dimension.
func (im IntersectionMatrix) IsOverlaps() bool {
	dimA := im.dimensionOfA()
	dimB := im.dimensionOfB()
	if dimA != dimB {
		return false
	}
	switch dimA {
	case ZeroDimensional, TwoDimensional:
		return im.Get(Inside, Inside) != Empty &&
			im.Get(Inside, Outside) != Empty &&
			im.Get(Outside, Inside) != Empty
	case OneDimensional:
		return im.Get(Inside, Inside) == OneDimensional &&
			im.Get(Inside, Outside) != Empty &&
			im.Get(Outside, Inside) != Empty
	}
	return false
}

func (im IntersectionMatrix) dimensionOfA() Dimensions {
	max := Empty
	for _, row := range [2]CoordPos{Inside, OnBoundary} {
		for _, col := range [3]CoordPos{Inside, OnBoundary, Outside} {
			if d := im.Get(row, col); max < d {
				max = d
			}
		}
	}
	return max
}

func (im IntersectionMatrix) dimensionOfB() Dimensions {
	max := Empty
	for _, col := range [2]CoordPos{Inside, OnBoundary} {
		for _, row := range [3]CoordPos{Inside, OnBoundary, Outside} {
			if d := im.Get(row, col); max < d {
				max = d
			}
		}
	}
	return max
}
