package relate

import "fmt"

// CoordPos is the position of a coordinate relative to a geometry: in its
// interior, on its boundary, or in its exterior. The zero value means the
// position has not been determined.
type CoordPos uint8

const (
	posUnset    CoordPos = iota
	Inside               // interior
	OnBoundary           // boundary
	Outside              // exterior
)

func (p CoordPos) String() string {
	switch p {
	case Inside:
		return "Inside"
	case OnBoundary:
		return "OnBoundary"
	case Outside:
		return "Outside"
	}
	return "Unset"
}

// direction indices for topology positions on an edge or node
const (
	posOn = iota
	posLeft
	posRight
)

// XY is a coordinate in the plane. It is comparable, so it can serve as a map
// key when noding edges together.
type XY struct {
	X, Y float64
}

func (p XY) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// line is a directed segment between two coordinates.
type line struct {
	start, end XY
}
