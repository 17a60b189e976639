package relate

import (
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

// segmentIntersector intersects pairs of edge segments and records the
// results on the edges. It also tracks whether any proper intersection was
// found, and whether one lies in the interior of both geometries.
type segmentIntersector struct {
	intersect            func(p, q line) (lineIntersection, bool)
	sameGeometry         bool
	hasProper            bool
	properPoint          XY
	hasProperInterior    bool
	boundaryNodes        [2][]XY
	useBoundaryNodes     bool
}

func newSegmentIntersector(sameGeometry bool) *segmentIntersector {
	return &segmentIntersector{intersect: intersectLines, sameGeometry: sameGeometry}
}

func (s *segmentIntersector) setBoundaryNodes(nodes0, nodes1 []XY) {
	s.boundaryNodes = [2][]XY{nodes0, nodes1}
	s.useBoundaryNodes = true
}

func (s *segmentIntersector) addIntersections(e0 *edge, segIndex0 int, e1 *edge, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	seg0 := line{e0.coords[segIndex0], e0.coords[segIndex0+1]}
	seg1 := line{e1.coords[segIndex1], e1.coords[segIndex1+1]}
	inx, ok := s.intersect(seg0, seg1)
	if !ok {
		return
	}
	if !s.sameGeometry {
		e0.isolated = false
		e1.isolated = false
	}
	if s.isTrivialIntersection(inx, e0, segIndex0, e1, segIndex1) {
		return
	}
	if s.sameGeometry || !inx.proper {
		e0.addIntersections(inx, seg0, segIndex0)
		e1.addIntersections(inx, seg1, segIndex1)
	}
	if inx.proper {
		s.hasProper = true
		s.properPoint = inx.point
		if !s.isBoundaryPoint(inx.point) {
			s.hasProperInterior = true
		}
	}
}

// isTrivialIntersection filters out the point shared by adjacent segments of
// one edge, including the wraparound pair of a closed edge.
func (s *segmentIntersector) isTrivialIntersection(inx lineIntersection, e0 *edge, segIndex0 int, e1 *edge, segIndex1 int) bool {
	if e0 != e1 || inx.collinear {
		return false
	}
	if segIndex0-segIndex1 == 1 || segIndex1-segIndex0 == 1 {
		return true
	}
	if e0.isClosed() {
		maxSegmentIndex := len(e0.coords) - 2
		if (segIndex0 == 0 && segIndex1 == maxSegmentIndex) ||
			(segIndex1 == 0 && segIndex0 == maxSegmentIndex) {
			return true
		}
	}
	return false
}

func (s *segmentIntersector) isBoundaryPoint(coord XY) bool {
	if !s.useBoundaryNodes {
		return false
	}
	for _, nodes := range s.boundaryNodes {
		for _, node := range nodes {
			if node == coord {
				return true
			}
		}
	}
	return false
}

// edgeSetIntersector finds candidate segment pairs within its own edge set,
// or between its set and another one, and hands them to a segmentIntersector.
type edgeSetIntersector interface {
	computeIntersectionsWithinSet(checkForSelfIntersectingEdges bool, si *segmentIntersector)
	computeIntersectionsBetweenSets(edges []*edge, si *segmentIntersector)
}

// indexedIntersectorThreshold is the segment count below which the brute
// force scan beats building a spatial index.
const indexedIntersectorThreshold = 20

// simpleEdgeSetIntersector tests every segment pair.
type simpleEdgeSetIntersector struct {
	edges []*edge
}

func (s simpleEdgeSetIntersector) computeIntersectionsWithinSet(checkForSelfIntersectingEdges bool, si *segmentIntersector) {
	for _, e0 := range s.edges {
		for _, e1 := range s.edges {
			if checkForSelfIntersectingEdges || e0 != e1 {
				computeSegmentPairs(e0, e1, si)
			}
		}
	}
}

func (s simpleEdgeSetIntersector) computeIntersectionsBetweenSets(edges []*edge, si *segmentIntersector) {
	for _, e0 := range edges {
		for _, e1 := range s.edges {
			computeSegmentPairs(e0, e1, si)
		}
	}
}

func computeSegmentPairs(e0, e1 *edge, si *segmentIntersector) {
	for i0 := 0; i0+1 < len(e0.coords); i0++ {
		for i1 := 0; i1+1 < len(e1.coords); i1++ {
			si.addIntersections(e0, i0, e1, i1)
		}
	}
}

// indexedEdgeSetIntersector bulk loads its segments into an R-tree and only
// tests pairs with overlapping bounding boxes. The tree is built once and
// survives across the self and cross intersection passes, since edge
// coordinates never change after graph construction.
type indexedEdgeSetIntersector struct {
	refs []segmentRef
	tree *rtree.RTree
}

type segmentRef struct {
	edge         *edge
	segmentIndex int
}

func newIndexedEdgeSetIntersector(edges []*edge) *indexedEdgeSetIntersector {
	var refs []segmentRef
	var items []rtree.BulkItem
	for _, e := range edges {
		for i := 0; i+1 < len(e.coords); i++ {
			items = append(items, rtree.BulkItem{
				Box:      segmentBox(e.coords[i], e.coords[i+1]),
				RecordID: len(refs),
			})
			refs = append(refs, segmentRef{e, i})
		}
	}
	return &indexedEdgeSetIntersector{refs: refs, tree: rtree.BulkLoad(items)}
}

func segmentBox(a, b XY) rtree.Box {
	return rtree.Box{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

func (x *indexedEdgeSetIntersector) computeIntersectionsWithinSet(checkForSelfIntersectingEdges bool, si *segmentIntersector) {
	for i, ref := range x.refs {
		x.tree.RangeSearch(segmentBox(ref.edge.coords[ref.segmentIndex], ref.edge.coords[ref.segmentIndex+1]), func(j int) error {
			// each unordered pair once
			if j <= i {
				return nil
			}
			other := x.refs[j]
			if !checkForSelfIntersectingEdges && ref.edge == other.edge {
				return nil
			}
			si.addIntersections(ref.edge, ref.segmentIndex, other.edge, other.segmentIndex)
			return nil
		})
	}
}

func (x *indexedEdgeSetIntersector) computeIntersectionsBetweenSets(edges []*edge, si *segmentIntersector) {
	for _, e0 := range edges {
		for i := 0; i+1 < len(e0.coords); i++ {
			x.tree.RangeSearch(segmentBox(e0.coords[i], e0.coords[i+1]), func(j int) error {
				si.addIntersections(e0, i, x.refs[j].edge, x.refs[j].segmentIndex)
				return nil
			})
		}
	}
}
