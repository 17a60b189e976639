package relate

// edgeEndBundle collects all edge ends leaving a node in the same direction.
// Their labels merge into a single label for the bundle.
type edgeEndBundle struct {
	ends  []edgeEnd
	label label
}

func newEdgeEndBundle(end edgeEnd) *edgeEndBundle {
	return &edgeEndBundle{ends: []edgeEnd{end}}
}

func (b *edgeEndBundle) coordinate() XY {
	return b.ends[0].origin
}

func (b *edgeEndBundle) insert(end edgeEnd) {
	b.ends = append(b.ends, end)
}

func (b *edgeEndBundle) computeLabel() {
	isArea := false
	for i := range b.ends {
		if b.ends[i].label.isArea() {
			isArea = true
			break
		}
	}
	if isArea {
		b.label = newAreaLabel()
	} else {
		b.label = newLineLabel()
	}
	for geomIndex := 0; geomIndex < 2; geomIndex++ {
		b.computeLabelOn(geomIndex)
		if isArea {
			b.computeLabelSide(geomIndex, posLeft)
			b.computeLabelSide(geomIndex, posRight)
		}
	}
}

// computeLabelOn merges the on positions of the bundled ends. Boundary counts
// merge with the mod-2 rule, matching how boundary points merge in the graph.
func (b *edgeEndBundle) computeLabelOn(geomIndex int) {
	boundaryCount := 0
	foundInterior := false
	for i := range b.ends {
		switch b.ends[i].label.onPosition(geomIndex) {
		case OnBoundary:
			boundaryCount++
		case Inside:
			foundInterior = true
		}
	}
	pos := posUnset
	if foundInterior {
		pos = Inside
	}
	if boundaryCount > 0 {
		pos = determineBoundary(boundaryCount)
	}
	if pos != posUnset {
		b.label.setOnPosition(geomIndex, pos)
	}
}

// computeLabelSide resolves one side of the bundle. An interior position from
// any end wins outright; otherwise an exterior position is kept.
func (b *edgeEndBundle) computeLabelSide(geomIndex, side int) {
	for i := range b.ends {
		if !b.ends[i].label.isGeomArea(geomIndex) {
			continue
		}
		switch b.ends[i].label.position(geomIndex, side) {
		case Inside:
			b.label.setPosition(geomIndex, side, Inside)
			return
		case Outside:
			b.label.setPosition(geomIndex, side, Outside)
		}
	}
}

func (b *edgeEndBundle) updateMatrix(im *IntersectionMatrix) {
	updateMatrixFromLabel(b.label, im)
}

// edgeEndBundleStar is the set of bundles around a node, kept sorted
// counterclockwise by direction.
type edgeEndBundleStar struct {
	bundles []*edgeEndBundle
	// cached point-in-area positions of the node, per geometry
	areaPosition [2]CoordPos
}

func newEdgeEndBundleStar() *edgeEndBundleStar {
	return &edgeEndBundleStar{}
}

// insert adds an edge end, bundling it with an existing bundle of the same
// direction or splicing in a new bundle at the sorted position.
func (s *edgeEndBundleStar) insert(end edgeEnd) {
	for i, b := range s.bundles {
		switch end.compareDirection(&b.ends[0]) {
		case 0:
			b.insert(end)
			return
		case -1:
			s.bundles = append(s.bundles, nil)
			copy(s.bundles[i+1:], s.bundles[i:])
			s.bundles[i] = newEdgeEndBundle(end)
			return
		}
	}
	s.bundles = append(s.bundles, newEdgeEndBundle(end))
}

// computeLabeling labels every bundle around the node, propagates area side
// positions between neighboring bundles, and fills the remaining unknown
// positions by locating the node in each geometry.
func (s *edgeEndBundleStar) computeLabeling(graphA, graphB *geometryGraph, warn WarnFunc) {
	for _, b := range s.bundles {
		b.computeLabel()
	}
	s.propagateSideLabels(0, warn)
	s.propagateSideLabels(1, warn)

	// A line edge of a geometry labeled on that geometry's boundary marks a
	// dimensional collapse, such as a polygon degenerated to a line. Unknown
	// positions of such a geometry resolve to the exterior.
	var hasDimensionalCollapse [2]bool
	for _, b := range s.bundles {
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if b.label.isLine(geomIndex) && b.label.onPosition(geomIndex) == OnBoundary {
				hasDimensionalCollapse[geomIndex] = true
			}
		}
	}
	graphs := [2]*geometryGraph{graphA, graphB}
	for _, b := range s.bundles {
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if !b.label.isAnyEmpty(geomIndex) {
				continue
			}
			pos := Outside
			if !hasDimensionalCollapse[geomIndex] {
				pos = s.locateInArea(geomIndex, b.coordinate(), graphs[geomIndex])
			}
			b.label.setAllPositionsIfEmpty(geomIndex, pos)
		}
	}
}

// locateInArea finds the node's position relative to a geometry, for bundles
// that got no label from the geometry's edges. Only areal geometries can
// contain such a node; anything else puts it in the exterior.
func (s *edgeEndBundleStar) locateInArea(geomIndex int, coord XY, graph *geometryGraph) CoordPos {
	if s.areaPosition[geomIndex] == posUnset {
		if Dimensionality(graph.geometry) == TwoDimensional {
			s.areaPosition[geomIndex] = CoordinatePosition(coord, graph.geometry)
		} else {
			s.areaPosition[geomIndex] = Outside
		}
	}
	return s.areaPosition[geomIndex]
}

// propagateSideLabels spreads known side positions around the star. Moving
// counterclockwise from one bundle to the next crosses from the right side of
// an edge to the left side of the next, so those positions must agree.
func (s *edgeEndBundleStar) propagateSideLabels(geomIndex int, warn WarnFunc) {
	startPos := posUnset
	for _, b := range s.bundles {
		if b.label.isGeomArea(geomIndex) {
			if left := b.label.position(geomIndex, posLeft); left != posUnset {
				startPos = left
			}
		}
	}
	if startPos == posUnset {
		return
	}

	currPos := startPos
	for _, b := range s.bundles {
		if b.label.onPosition(geomIndex) == posUnset {
			b.label.setOnPosition(geomIndex, currPos)
		}
		if !b.label.isGeomArea(geomIndex) {
			continue
		}
		leftPos := b.label.position(geomIndex, posLeft)
		rightPos := b.label.position(geomIndex, posRight)
		if rightPos != posUnset {
			if rightPos != currPos {
				warn("side position conflict at %v", b.coordinate())
			}
			if leftPos == posUnset {
				warn("single empty side at %v", b.coordinate())
				leftPos = currPos
			}
			currPos = leftPos
		} else {
			b.label.setPosition(geomIndex, posRight, currPos)
			b.label.setPosition(geomIndex, posLeft, currPos)
		}
	}
}

func (s *edgeEndBundleStar) updateMatrix(im *IntersectionMatrix) {
	for _, b := range s.bundles {
		b.updateMatrix(im)
	}
}

// determineBoundary applies the mod-2 rule: a point is a boundary point when
// it occurs in an odd number of component boundaries.
func determineBoundary(boundaryCount int) CoordPos {
	if boundaryCount%2 == 1 {
		return OnBoundary
	}
	return Inside
}
