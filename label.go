package relate

// topologyPosition records the position of a graph component relative to one
// input geometry. Components of an area geometry carry positions for the
// component itself and for the regions on its left and right; lines and points
// carry only the on position. An unset entry means the position is not yet
// known.
type topologyPosition struct {
	area bool
	pos  [3]CoordPos // indexed by posOn, posLeft, posRight
}

func lineOrPointPosition(on CoordPos) topologyPosition {
	return topologyPosition{pos: [3]CoordPos{on, posUnset, posUnset}}
}

func areaPosition(on, left, right CoordPos) topologyPosition {
	return topologyPosition{area: true, pos: [3]CoordPos{on, left, right}}
}

func (t *topologyPosition) get(direction int) CoordPos {
	if !t.area && direction != posOn {
		return posUnset
	}
	return t.pos[direction]
}

func (t *topologyPosition) isEmpty() bool {
	if t.area {
		return t.pos[posOn] == posUnset && t.pos[posLeft] == posUnset && t.pos[posRight] == posUnset
	}
	return t.pos[posOn] == posUnset
}

func (t *topologyPosition) isAnyEmpty() bool {
	if t.area {
		return t.pos[posOn] == posUnset || t.pos[posLeft] == posUnset || t.pos[posRight] == posUnset
	}
	return t.pos[posOn] == posUnset
}

func (t *topologyPosition) setAllPositions(pos CoordPos) {
	t.pos[posOn] = pos
	if t.area {
		t.pos[posLeft] = pos
		t.pos[posRight] = pos
	}
}

func (t *topologyPosition) setAllPositionsIfEmpty(pos CoordPos) {
	if t.pos[posOn] == posUnset {
		t.pos[posOn] = pos
	}
	if t.area {
		if t.pos[posLeft] == posUnset {
			t.pos[posLeft] = pos
		}
		if t.pos[posRight] == posUnset {
			t.pos[posRight] = pos
		}
	}
}

func (t *topologyPosition) set(direction int, pos CoordPos) {
	t.pos[direction] = pos
}

func (t *topologyPosition) flip() {
	if t.area {
		t.pos[posLeft], t.pos[posRight] = t.pos[posRight], t.pos[posLeft]
	}
}

// label pairs a topologyPosition per input geometry.
type label struct {
	positions [2]topologyPosition
}

func newLineLabel() label {
	return label{positions: [2]topologyPosition{lineOrPointPosition(posUnset), lineOrPointPosition(posUnset)}}
}

func newAreaLabel() label {
	return label{positions: [2]topologyPosition{
		areaPosition(posUnset, posUnset, posUnset),
		areaPosition(posUnset, posUnset, posUnset),
	}}
}

// newLabelFor builds a label whose shape matches position, setting only the
// geometry at geomIndex.
func newLabelFor(geomIndex int, position topologyPosition) label {
	var l label
	if position.area {
		l = newAreaLabel()
	} else {
		l = newLineLabel()
	}
	l.positions[geomIndex] = position
	return l
}

func (l *label) flip() {
	l.positions[0].flip()
	l.positions[1].flip()
}

func (l *label) position(geomIndex, direction int) CoordPos {
	return l.positions[geomIndex].get(direction)
}

func (l *label) onPosition(geomIndex int) CoordPos {
	return l.positions[geomIndex].get(posOn)
}

func (l *label) setPosition(geomIndex, direction int, pos CoordPos) {
	l.positions[geomIndex].set(direction, pos)
}

func (l *label) setOnPosition(geomIndex int, pos CoordPos) {
	l.positions[geomIndex].set(posOn, pos)
}

func (l *label) setAllPositions(geomIndex int, pos CoordPos) {
	l.positions[geomIndex].setAllPositions(pos)
}

func (l *label) setAllPositionsIfEmpty(geomIndex int, pos CoordPos) {
	l.positions[geomIndex].setAllPositionsIfEmpty(pos)
}

// geometryCount is the number of geometries this label has any position for.
func (l *label) geometryCount() int {
	n := 0
	if !l.positions[0].isEmpty() {
		n++
	}
	if !l.positions[1].isEmpty() {
		n++
	}
	return n
}

func (l *label) isEmpty(geomIndex int) bool {
	return l.positions[geomIndex].isEmpty()
}

func (l *label) isAnyEmpty(geomIndex int) bool {
	return l.positions[geomIndex].isAnyEmpty()
}

func (l *label) isArea() bool {
	return l.positions[0].area || l.positions[1].area
}

func (l *label) isGeomArea(geomIndex int) bool {
	return l.positions[geomIndex].area
}

func (l *label) isLine(geomIndex int) bool {
	return !l.positions[geomIndex].area
}
