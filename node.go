package relate

import "sort"

// coordNode is a point of the topology graph, usually an endpoint or an
// intersection point of edges.
type coordNode struct {
	coord XY
	label label
}

func newCoordNode(coord XY) *coordNode {
	return &coordNode{coord: coord, label: newLineLabel()}
}

// isIsolated reports whether the node takes part in only one of the two
// geometries.
func (n *coordNode) isIsolated() bool {
	return n.label.geometryCount() == 1
}

func (n *coordNode) setLabelOnPosition(geomIndex int, pos CoordPos) {
	n.label.setOnPosition(geomIndex, pos)
}

// setLabelBoundary updates the node label for another boundary point merging
// into it, applying the mod-2 rule incrementally.
func (n *coordNode) setLabelBoundary(geomIndex int) {
	switch n.label.onPosition(geomIndex) {
	case OnBoundary:
		n.label.setOnPosition(geomIndex, Inside)
	case Inside:
		n.label.setOnPosition(geomIndex, OnBoundary)
	default:
		n.label.setOnPosition(geomIndex, OnBoundary)
	}
}

func (n *coordNode) updateMatrix(im *IntersectionMatrix) {
	im.setAtLeastIfInBoth(n.label.onPosition(0), n.label.onPosition(1), ZeroDimensional)
}

// nodeMap stores one node per coordinate together with per-node payload, such
// as the star of edge ends built around it. Iteration is in lexicographic
// coordinate order so results do not depend on map order.
type nodeMap[E any] struct {
	entries  map[XY]*nodeEntry[E]
	newEdges func() E
}

type nodeEntry[E any] struct {
	node  *coordNode
	edges E
}

func newNodeMap[E any](newEdges func() E) nodeMap[E] {
	return nodeMap[E]{entries: map[XY]*nodeEntry[E]{}, newEdges: newEdges}
}

// insert returns the entry for a coordinate, creating it on first use.
func (m *nodeMap[E]) insert(coord XY) *nodeEntry[E] {
	if entry, ok := m.entries[coord]; ok {
		return entry
	}
	entry := &nodeEntry[E]{node: newCoordNode(coord), edges: m.newEdges()}
	m.entries[coord] = entry
	return entry
}

func (m *nodeMap[E]) find(coord XY) (*nodeEntry[E], bool) {
	entry, ok := m.entries[coord]
	return entry, ok
}

func (m *nodeMap[E]) sorted() []*nodeEntry[E] {
	entries := make([]*nodeEntry[E], 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].node.coord, entries[j].node.coord
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return entries
}
