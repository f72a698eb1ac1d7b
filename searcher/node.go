package searcher

import "enclosure/game"

// Value pairs a leaf score with the index of the leaf that produced it.
type Value struct {
	Score float64
	Leaf  int
}

// Node is a position in the search tree. Children are kept in generation
// order; a node without children is a leaf and carries its Value.
type Node struct {
	Move     game.Move
	Value    Value
	Children []*Node
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the leaves below n in depth-first order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.walk(func(leaf *Node) {
		leaves = append(leaves, leaf)
	})
	return leaves
}

func (n *Node) walk(visit func(leaf *Node)) {
	if n.IsLeaf() {
		visit(n)
		return
	}
	for _, child := range n.Children {
		child.walk(visit)
	}
}

// TreeFromLeaves groups consecutive values under parents of at most
// branching children, level by level, until one root remains. With
// branching 2 and a power-of-two number of values this is the balanced
// binary layout where node i has children 2i and 2i+1.
func TreeFromLeaves(values []Value, branching int) *Node {
	if branching < 2 {
		panic("branching must be at least 2")
	}
	if len(values) == 0 {
		return nil
	}

	level := make([]*Node, len(values))
	for i, v := range values {
		level[i] = &Node{Value: v}
	}
	for len(level) > 1 {
		parents := make([]*Node, 0, (len(level)+branching-1)/branching)
		for start := 0; start < len(level); start += branching {
			end := min(start+branching, len(level))
			parents = append(parents, &Node{Children: level[start:end]})
		}
		level = parents
	}
	return level[0]
}
