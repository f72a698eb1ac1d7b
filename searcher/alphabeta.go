package searcher

// pruner runs minimax over an explicit tree, with alpha-beta cut-offs when
// prune is set. Ties keep the first child seen: a later child replaces the
// best only when strictly better.
type pruner struct {
	prune   bool
	metrics MetricsCollector
}

func (p *pruner) search(node *Node, maximizing bool, alpha, beta float64) Value {
	p.metrics.AddNode()

	if node.IsLeaf() {
		return node.Value
	}

	if maximizing {
		best := Value{Score: MinScore, Leaf: NoLeaf}
		for i, child := range node.Children {
			v := p.search(child, false, alpha, beta)
			if v.Score > best.Score {
				best = v
			}
			alpha = max(alpha, best.Score)

			if p.prune && beta <= alpha {
				p.metrics.AddCutoff(len(node.Children) - i - 1)
				break
			}
		}
		return best
	}

	best := Value{Score: MaxScore, Leaf: NoLeaf}
	for i, child := range node.Children {
		v := p.search(child, true, alpha, beta)
		if v.Score < best.Score {
			best = v
		}
		beta = min(beta, best.Score)

		if p.prune && beta <= alpha {
			p.metrics.AddCutoff(len(node.Children) - i - 1)
			break
		}
	}
	return best
}

// AlphaBeta returns the minimax value of root with alpha-beta pruning,
// starting from the [MinScore, MaxScore] window. A nil root yields the
// sentinel for the side to move and NoLeaf.
func AlphaBeta(root *Node, maximizing bool) Value {
	return evaluateTree(root, maximizing, true, NewNoMetricsCollector())
}

// Minimax is AlphaBeta without pruning.
func Minimax(root *Node, maximizing bool) Value {
	return evaluateTree(root, maximizing, false, NewNoMetricsCollector())
}

func evaluateTree(root *Node, maximizing, prune bool, metrics MetricsCollector) Value {
	if root == nil {
		if maximizing {
			return Value{Score: MinScore, Leaf: NoLeaf}
		}
		return Value{Score: MaxScore, Leaf: NoLeaf}
	}
	p := pruner{prune: prune, metrics: metrics}
	return p.search(root, maximizing, MinScore, MaxScore)
}
