package searcher

import (
	"context"
	"fmt"

	"enclosure/game"
	"enclosure/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(s *Searcher)

// Searcher picks the computer's move by enumerating every placement sequence
// up to a fixed number of plies, scoring each leaf with an Evaluate, and
// running alpha-beta over the resulting tree.
type Searcher struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	prune      bool
	newMetrics func() MetricsCollector
}

// WithDepth sets the number of plies, counting the computer's own move.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines expands that many root branches concurrently.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithPruning(prune bool) Option {
	return func(s *Searcher) {
		s.prune = prune
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.newMetrics = NewMetricsCollector
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:      meta.SEARCH_DEPTH,
		goroutines: 1,
		evaluate:   game.EvaluatePlacement,
		prune:      true,
		newMetrics: NewNoMetricsCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// FindMove chooses the computer's reply on b. b is not modified. When the
// tree has no finite leaf the decision comes from Fallback instead.
// ctx is checked between sibling expansions. Each call collects its own
// metrics, so one Searcher may serve concurrent callers.
func (s *Searcher) FindMove(ctx context.Context, b *game.Board) (Decision, Metrics, error) {
	if len(b.Empties()) == 0 {
		return Decision{}, Metrics{}, ErrSearchExhausted
	}

	metrics := s.newMetrics()
	metrics.Start(s.depth, s.goroutines)

	root, err := s.expand(ctx, b, metrics)
	if err != nil {
		return Decision{}, Metrics{}, fmt.Errorf("expanding search tree: %w", err)
	}
	origins := number(root)

	p := pruner{prune: s.prune, metrics: metrics}
	best := p.search(root, true, MinScore, MaxScore)

	if best.Leaf == NoLeaf {
		metrics.SetFallback(true)
		move, err := Fallback(b)
		if err != nil {
			return Decision{}, Metrics{}, err
		}
		log.Warn().Int("leaves", len(origins)).Msgf("search found no finite leaf, falling back to rules: %s", move)
		return Decision{Move: move, Leaf: NoLeaf, Source: SourceFallback}, metrics.Complete(), nil
	}

	decision := Decision{
		Move:   origins[best.Leaf],
		Score:  best.Score,
		Leaf:   best.Leaf,
		Source: SourceSearch,
	}
	log.Debug().
		Int("leaves", len(origins)).
		Int("leaf", best.Leaf).
		Float64("score", best.Score).
		Msgf("search selected %s", decision.Move)
	return decision, metrics.Complete(), nil
}

// expand builds the tree rooted at b with the computer to move.
func (s *Searcher) expand(ctx context.Context, b *game.Board, metrics MetricsCollector) (*Node, error) {
	empties := b.Empties()
	root := &Node{Children: make([]*Node, len(empties))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.goroutines)
	for i, c := range empties {
		move := game.Move{X: c.X, Y: c.Y, Player: game.Computer}
		g.Go(func() error {
			child, err := s.grow(ctx, b, move, 0, metrics)
			if err != nil {
				return err
			}
			root.Children[i] = child
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return root, nil
}

// grow plays m on a copy of b and either scores it as a leaf or expands
// every reply. Leaf scores are from the computer's side.
func (s *Searcher) grow(ctx context.Context, b *game.Board, m game.Move, ply int, metrics MetricsCollector) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next := b.Snapshot()
	if _, err := game.Play(next, m); err != nil {
		return nil, err
	}

	node := &Node{Move: m}
	empties := next.Empties()
	if ply+1 >= s.depth || len(empties) == 0 {
		score := s.evaluate(next, m)
		if m.Player != game.Computer {
			score = -score
		}
		node.Value = Value{Score: score}
		metrics.AddLeaf()
		return node, nil
	}

	node.Children = make([]*Node, 0, len(empties))
	for _, c := range empties {
		child, err := s.grow(ctx, next, game.Move{X: c.X, Y: c.Y, Player: m.Player.Opponent()}, ply+1, metrics)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// number assigns leaf indices in depth-first order and returns, per leaf,
// the root move it descends from.
func number(root *Node) []game.Move {
	var origins []game.Move
	for _, top := range root.Children {
		top.walk(func(leaf *Node) {
			leaf.Value.Leaf = len(origins)
			origins = append(origins, top.Move)
		})
	}
	return origins
}
