// Package signal implements a small synchronous dataflow graph.
//
// A Graph holds named signals. Sources are set from outside; derived signals
// are computed from other signals with Map, Combine2, Combine3 or CombineAll.
// Derived signals follow combine-latest semantics: they stay undefined until
// every input holds a value and are recomputed whenever any input changes.
//
// Signals are kept in creation order, which is a topological order because a
// derived signal can only reference signals that already exist. Setting a
// source walks the signals after it once, so a node reachable through several
// paths is evaluated a single time per event and never sees a mix of old and
// new inputs.
//
// A Graph is driven from a single goroutine. Updates issued by subscribers
// while a pass is running are queued and applied after the pass completes.
package signal

import (
	"cardvalidator/pkg/serrors"
	"fmt"
)

// node is the type-erased part of a signal that the graph schedules.
type node struct {
	graph  *Graph
	name   string
	index  int
	inputs []*node

	hasValue bool
	seeded   bool

	// eval recomputes the value from the inputs; nil for sources.
	eval func()
	// emit delivers the current value to subscribers.
	emit func()
	// release drops all subscribers.
	release func()
}

func (n *node) ready() bool {
	for _, in := range n.inputs {
		if !in.hasValue {
			return false
		}
	}

	return true
}

func (n *node) triggered(fired []bool) bool {
	for _, in := range n.inputs {
		if fired[in.index] {
			return true
		}
	}

	return false
}

// Graph owns a set of signals and schedules their evaluation.
type Graph struct {
	nodes []*node
	names map[string]struct{}

	started bool
	closed  bool
	running bool
	pending []func()
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{names: make(map[string]struct{})}
}

func (g *Graph) add(name string, inputs ...*node) *node {
	if g.started {
		panic(fmt.Sprintf("signal: cannot add %q to a started graph", name))
	}
	if _, ok := g.names[name]; ok {
		panic(fmt.Sprintf("signal: duplicate signal name %q", name))
	}
	for _, in := range inputs {
		if in.graph != g {
			panic(fmt.Sprintf("signal: input %q of %q belongs to another graph", in.name, name))
		}
	}

	n := &node{graph: g, name: name, index: len(g.nodes), inputs: inputs}
	g.nodes = append(g.nodes, n)
	g.names[name] = struct{}{}

	return n
}

// Start emits every seeded value and evaluates what can be derived from them.
// It must be called once, after all signals and initial subscribers exist.
func (g *Graph) Start() error {
	switch {
	case g.closed:
		return serrors.With(serrors.ErrClosed, "graph is closed")
	case g.started:
		return serrors.With(serrors.ErrInternal, "graph already started")
	}
	g.started = true

	g.run(func() {
		fired := make([]bool, len(g.nodes))
		for _, n := range g.nodes {
			if g.closed {
				return
			}
			if n.seeded {
				fired[n.index] = true
				n.emit()
			}
			if n.eval != nil && n.triggered(fired) && n.ready() {
				n.eval()
				fired[n.index] = true
				n.emit()
			}
		}
	})

	return nil
}

// Close drops every subscriber. Later updates fail with serrors.ErrClosed.
// Closing twice is a no-op.
func (g *Graph) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.pending = nil
	for _, n := range g.nodes {
		n.release()
	}
}

// Closed reports whether Close has been called.
func (g *Graph) Closed() bool { return g.closed }

// run applies update and then drains updates queued while it ran.
func (g *Graph) run(update func()) {
	g.running = true
	defer func() {
		g.running = false
		g.pending = nil
	}()

	update()
	for len(g.pending) > 0 && !g.closed {
		next := g.pending[0]
		g.pending = g.pending[1:]
		next()
	}
}

// propagate re-evaluates everything downstream of from, in creation order.
func (g *Graph) propagate(from *node) {
	fired := make([]bool, len(g.nodes))
	fired[from.index] = true
	from.emit()

	for _, n := range g.nodes[from.index+1:] {
		if g.closed {
			return
		}
		if !n.triggered(fired) || !n.ready() {
			continue
		}
		n.eval()
		fired[n.index] = true
		n.emit()
	}
}

// Input is implemented by every signal and lets combinators accept both
// sources and derived signals.
type Input[T any] interface {
	base() *Signal[T]
}

type subscriber[T any] struct {
	fn func(T)
}

// Signal is a named value in a Graph.
type Signal[T any] struct {
	n     *node
	value T
	subs  []*subscriber[T]
}

func newSignal[T any](g *Graph, name string, inputs ...*node) *Signal[T] {
	s := &Signal[T]{}
	s.n = g.add(name, inputs...)
	s.n.emit = func() {
		// a subscriber may unsubscribe while being notified
		subs := append([]*subscriber[T](nil), s.subs...)
		for _, sub := range subs {
			sub.fn(s.value)
		}
	}
	s.n.release = func() { s.subs = nil }

	return s
}

func (s *Signal[T]) base() *Signal[T] { return s }

// Name returns the name the signal was registered with.
func (s *Signal[T]) Name() string { return s.n.name }

// Value returns the latest value and whether the signal has one yet.
func (s *Signal[T]) Value() (T, bool) { return s.value, s.n.hasValue }

// StartWith seeds the signal so it is defined, and emitted, when the graph starts.
func (s *Signal[T]) StartWith(v T) *Signal[T] {
	if s.n.graph.started {
		panic(fmt.Sprintf("signal: cannot seed %q after start", s.n.name))
	}
	s.value = v
	s.n.hasValue = true
	s.n.seeded = true

	return s
}

// Subscribe registers fn to receive every value emitted from now on. The
// returned function removes the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if s.n.graph.closed {
		return func() {}
	}
	sub := &subscriber[T]{fn: fn}
	s.subs = append(s.subs, sub)

	return func() {
		for i, other := range s.subs {
			if other == sub {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)

				return
			}
		}
	}
}

// Source is a signal whose value is set from outside the graph.
type Source[T any] struct {
	*Signal[T]
}

// NewSource registers a source on g. It has no value until seeded or set.
func NewSource[T any](g *Graph, name string) *Source[T] {
	return &Source[T]{Signal: newSignal[T](g, name)}
}

// StartWith seeds the source; see Signal.StartWith.
func (s *Source[T]) StartWith(v T) *Source[T] {
	s.Signal.StartWith(v)

	return s
}

// Set stores v and synchronously recomputes everything downstream. When
// called from a subscriber during a pass, the update is queued instead.
func (s *Source[T]) Set(v T) error {
	g := s.n.graph
	switch {
	case g.closed:
		return serrors.With(serrors.ErrClosed, "could not set %q: graph is closed", s.n.name)
	case !g.started:
		return serrors.With(serrors.ErrInternal, "could not set %q: graph not started", s.n.name)
	}

	update := func() {
		s.value = v
		s.n.hasValue = true
		g.propagate(s.n)
	}
	if g.running {
		g.pending = append(g.pending, update)

		return nil
	}
	g.run(update)

	return nil
}

// Map derives a signal by applying f to every value of in.
func Map[A, R any](name string, in Input[A], f func(A) R) *Signal[R] {
	a := in.base()
	s := newSignal[R](a.n.graph, name, a.n)
	s.n.eval = func() {
		s.value = f(a.value)
		s.n.hasValue = true
	}

	return s
}

// Combine2 derives a signal from the latest values of a and b.
func Combine2[A, B, R any](name string, a Input[A], b Input[B], f func(A, B) R) *Signal[R] {
	sa, sb := a.base(), b.base()
	s := newSignal[R](sa.n.graph, name, sa.n, sb.n)
	s.n.eval = func() {
		s.value = f(sa.value, sb.value)
		s.n.hasValue = true
	}

	return s
}

// Combine3 derives a signal from the latest values of a, b and c.
func Combine3[A, B, C, R any](name string, a Input[A], b Input[B], c Input[C], f func(A, B, C) R) *Signal[R] {
	sa, sb, sc := a.base(), b.base(), c.base()
	s := newSignal[R](sa.n.graph, name, sa.n, sb.n, sc.n)
	s.n.eval = func() {
		s.value = f(sa.value, sb.value, sc.value)
		s.n.hasValue = true
	}

	return s
}

// CombineAll derives a signal from the latest values of all ins, passed to f
// in the order given.
func CombineAll[T, R any](name string, ins []Input[T], f func([]T) R) *Signal[R] {
	if len(ins) == 0 {
		panic(fmt.Sprintf("signal: %q needs at least one input", name))
	}
	bases := make([]*Signal[T], len(ins))
	nodes := make([]*node, len(ins))
	for i, in := range ins {
		bases[i] = in.base()
		nodes[i] = bases[i].n
	}

	s := newSignal[R](bases[0].n.graph, name, nodes...)
	s.n.eval = func() {
		values := make([]T, len(bases))
		for i, b := range bases {
			values[i] = b.value
		}
		s.value = f(values)
		s.n.hasValue = true
	}

	return s
}
