package aggregate

import "math"

// grouped is an ordered bucket map: lookups go through the map, iteration
// follows insertion order of first encounter. The init callback runs only
// when the bucket is created, so descriptive fields set there are
// first-write-wins while numeric fields accumulate on every call site.
type grouped[T any] struct {
	order   []string
	buckets map[string]*T
}

func newGrouped[T any]() *grouped[T] {
	return &grouped[T]{buckets: make(map[string]*T)}
}

// at returns the bucket for key, creating it with init if absent.
func (g *grouped[T]) at(key string, init func() *T) *T {
	if b, ok := g.buckets[key]; ok {
		return b
	}
	b := init()
	g.buckets[key] = b
	g.order = append(g.order, key)
	return b
}

func (g *grouped[T]) rows() []T {
	out := make([]T, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, *g.buckets[k])
	}
	return out
}

// Sanitizers: anything negative or non-finite contributes 0.
func max0(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

func maxf(f float64) float64 {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// SafeDiv is the uniform derived-ratio guard: division by zero (or a
// non-finite result) resolves to 0 before anything reaches rendering.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	q := a / b
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}

func Round2(f float64) float64 { return float64(int64(f*100+0.5)) / 100 }
func Round3(f float64) float64 { return float64(int64(f*1000+0.5)) / 1000 }
