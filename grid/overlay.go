package grid

// Overlay is a copy-on-write view over a Grid: a sparse set of replaced cells
// on top of an untouched base. Out-of-bounds replacements are ignored so the
// overlay keeps the base's shape.
type Overlay[T any] struct {
	base *Grid[T]
	over map[Pos]T
}

// With returns a new overlay with p replaced by v. The receiver is unchanged,
// so earlier overlays remain valid for backtracking.
func (o *Overlay[T]) With(p Pos, v T) *Overlay[T] {
	next := &Overlay[T]{base: o.base, over: make(map[Pos]T, len(o.over)+1)}
	for k, val := range o.over {
		next.over[k] = val
	}
	if o.base.InBounds(p) {
		next.over[p] = v
	}
	return next
}

// Rows returns the base grid height.
func (o *Overlay[T]) Rows() int { return o.base.Rows() }

// Cols returns the base grid width.
func (o *Overlay[T]) Cols() int { return o.base.Cols() }

// Get returns the replaced value at p if any, else the base value.
func (o *Overlay[T]) Get(p Pos) (T, bool) {
	if v, ok := o.over[p]; ok {
		return v, true
	}
	return o.base.Get(p)
}
