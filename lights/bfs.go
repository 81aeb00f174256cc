package lights

import "fmt"

// queueItem pairs a light configuration with its press count.
type queueItem struct {
	state Mask
	depth int
}

// edge records how a state was first reached.
type edge struct {
	from   Mask
	button int // -1 for the root
}

// walker encapsulates mutable search state.
type walker struct {
	target  Mask
	buttons []Mask
	opts    Options
	queue   []queueItem
	parent  map[Mask]edge
	visited int
}

// FewestPresses returns the shortest sequence of button presses that turns
// the all-off panel into target. Each press XORs one button mask into the
// state. A target of zero is reached with no presses.
func FewestPresses(target Mask, buttons []Mask, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Initialize walker; the root is the all-off panel.
	w := &walker{
		target:  target,
		buttons: buttons,
		opts:    o,
		queue:   make([]queueItem, 0, 64),
		parent:  make(map[Mask]edge, 64),
	}
	w.enqueue(0, 0, edge{button: -1})

	// 3) Run the main loop.
	return w.loop()
}

func (w *walker) enqueue(state Mask, depth int, via edge) {
	w.parent[state] = via
	w.queue = append(w.queue, queueItem{state: state, depth: depth})
}

// loop drains the queue until the target is dequeued, the graph is
// exhausted, a hook fails or the context is cancelled.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		// 1) Honour cancellation between dequeues.
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// 2) Dequeue the oldest state and fire the hook.
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.visited++
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return nil, fmt.Errorf("lights: OnVisit error at %b: %w", item.state, err)
		}
		// 3) First dequeue of the target is a shortest sequence.
		if item.state == w.target {
			return &Result{
				Presses: item.depth,
				Buttons: w.sequence(item.state),
				Visited: w.visited,
			}, nil
		}
		// 4) Respect the depth limit, then expand unseen neighbours.
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for i, b := range w.buttons {
			next := item.state.Toggle(b)
			if _, seen := w.parent[next]; seen {
				continue
			}
			w.enqueue(next, item.depth+1, edge{from: item.state, button: i})
		}
	}
	if w.opts.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: target %b not reached within %d presses",
			ErrNoSolution, w.target, w.opts.MaxDepth)
	}
	return nil, fmt.Errorf("%w: target %b not reachable from %d buttons",
		ErrNoSolution, w.target, len(w.buttons))
}

// sequence walks parent links back to the root.
func (w *walker) sequence(state Mask) []int {
	var rev []int
	for {
		e := w.parent[state]
		if e.button < 0 {
			break
		}
		rev = append(rev, e.button)
		state = e.from
	}
	out := make([]int, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}
	return out
}
