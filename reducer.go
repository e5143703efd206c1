// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

// Reducer computes the next state from the current state and an action. It
// matches the binary (state, action) signature expected by action-dispatch
// hosts. Passing a nil state starts the reducer from its initial value.
type Reducer func(state any, action Action) any

// buildReducer assembles the normalized state updaters into one dispatching
// function keyed by type identifier. Actions with an unknown type are no-ops,
// which is what lets several reducers share a single dispatch point.
func buildReducer(initial any, updaters map[string]ReduceFunc) Reducer {
	return func(state any, action Action) any {
		if state == nil {
			state = initial
		}
		reduce, ok := updaters[action.Type]
		if !ok {
			return state
		}
		return reduce(state, action.Payload)
	}
}

// Combine folds multiple bundles into a single root-level [Reducer] operating
// over a map[string]any keyed by slice name. Each action is offered to every
// bundle's reducer against that bundle's own key of the root; bundles which
// don't recognize the action leave their slice untouched.
//
// A nil (or non-map) state seeds every slice from its bundle's initial value.
// The returned reducer always allocates a fresh root map, and only carries
// the combined bundles' keys forward.
func Combine(bundles ...*Bundle) Reducer {
	return func(state any, action Action) any {
		prev, _ := state.(map[string]any)

		next := make(map[string]any, len(bundles))
		for _, b := range bundles {
			next[b.Slice] = b.Reducer(prev[b.Slice], action)
		}
		return next
	}
}
