// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

// Identity returns its first argument unchanged. It satisfies [Selector] and
// is handy as a no-op view over the whole slice state.
func Identity(state any, _ ...any) any {
	return state
}

// PassPayload forwards the first creator argument as the action payload, or
// nil when called with no arguments. It is the default [CreateFunc] bound to
// every action definition which doesn't supply its own.
func PassPayload(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// Assign returns a [ReduceFunc] which replaces the named field with the
// payload verbatim, leaving sibling fields untouched. It requires the state
// to be record shaped.
func Assign(key string) ReduceFunc {
	return func(state, payload any) any {
		return mergePayload(state, map[string]any{key: payload})
	}
}
