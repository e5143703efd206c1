// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

// Selector computes a derived view from slice-local state. Extra arguments
// are forwarded verbatim from the wrapped call site.
type Selector func(state any, args ...any) any

// RootSelector is a [Selector] rewrapped to take the root state value, so
// callers can write slice-local logic and still read from the full state tree.
type RootSelector func(root map[string]any, args ...any) any

// wrapSelector scopes sel to the named slice of the root state. If the slice
// key is absent the selector receives nil and must tolerate it, or not; no
// defaulting, caching, or validation happens here.
func wrapSelector(slice string, sel Selector) RootSelector {
	return func(root map[string]any, args ...any) any {
		return sel(root[slice], args...)
	}
}
