// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slicekit synthesizes the boilerplate of event-driven state
// reduction from a single declarative configuration.
//
// Given a named state slice — its initial value, a set of named update
// operations, and a set of read-only views — [New] derives four kinds of
// artifacts in one synchronous pass:
//
//   - Symbolic type identifiers of the form "<slice>/<action>"
//   - Callable action creators, each exposing its identifier as a Type field
//   - A single dispatching reducer keyed by type identifier
//   - Selectors rewrapped to read their slice out of the root state value
//
// Everything returned is a pure function; the package holds no global state
// and performs no I/O.
//
// # Defining A Slice
//
// Actions come in two shapes. A bare [ReduceFunc] is the shorthand variant,
// where the creator defaults to forwarding its first argument as the payload:
//
//	bundle, err := slicekit.New(slicekit.Config{
//	    Slice:   "counter",
//	    Initial: 0,
//	    Actions: map[string]slicekit.ActionDef{
//	        "increment": slicekit.ReduceFunc(func(state, payload any) any {
//	            return state.(int) + payload.(int)
//	        }),
//	    },
//	    Selectors: map[string]slicekit.Selector{
//	        "value": slicekit.Identity,
//	    },
//	})
//
// [Def] is the full variant; either field may be omitted. A missing Create
// falls back to [PassPayload] and a missing Reducer falls back to
// shallow-merging the (record shaped) payload over the current state:
//
//	"setName": slicekit.Def{
//	    Create: func(args ...any) any {
//	        return map[string]any{"name": args[0]}
//	    },
//	},
//
// # Dispatching
//
// Creators produce [Action] values and the reducer consumes them:
//
//	act := bundle.Actions["increment"].New(3)
//	state := bundle.Reducer(nil, slicekit.Action{}) // == Initial
//	state = bundle.Reducer(state, act)
//
// The reducer is total over the type domain: a nil state starts from the
// configured initial value and actions of unknown type are returned-state
// no-ops, so several bundles can share one dispatch point. [Combine] builds
// exactly that shared dispatch point over a map[string]any root.
//
// # Selectors
//
// Configured selectors receive slice-local state but are invoked with the
// root state value:
//
//	v := bundle.Selectors["value"](map[string]any{"counter": 5}) // 5
//
// # Error Handling
//
// Malformed configuration (an empty slice name, a nil action definition or
// selector) fails synchronously inside [New] with a typed error, before any
// creator or reducer is usable. Nothing produced by New returns errors of
// its own; payload shape mismatches are the caller's responsibility.
package slicekit
