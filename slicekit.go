// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

import "fmt"

// Config describes one state slice: its name, starting value, update
// operations, and read-only views. It is read exactly once, by [New].
type Config struct {
	// Slice names the state partition this bundle manages within the
	// larger root state value. Must be non-empty.
	Slice string

	// Initial is the starting state for the slice. Any shape.
	Initial any

	// Actions maps action names to their definitions. Names must be
	// unique, which map keys already guarantee; collisions across slices
	// are the caller's responsibility.
	Actions map[string]ActionDef

	// Selectors maps selector names to slice-local view functions.
	Selectors map[string]Selector
}

// Bundle holds the artifacts synthesized from a [Config]. All of its values
// are independent pure functions once New returns; the bundle itself is
// never mutated afterward.
type Bundle struct {
	// Slice and Initial are echoed from the configuration.
	Slice   string
	Initial any

	// Actions maps each configured action name to its creator. The
	// creator's Type field is the dispatch key the Reducer responds to.
	Actions map[string]*Creator

	// Reducer dispatches actions produced by the creators. It starts from
	// Initial when handed a nil state and ignores unknown action types.
	Reducer Reducer

	// Selectors maps each configured selector name to its root-scoped
	// wrapping.
	Selectors map[string]RootSelector
}

// New synthesizes a [Bundle] from cfg in a single synchronous pass: action
// type identifiers are derived as "<slice>/<name>", each definition is
// normalized into a (create, reduce) pair, and selectors are rewrapped to
// take the root state value. Configuration shape errors fail here, before
// any creator or reducer is usable.
//
// Calls to New are fully independent; no state is shared across bundles.
func New(cfg Config) (*Bundle, error) {
	if cfg.Slice == "" {
		return nil, SliceNameError{}
	}

	creators := make(map[string]*Creator, len(cfg.Actions))
	updaters := make(map[string]ReduceFunc, len(cfg.Actions))
	for name, def := range cfg.Actions {
		if def == nil {
			return nil, ActionDefError{Action: name}
		}

		create, reduce := def.normalize()
		if create == nil || reduce == nil {
			return nil, ActionDefError{Action: name}
		}

		identifier := typeName(cfg.Slice, name)
		creators[name] = newCreator(identifier, create)
		updaters[identifier] = reduce
	}

	selectors := make(map[string]RootSelector, len(cfg.Selectors))
	for name, sel := range cfg.Selectors {
		if sel == nil {
			return nil, SelectorError{Selector: name}
		}
		selectors[name] = wrapSelector(cfg.Slice, sel)
	}

	return &Bundle{
		Slice:     cfg.Slice,
		Initial:   cfg.Initial,
		Actions:   creators,
		Reducer:   buildReducer(cfg.Initial, updaters),
		Selectors: selectors,
	}, nil
}

// SliceNameError occurs when the configured slice name is empty.
type SliceNameError struct{}

// Error implements the [builtin.error] interface.
func (e SliceNameError) Error() string {
	return "slice name must be non-empty"
}

// ActionDefError occurs when an action definition is neither a [ReduceFunc]
// nor a [Def], including the nil cases of either.
type ActionDefError struct {
	Action string
}

// Error implements the [builtin.error] interface.
func (e ActionDefError) Error() string {
	return fmt.Sprintf("action %q: definition must be a non-nil ReduceFunc or a Def", e.Action)
}

// SelectorError occurs when a configured selector is nil.
type SelectorError struct {
	Selector string
}

// Error implements the [builtin.error] interface.
func (e SelectorError) Error() string {
	return fmt.Sprintf("selector %q: must be non-nil", e.Selector)
}
