// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

// Action is the wire contract between creators and the reducer.
type Action struct {
	Type    string
	Payload any
}

// CreateFunc maps creator call arguments to an action payload.
type CreateFunc func(args ...any) any

// ReduceFunc computes the next slice state from the current state and an
// action payload. It must not modify state in place.
type ReduceFunc func(state, payload any) any

// ActionDef is the closed set of shapes an action definition may take.
//
// A bare [ReduceFunc] is the shorthand variant: the value is the state
// updater and the creator defaults to [PassPayload]. [Def] is the full
// variant with explicit creator and updater, either of which may be omitted.
type ActionDef interface {
	normalize() (CreateFunc, ReduceFunc)
}

// normalize implements the ActionDef interface.
func (f ReduceFunc) normalize() (CreateFunc, ReduceFunc) {
	return PassPayload, f
}

// Def is the full action definition variant.
type Def struct {
	// Create maps creator call arguments to the action payload.
	// Defaults to [PassPayload].
	Create CreateFunc

	// Reducer computes the next state from the current state and payload.
	// Defaults to shallow-merging the payload's fields over the current
	// state, which requires the payload to be record shaped.
	Reducer ReduceFunc
}

// normalize implements the ActionDef interface.
func (d Def) normalize() (CreateFunc, ReduceFunc) {
	create := d.Create
	if create == nil {
		create = PassPayload
	}
	reduce := d.Reducer
	if reduce == nil {
		reduce = mergePayload
	}
	return create, reduce
}

// typeName derives the symbolic type identifier for an action.
func typeName(slice, action string) string {
	return slice + "/" + action
}

// Creator produces [Action] values for a single action kind.
type Creator struct {
	// Type is the derived type identifier. It always equals the key under
	// which the bundle reducer dispatches this action, and is readable
	// without invoking the creator e.g. for middleware filters.
	Type string

	create CreateFunc
}

func newCreator(identifier string, create CreateFunc) *Creator {
	return &Creator{
		Type:   identifier,
		create: create,
	}
}

// New returns an [Action] carrying the creator's type identifier and the
// payload computed from args. It is deterministic and side-effect free.
func (c *Creator) New(args ...any) Action {
	return Action{
		Type:    c.Type,
		Payload: c.create(args...),
	}
}
