// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// mergePayload is the updater bound when a [Def] omits its Reducer: it
// shallow-merges the payload's fields over a copy of the current state,
// leaving fields the payload doesn't name untouched.
//
// The payload is expected to be record shaped (map or struct). Anything else
// contributes no fields and the result is simply a copy of the state; this
// permissive behavior is deliberate and pinned by tests.
func mergePayload(state, payload any) any {
	if sm, ok := state.(map[string]any); ok {
		if pm, ok := payload.(map[string]any); ok {
			next := make(map[string]any, len(sm)+len(pm))
			for k, v := range sm {
				next[k] = v
			}
			for k, v := range pm {
				next[k] = v
			}
			return next
		}
	}
	if state == nil {
		return payload
	}

	// Struct (or mixed) shapes: decode the state into a fresh value of its
	// own type, then overlay the payload's fields. Decode errors are
	// discarded; a payload which can't contribute fields contributes none.
	next := reflect.New(reflect.TypeOf(state))
	_ = decodeOnto(state, next.Interface())
	_ = decodeOnto(payload, next.Interface())
	return next.Elem().Interface()
}

func decodeOnto(from, onto any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: onto,
	})
	if err != nil {
		return err
	}
	return dec.Decode(from)
}
