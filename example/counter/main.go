// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/z5labs/slicekit"
)

func main() {
	bundle, err := slicekit.New(slicekit.Config{
		Slice:   "counter",
		Initial: 0,
		Actions: map[string]slicekit.ActionDef{
			"increment": slicekit.ReduceFunc(func(state, payload any) any {
				return state.(int) + payload.(int)
			}),
			"decrement": slicekit.ReduceFunc(func(state, payload any) any {
				return state.(int) - payload.(int)
			}),
		},
		Selectors: map[string]slicekit.Selector{
			"value": slicekit.Identity,
		},
	})
	if err != nil {
		panic(err)
	}

	actions := []slicekit.Action{
		bundle.Actions["increment"].New(5),
		bundle.Actions["increment"].New(3),
		bundle.Actions["decrement"].New(2),
	}

	state := bundle.Reducer(nil, slicekit.Action{})
	for _, act := range actions {
		state = bundle.Reducer(state, act)
		fmt.Printf("%s -> %v\n", act.Type, state)
	}

	value := bundle.Selectors["value"](map[string]any{"counter": state})
	fmt.Println("final:", value)
}
