// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"os"

	"github.com/z5labs/slicekit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type todo struct {
	Title string
	Done  bool
}

func newTodosSlice() (*slicekit.Bundle, error) {
	return slicekit.New(slicekit.Config{
		Slice:   "todos",
		Initial: []todo{},
		Actions: map[string]slicekit.ActionDef{
			"add": slicekit.ReduceFunc(func(state, payload any) any {
				items := state.([]todo)
				next := make([]todo, len(items), len(items)+1)
				copy(next, items)
				return append(next, todo{Title: payload.(string)})
			}),
			"complete": slicekit.Def{
				Create: func(args ...any) any {
					return args[0].(int)
				},
				Reducer: func(state, payload any) any {
					items := state.([]todo)
					i := payload.(int)
					if i < 0 || i >= len(items) {
						return state
					}
					next := make([]todo, len(items))
					copy(next, items)
					next[i].Done = true
					return next
				},
			},
		},
		Selectors: map[string]slicekit.Selector{
			"all": slicekit.Identity,
			"remaining": func(state any, _ ...any) any {
				var remaining []todo
				for _, item := range state.([]todo) {
					if !item.Done {
						remaining = append(remaining, item)
					}
				}
				return remaining
			},
		},
	})
}

func main() {
	var complete []int

	cmd := &cobra.Command{
		Use:   "todos [item ...]",
		Short: "Dispatch todo actions and print the remaining items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			bundle, err := newTodosSlice()
			if err != nil {
				return err
			}

			var actions []slicekit.Action
			for _, title := range args {
				actions = append(actions, bundle.Actions["add"].New(title))
			}
			for _, i := range complete {
				actions = append(actions, bundle.Actions["complete"].New(i))
			}

			state := bundle.Reducer(nil, slicekit.Action{})
			for _, act := range actions {
				log.Info("dispatch",
					zap.String("type", act.Type),
					zap.Any("payload", act.Payload),
				)
				state = bundle.Reducer(state, act)
			}

			root := map[string]any{"todos": state}
			for _, item := range bundle.Selectors["remaining"](root).([]todo) {
				fmt.Fprintln(cmd.OutOrStdout(), "[ ]", item.Title)
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&complete, "complete", nil, "indexes of items to mark complete")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
