// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	require.Equal(t, 5, Identity(5))
	require.Equal(t, 5, Identity(5, "ignored", true))
	require.Nil(t, Identity(nil))
}

func TestPassPayload(t *testing.T) {
	require.Nil(t, PassPayload())
	require.Equal(t, 3, PassPayload(3))
	require.Equal(t, 3, PassPayload(3, "ignored"))
}

func TestAssign(t *testing.T) {
	t.Run("replaces the named field with the payload verbatim", func(t *testing.T) {
		reduce := Assign("avatar")

		got := reduce(map[string]any{"avatar": "a.png"}, "b.png")
		require.Equal(t, map[string]any{"avatar": "b.png"}, got)
	})

	t.Run("leaves sibling fields untouched", func(t *testing.T) {
		reduce := Assign("avatar")

		got := reduce(map[string]any{"avatar": "a.png", "name": "a"}, "b.png")
		require.Equal(t, map[string]any{"avatar": "b.png", "name": "a"}, got)
	})

	t.Run("works on struct shaped state", func(t *testing.T) {
		type profile struct {
			Avatar string
			Name   string
		}

		got := Assign("avatar")(profile{Avatar: "a.png", Name: "a"}, "b.png")
		require.Equal(t, profile{Avatar: "b.png", Name: "a"}, got)
	})

	t.Run("usable as a value inside the action map", func(t *testing.T) {
		bundle, err := New(Config{
			Slice:   "profile",
			Initial: map[string]any{"avatar": "a.png", "name": "a"},
			Actions: map[string]ActionDef{
				"setAvatar": Assign("avatar"),
			},
		})
		require.NoError(t, err)

		state := bundle.Reducer(nil, bundle.Actions["setAvatar"].New("b.png"))
		require.Equal(t, map[string]any{"avatar": "b.png", "name": "a"}, state)
	})
}
