// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicekit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergePayload(t *testing.T) {
	type profile struct {
		Name string
		Age  int
	}

	testCases := []struct {
		name    string
		state   any
		payload any
		expect  any
	}{
		{
			name:    "map payload over map state",
			state:   map[string]any{"name": "a", "age": 1},
			payload: map[string]any{"name": "x"},
			expect:  map[string]any{"name": "x", "age": 1},
		},
		{
			name:    "map payload over struct state",
			state:   profile{Name: "a", Age: 1},
			payload: map[string]any{"name": "x"},
			expect:  profile{Name: "x", Age: 1},
		},
		{
			name:    "struct payload over map state",
			state:   map[string]any{"Name": "a", "Age": 1},
			payload: profile{Name: "x", Age: 2},
			expect:  map[string]any{"Name": "x", "Age": 2},
		},
		{
			name:    "non-record payload contributes no fields",
			state:   map[string]any{"name": "a"},
			payload: 5,
			expect:  map[string]any{"name": "a"},
		},
		{
			name:    "nil state takes the payload as-is",
			state:   nil,
			payload: map[string]any{"name": "x"},
			expect:  map[string]any{"name": "x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mergePayload(tc.state, tc.payload)
			require.Equal(t, tc.expect, got)
		})
	}
}

func TestMergePayload_InputsUntouched(t *testing.T) {
	state := map[string]any{"name": "a", "age": 1}
	payload := map[string]any{"name": "x"}

	got := mergePayload(state, payload)
	require.Equal(t, map[string]any{"name": "x", "age": 1}, got)
	require.Equal(t, map[string]any{"name": "a", "age": 1}, state)
	require.Equal(t, map[string]any{"name": "x"}, payload)
}
