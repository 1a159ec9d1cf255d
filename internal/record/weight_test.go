// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		code string
		unit string
		want int
	}{
		{name: "level 1", code: "CHEM1001", unit: "Introductory Chemistry", want: 0},
		{name: "level 2", code: "CHEM2401", unit: "Molecular Reactivity", want: 2},
		{name: "level 3", code: "CHEM3110", unit: "Biomolecules", want: 3},
		{name: "level 4", code: "CHEM4001", unit: "Advanced Topics", want: 4},
		{name: "level 9", code: "BIOL4999", unit: "Research Project", want: 4},
		{name: "level 0 falls back to 0", code: "GENE0001", unit: "Bridging", want: 0},
		{name: "thesis overrides level", code: "BIOL4999", unit: "Honours Thesis B", want: 8},
		{name: "thesis is case insensitive", code: "ENGG1000", unit: "THESIS Preparation", want: 8},
		{name: "thesis matches as a substring", code: "CHEM2001", unit: "Organic Synthesis", want: 8},
		{name: "thesis overrides short code", code: "X1", unit: "Thesis", want: 8},
		{name: "five character code", code: "ABCD3", unit: "", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Weight(tt.code, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeight_FormatError(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "code too short", code: "ABC1"},
		{name: "empty code", code: ""},
		{name: "non digit at index 4", code: "ABCDX123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Weight(tt.code, "Some Unit")
			require.ErrorIs(t, err, ErrFormat)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "unit_code", fe.Field)
			assert.Equal(t, tt.code, fe.Value)
		})
	}
}
