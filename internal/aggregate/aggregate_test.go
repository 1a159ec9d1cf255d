// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/transcript-wam/internal/record"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

func rec(code, name string, mark float64, credit int) types.Record {
	return types.Record{Year: "2021", Session: "S1", UnitCode: code, UnitName: name, Mark: mark, Grade: "D", CreditPoints: credit}
}

func TestWAM(t *testing.T) {
	tests := []struct {
		name    string
		records []types.Record
		want    float64
	}{
		{
			name:    "two units",
			records: []types.Record{rec("CHEM1001", "Chem", 75, 6), rec("BIOL4001", "Bio", 85, 8)},
			want:    80.7,
		},
		{
			name:    "single unit",
			records: []types.Record{rec("CHEM1001", "Chem", 64.5, 6)},
			want:    64.5,
		},
		{
			name:    "level zero units still count",
			records: []types.Record{rec("GENE0001", "Bridging", 50, 6), rec("CHEM1001", "Chem", 70, 6)},
			want:    60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WAM(tt.records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWAM_NoCredits(t *testing.T) {
	_, err := WAM(nil)
	require.ErrorIs(t, err, ErrDivision)
}

func TestEIHWAM(t *testing.T) {
	tests := []struct {
		name    string
		records []types.Record
		want    float64
	}{
		{
			name:    "first year unit carries no weight",
			records: []types.Record{rec("CHEM1001", "Chem", 75, 6), rec("BIOL4001", "Bio", 85, 8)},
			want:    85,
		},
		{
			name: "mixed levels",
			// (2*6*60 + 3*6*70 + 4*6*80) / (12 + 18 + 24) = 3900/54
			records: []types.Record{
				rec("CHEM2001", "Two", 60, 6),
				rec("CHEM3001", "Three", 70, 6),
				rec("CHEM4001", "Four", 80, 6),
			},
			want: 72.2,
		},
		{
			name: "thesis weighs eight",
			// (8*12*90 + 4*6*60) / (96 + 24) = 10080/120
			records: []types.Record{
				rec("BIOL4999", "Honours Thesis", 90, 12),
				rec("BIOL4001", "Advanced", 60, 6),
			},
			want: 84,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EIHWAM(tt.records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEIHWAM_AllWeightZero(t *testing.T) {
	records := []types.Record{rec("CHEM1001", "Chem", 75, 6), rec("MATH1001", "Calc", 90, 6)}
	got, err := EIHWAM(records)
	require.ErrorIs(t, err, ErrDivision)
	assert.Zero(t, got)
}

func TestEIHWAM_BadUnitCode(t *testing.T) {
	records := []types.Record{rec("AB1", "Short", 75, 6)}
	_, err := EIHWAM(records)
	require.ErrorIs(t, err, record.ErrFormat)
}

func TestOrderIndependence(t *testing.T) {
	records := []types.Record{
		rec("CHEM1001", "Chem", 75, 6),
		rec("CHEM2001", "Two", 62.5, 6),
		rec("BIOL4999", "Thesis", 88, 12),
		rec("MATH3001", "Three", 71, 6),
	}
	reversed := make([]types.Record, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	rotated := append(append([]types.Record{}, records[2:]...), records[:2]...)

	wantWAM, err := WAM(records)
	require.NoError(t, err)
	wantEIH, err := EIHWAM(records)
	require.NoError(t, err)

	for _, perm := range [][]types.Record{reversed, rotated} {
		gotWAM, err := WAM(perm)
		require.NoError(t, err)
		gotEIH, err := EIHWAM(perm)
		require.NoError(t, err)
		assert.Equal(t, wantWAM, gotWAM)
		assert.Equal(t, wantEIH, gotEIH)
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]types.Record{rec("CHEM1001", "Chem", 75, 6), rec("BIOL4001", "Bio", 85, 8)})
	require.NoError(t, err)
	assert.Equal(t, types.MeanOf(80.7), s.WAM)
	assert.Equal(t, types.MeanOf(85), s.EIHWAM)
}

func TestSummarize_Unavailable(t *testing.T) {
	s, err := Summarize([]types.Record{rec("CHEM1001", "Chem", 75, 6)})
	require.NoError(t, err)
	assert.True(t, s.WAM.Available)
	assert.Equal(t, 75.0, s.WAM.Value)
	assert.False(t, s.EIHWAM.Available)
	assert.Contains(t, s.EIHWAM.Reason, "EIHWAM")

	s, err = Summarize(nil)
	require.NoError(t, err)
	assert.False(t, s.WAM.Available)
	assert.False(t, s.EIHWAM.Available)
}

func TestSummarize_FormatError(t *testing.T) {
	_, err := Summarize([]types.Record{rec("XY", "Short", 75, 6)})
	require.ErrorIs(t, err, record.ErrFormat)
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 80.71428571428571, want: 80.7},
		{in: 80.65, want: 80.7}, // stored above the tie
		{in: 0.35, want: 0.3},   // stored below the tie
		{in: 0.25, want: 0.2},   // exact tie, even digit
		{in: 0.75, want: 0.8},
		{in: 72.22222222222223, want: 72.2},
		{in: 85, want: 85},
		{in: 99.95, want: 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round1(tt.in), "Round1(%v)", tt.in)
	}
}
