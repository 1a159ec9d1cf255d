// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate computes the credit-weighted average mark (WAM) and the
// level-weighted average mark (EIHWAM) over a set of Records.
package aggregate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pdiddy/transcript-wam/internal/record"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

// ErrDivision is returned when a mean's denominator sums to zero.
var ErrDivision = errors.New("division by zero")

// weightedRow is the per-record input to the level-weighted mean.
type weightedRow struct {
	weight int
	credit int
	mark   float64
}

// WAM returns sum(credit*mark) / sum(credit), rounded to one decimal place.
// It returns ErrDivision when the records carry no credit points.
func WAM(records []types.Record) (float64, error) {
	var num float64
	var den int
	for _, r := range records {
		num += float64(r.CreditPoints) * r.Mark
		den += r.CreditPoints
	}
	if den == 0 {
		return 0, fmt.Errorf("WAM: total credit points is zero: %w", ErrDivision)
	}
	return Round1(num / float64(den)), nil
}

// EIHWAM returns sum(weight*credit*mark) / sum(weight*credit), rounded to
// one decimal place, where weight comes from record.Weight. It returns
// ErrDivision when every record has weight zero (or there are none), and a
// record.FormatError when a unit code has no level digit.
func EIHWAM(records []types.Record) (float64, error) {
	rows, err := weigh(records)
	if err != nil {
		return 0, err
	}

	var num float64
	var den int
	for _, row := range rows {
		wc := row.weight * row.credit
		num += float64(wc) * row.mark
		den += wc
	}
	if den == 0 {
		return 0, fmt.Errorf("EIHWAM: total weighted credit points is zero: %w", ErrDivision)
	}
	return Round1(num / float64(den)), nil
}

func weigh(records []types.Record) ([]weightedRow, error) {
	rows := make([]weightedRow, 0, len(records))
	for _, r := range records {
		w, err := record.Weight(r.UnitCode, r.UnitName)
		if err != nil {
			return nil, fmt.Errorf("weighting %s: %w", r.UnitCode, err)
		}
		rows = append(rows, weightedRow{weight: w, credit: r.CreditPoints, mark: r.Mark})
	}
	return rows, nil
}

// Summary holds both means computed from one record set.
type Summary struct {
	WAM    types.Mean
	EIHWAM types.Mean
}

// Summarize computes WAM and EIHWAM from the same records. A mean that
// fails with ErrDivision becomes an unavailable Mean. A FormatError from
// weighting is returned as an error because it invalidates the record set.
func Summarize(records []types.Record) (Summary, error) {
	var s Summary

	wam, err := WAM(records)
	switch {
	case err == nil:
		s.WAM = types.MeanOf(wam)
	case errors.Is(err, ErrDivision):
		s.WAM = types.Unavailable(err.Error())
	default:
		return Summary{}, err
	}

	eih, err := EIHWAM(records)
	switch {
	case err == nil:
		s.EIHWAM = types.MeanOf(eih)
	case errors.Is(err, ErrDivision):
		s.EIHWAM = types.Unavailable(err.Error())
	default:
		return Summary{}, err
	}

	return s, nil
}

// Round1 rounds v to one decimal place. The exact binary value of v is
// rounded, with exact ties going to the even digit, so 80.65 (stored just
// above the tie) becomes 80.7 and 0.25 becomes 0.2.
func Round1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
