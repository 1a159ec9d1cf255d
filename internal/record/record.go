// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record turns candidate section lines into typed Records and
// assigns each unit its level weight.
//
// A data row has the shape
//
//	year session code name... mark grade credit
//
// where the name spans any number of tokens. Fields are anchored from both
// ends: three from the left, three from the right, and the name takes
// whatever remains in between.
package record

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/transcript-wam/pkg/types"
)

// minTokens is the exclusive lower bound on the token count of a data row.
const minTokens = 5

// Classification is the outcome of testing one line against the row shape.
type Classification struct {
	// Record is set when Accepted is true.
	Record types.Record
	// Accepted reports whether the line is a data row.
	Accepted bool
	// Reason says why the line was skipped. SkipNone when Accepted.
	Reason types.SkipReason
}

// Skipped is a line rejected by the row shape test.
type Skipped struct {
	Line   string
	Reason types.SkipReason
}

// Classify splits line into whitespace-separated tokens and decides whether
// it is a data row. A row needs more than five tokens and a last token made
// only of decimal digits whose value is above zero. Rows failing that test
// are skipped, not errors. An accepted row whose mark or credit value cannot
// be parsed returns a *FormatError.
func Classify(line string) (Classification, error) {
	c, err := ClassifyTokens(strings.Fields(line))
	if fe, ok := err.(*FormatError); ok {
		fe.Line = line
	}
	return c, err
}

// ClassifyTokens is Classify over an already tokenised line.
func ClassifyTokens(tokens []string) (Classification, error) {
	n := len(tokens)
	if n <= minTokens {
		return Classification{Reason: types.SkipTooFewTokens}, nil
	}

	last := tokens[n-1]
	if !isDigits(last) {
		return Classification{Reason: types.SkipCreditNotDigit}, nil
	}
	credit, err := strconv.Atoi(last)
	if err != nil {
		return Classification{}, &FormatError{Field: "credit_points", Value: last, Err: err}
	}
	if credit <= 0 {
		return Classification{Reason: types.SkipCreditZero}, nil
	}

	markTok := tokens[n-3]
	mark, err := strconv.ParseFloat(markTok, 64)
	if err != nil {
		return Classification{}, &FormatError{Field: "mark", Value: markTok, Err: err}
	}
	if math.IsNaN(mark) || math.IsInf(mark, 0) {
		return Classification{}, &FormatError{Field: "mark", Value: markTok}
	}

	rec := types.Record{
		Year:         tokens[0],
		Session:      tokens[1],
		UnitCode:     tokens[2],
		UnitName:     strings.Join(tokens[3:n-3], " "),
		Mark:         mark,
		Grade:        tokens[n-2],
		CreditPoints: credit,
	}
	return Classification{Record: rec, Accepted: true}, nil
}

// Parse classifies every line in order and returns the accepted Records.
// Skipped lines are dropped silently. The first FormatError aborts the
// parse and no Records are returned.
func Parse(lines []string) ([]types.Record, error) {
	recs, _, err := ParseWithSkips(lines, nil)
	return recs, err
}

// ParseWithSkips is Parse that also reports the skipped lines and logs each
// skip at debug level. A nil logger is treated as a no-op logger.
func ParseWithSkips(lines []string, log *zap.Logger) ([]types.Record, []Skipped, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		recs    []types.Record
		skipped []Skipped
	)
	for _, line := range lines {
		c, err := Classify(line)
		if err != nil {
			return nil, nil, err
		}
		if !c.Accepted {
			log.Debug("line skipped", zap.String("line", line), zap.String("reason", string(c.Reason)))
			skipped = append(skipped, Skipped{Line: line, Reason: c.Reason})
			continue
		}
		recs = append(recs, c.Record)
	}
	return recs, skipped, nil
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
