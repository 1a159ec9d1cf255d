// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one academic unit result row recovered from a transcript line.
// Records are values; nothing mutates them after the parser builds them.
type Record struct {
	// Year is the first token of the row (e.g. "2021").
	Year string `json:"year" yaml:"year"`

	// Session is the teaching period token (e.g. "S1").
	Session string `json:"session" yaml:"session"`

	// UnitCode identifies the unit (e.g. "CHEM1001"). The character at
	// index 4 encodes the unit level.
	UnitCode string `json:"unit_code" yaml:"unit_code"`

	// UnitName is the free-text unit title. It is empty when the row has
	// no tokens between the code and the mark.
	UnitName string `json:"unit_name" yaml:"unit_name"`

	// Mark is the numeric result.
	Mark float64 `json:"mark" yaml:"mark"`

	// Grade is the grade token (e.g. "HD", "D", "CR").
	Grade string `json:"grade" yaml:"grade"`

	// CreditPoints is the positive credit value of the unit.
	CreditPoints int `json:"credit_points" yaml:"credit_points"`
}

// SkipReason explains why a candidate line was not accepted as a Record.
type SkipReason string

const (
	SkipNone           SkipReason = ""
	SkipTooFewTokens   SkipReason = "too_few_tokens"
	SkipCreditNotDigit SkipReason = "credit_not_digits"
	SkipCreditZero     SkipReason = "credit_zero"
)
