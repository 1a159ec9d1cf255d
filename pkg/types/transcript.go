// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Mean is a rounded weighted mean, or the unavailable sentinel when the
// computation failed (e.g. a zero denominator).
type Mean struct {
	Value     float64 `json:"value" yaml:"value"`
	Available bool    `json:"available" yaml:"available"`

	// Reason describes why the mean is unavailable. Empty when Available.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Unavailable returns a Mean marked unavailable with the given reason.
func Unavailable(reason string) Mean {
	return Mean{Reason: reason}
}

// MeanOf returns an available Mean holding v.
func MeanOf(v float64) Mean {
	return Mean{Value: v, Available: true}
}

// Transcript is the outcome of running one document through the pipeline.
type Transcript struct {
	// ID is a UUID assigned when the transcript is processed.
	ID string `json:"id" yaml:"id"`

	// Source is the path of the document the rows came from.
	Source string `json:"source" yaml:"source"`

	// Records holds the accepted rows in document order.
	Records []Record `json:"records" yaml:"records"`

	// WAM is the credit-weighted average mark.
	WAM Mean `json:"wam" yaml:"wam"`

	// EIHWAM is the level-weighted average mark.
	EIHWAM Mean `json:"eihwam" yaml:"eihwam"`

	ProcessedAt time.Time `json:"processed_at" yaml:"processed_at"`
}

// TotalCredits returns the sum of credit points across all records.
func (t Transcript) TotalCredits() int {
	total := 0
	for _, r := range t.Records {
		total += r.CreditPoints
	}
	return total
}
