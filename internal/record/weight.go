// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import "strings"

const (
	// ThesisWeight applies to any unit whose name mentions a thesis.
	ThesisWeight = 8

	thesisKeyword = "thesis"
	levelIndex    = 4
)

// Weight returns the level weight of a unit. A name containing "thesis"
// (any case) weighs 8 regardless of the code. Otherwise the digit at index
// 4 of the code decides: 1 gives 0, 2 gives 2, 3 gives 3, 4 and above give
// 4, and 0 gives 0. A code shorter than five characters or without a digit
// at index 4 is a *FormatError.
func Weight(unitCode, unitName string) (int, error) {
	if strings.Contains(strings.ToLower(unitName), thesisKeyword) {
		return ThesisWeight, nil
	}

	if len(unitCode) <= levelIndex {
		return 0, &FormatError{Field: "unit_code", Value: unitCode}
	}
	c := unitCode[levelIndex]
	if c < '0' || c > '9' {
		return 0, &FormatError{Field: "unit_code", Value: unitCode}
	}

	switch level := int(c - '0'); {
	case level == 1:
		return 0, nil
	case level == 2:
		return 2, nil
	case level == 3:
		return 3, nil
	case level >= 4:
		return 4, nil
	default:
		return 0, nil
	}
}
