// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package submission

import "strings"

// SplitName parses a free-form author name into given and family parts.
// Rules are tried in order, first match wins:
//
//	"Family, Given"  comma separates family from given
//	"Family; Given"  semicolon likewise
//	"Given Family"   a bare space puts the family name last
//	"Mononym"        single token is treated as a given name
//
// Only the first delimiter of the matched kind is honored; behavior with
// additional delimiters is unspecified.
func SplitName(raw string) (given, family string) {
	switch {
	case strings.Contains(raw, ","):
		family, given, _ = strings.Cut(raw, ",")
	case strings.Contains(raw, ";"):
		family, given, _ = strings.Cut(raw, ";")
	case strings.Contains(raw, " "):
		given, family, _ = strings.Cut(raw, " ")
	default:
		given = raw
	}
	return strings.TrimSpace(given), strings.TrimSpace(family)
}

// displayName renders "Family, Given" with the comma dropped when either
// part is empty.
func displayName(given, family string) string {
	return strings.Trim(family+", "+given, " ,")
}
