// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"strings"
	"unicode"
)

// Clean removes every rune that is not a letter, number, underscore,
// whitespace or hyphen, then trims surrounding whitespace.
func Clean(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(cleaned)
}

func keepRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) || r == '_' || r == '-'
}
