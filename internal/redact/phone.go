// Package redact holds text-scanning helpers for redaction workflows.
package redact

import "regexp"

// Matches +7/8 numbers with an optional parenthesized area code and a
// 3-2-2 digit tail, allowing space or dash separators.
var phonePattern = regexp.MustCompile(`(?:\+7|8)[\s-]?\(?\d{3}\)?[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}`)

// DetectPhoneNumbers returns every substring of text shaped like a phone
// number, in order of appearance. Empty input yields an empty list.
func DetectPhoneNumbers(text string) []string {
	if text == "" {
		return []string{}
	}
	matches := phonePattern.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
