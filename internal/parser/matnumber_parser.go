package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var typicalMatnumberRegex = regexp.MustCompile(`^[A-Z]{0,3}\d{4,10}$`)

// NormalizeMatnumber normalizes matriculation numbers to uppercase without
// inner whitespace. Any non-empty value is accepted:
// - "123456" -> "123456"
// - "s 123 456" -> "S123456"
// - "s123" -> "S123"
func NormalizeMatnumber(mat string) (string, error) {
	mat = strings.ToUpper(strings.Join(strings.Fields(mat), ""))
	if mat == "" {
		return "", fmt.Errorf("matriculation number is empty")
	}
	return mat, nil
}

// IsTypicalMatnumber reports whether mat looks like a common university
// matriculation number (4-10 digits with an optional letter prefix). It is
// a hint only; other values are stored as given.
func IsTypicalMatnumber(mat string) bool {
	norm, err := NormalizeMatnumber(mat)
	return err == nil && typicalMatnumberRegex.MatchString(norm)
}
