// Package countries provides ISO 3166-1 alpha-2 country code handling.
package countries

import (
	"bufio"
	"strings"
)

// Normalize trims surrounding whitespace and upper-cases a country code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsAlpha2 reports whether code has the shape of an alpha-2 code: exactly two
// ASCII upper-case letters. It does not check that the country exists.
func IsAlpha2(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// ParseList parses country codes separated by commas, whitespace or newlines.
// Lines starting with # are comments. Codes are normalized; entries which are
// not alpha-2 shaped are returned in invalid.
func ParseList(content string) (codes []string, invalid []string, err error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.FieldsFunc(line, isSeparator) {
			code := Normalize(field)
			if IsAlpha2(code) {
				codes = append(codes, code)
			} else {
				invalid = append(invalid, field)
			}
		}
	}
	return codes, invalid, scanner.Err()
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}
