package price

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLocalizedDecimal parses a price rendered as localized decimal text.
// The page formats numbers per the viewer's locale, so both "1,234.56" and
// "1.234,56" style groupings appear, along with plain "1234.56".
//
// The ambiguity is resolved positionally: when both separators appear, the
// last one is the decimal mark; a single separator followed by exactly three
// digits is treated as grouping.
func ParseLocalizedDecimal(text string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(text))

	if cleaned == "" {
		return 0, fmt.Errorf("empty price text")
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastDot > lastComma {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case lastComma >= 0:
		if strings.Count(cleaned, ",") == 1 && len(cleaned)-lastComma-1 != 3 {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price text %q: %w", text, err)
	}

	return value, nil
}
