package domain

import (
	"strings"
	"unicode"
)

// Verdict is the category a completion is asked to begin with.
type Verdict string

const (
	VerdictValid          Verdict = "VALID"
	VerdictPartiallyValid Verdict = "PARTIALLY VALID"
	VerdictInvalid        Verdict = "INVALID"
	// VerdictUnknown marks a completion that starts with none of the categories.
	VerdictUnknown Verdict = "UNKNOWN"
)

// ClassifyVerdict reads the leading category token of a completion. Leading
// markdown decoration such as "**" or "#" is ignored, as is letter case.
func ClassifyVerdict(completion string) Verdict {
	text := strings.TrimLeftFunc(completion, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	text = strings.ToUpper(text)

	// PARTIALLY VALID and INVALID both contain VALID, so test them first.
	for _, v := range []Verdict{VerdictPartiallyValid, VerdictInvalid, VerdictValid} {
		if !strings.HasPrefix(text, string(v)) {
			continue
		}
		rest := strings.TrimPrefix(text, string(v))
		if rest == "" {
			return v
		}
		if r := []rune(rest)[0]; !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return v
		}
	}
	return VerdictUnknown
}
