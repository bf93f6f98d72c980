package service

import (
	"regexp"
	"strings"
)

// enginePatterns are tried in order; the first match wins. Order matters
// because some inputs structurally match more than one pattern.
var enginePatterns = []*regexp.Regexp{
	// Honda families: D16W7, B18C1, H22A1, F22B1, K20A2
	regexp.MustCompile(`D\d{2}[A-Z]\d?`),
	regexp.MustCompile(`B\d{2}[A-Z]\d?`),
	regexp.MustCompile(`H\d{2}[A-Z]\d?`),
	regexp.MustCompile(`F\d{2}[A-Z]\d?`),
	regexp.MustCompile(`K\d{2}[A-Z]\d?`),
	// Toyota families: 1ZZ-FE, 2AZ-FE and the dashless 1ZZFE form
	regexp.MustCompile(`\d[A-Z]{2}-[A-Z]{2}`),
	regexp.MustCompile(`\d[A-Z]{2}FE`),
}

// ExtractEngineCode pulls a known engine code shape out of free-form input,
// such as an engine serial stamped as "D16W73005025". When no pattern
// matches, the whole trimmed input is accepted if the knowledge base knows
// it verbatim. Returns false when neither path yields a code.
func ExtractEngineCode(input string, known func(string) bool) (string, bool) {
	input = strings.ToUpper(strings.TrimSpace(input))

	for _, pattern := range enginePatterns {
		if match := pattern.FindString(input); match != "" {
			return match, true
		}
	}

	if known(input) {
		return input, true
	}

	return "", false
}
