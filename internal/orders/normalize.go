package orders

import (
	"regexp"
	"strings"
)

// rewriteRule transforms a candidate key. Returning false rejects the input.
type rewriteRule func(s string) (string, bool)

var (
	labelPrefix = regexp.MustCompile(`^(ORDER|ORD|#)\s*`)
	digitRun    = regexp.MustCompile(`[0-9]+`)
)

// normalizeRules run in order; each sees the output of the previous one.
var normalizeRules = []rewriteRule{
	trimUpper,
	stripLabel,
	removeSpaces,
	canonicalize,
}

// Normalize converts a free-form order reference such as "ord 12345" or
// "#12345" into the canonical "ORD-12345" key. It is purely syntactic and
// does not check that the key exists.
func Normalize(raw string) (string, bool) {
	s := raw
	for _, rule := range normalizeRules {
		var ok bool
		if s, ok = rule(s); !ok {
			return "", false
		}
	}
	return s, true
}

func trimUpper(s string) (string, bool) {
	return strings.ToUpper(strings.TrimSpace(s)), true
}

func stripLabel(s string) (string, bool) {
	return labelPrefix.ReplaceAllString(s, ""), true
}

func removeSpaces(s string) (string, bool) {
	return strings.Join(strings.Fields(s), ""), true
}

// canonicalize leaves keys that already carry the prefix alone. Anything else
// is rebuilt from its first run of digits.
func canonicalize(s string) (string, bool) {
	if strings.HasPrefix(s, KeyPrefix) {
		return s, true
	}
	if isDigits(s) {
		return KeyPrefix + s, true
	}
	if run := digitRun.FindString(s); run != "" {
		return KeyPrefix + run, true
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
