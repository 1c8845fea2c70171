// Package redact strips credentials, session tokens, email addresses and
// file paths from strings before they are logged or returned to a client.
package redact

import "regexp"

// Placeholders substituted for redacted values.
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; earlier rules may consume text later rules would match.
var rules = []rule{
	{regexp.MustCompile(`(?i)\bbearer\s+[^\s"',]+`), "Bearer " + RedactedTokenPlaceholder},
	{regexp.MustCompile(`\bjwt-[\w-]+`), RedactedTokenPlaceholder},
	{regexp.MustCompile(`(?i)"(password|secret|token)"\s*:\s*"[^"]*"`), `"${1}":"` + RedactionPlaceholder + `"`},
	{regexp.MustCompile(`(?i)\b(password|secret|token)=[^\s&]+`), "${1}=" + RedactionPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
