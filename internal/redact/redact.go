// Package redact strips session tokens, secrets and filesystem details from
// strings before they are logged or echoed back in error responses.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedJWTPlaceholder   = "[REDACTED_JWT]"
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; the JWT rule must precede the bearer and key rules so a
// token is reported as a JWT rather than a generic key.
var rules = []rule{
	{
		// Three base64url segments, header and payload both starting with {"
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		placeholder: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}=*`),
		placeholder: "Bearer " + RedactionPlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)(token_secret|secret|token|api[_-]?key|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/!]{8,}`,
		),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		placeholder: RedactedStackPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
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
