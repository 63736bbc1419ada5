// Package redact masks credentials in strings before they are logged. Provider
// SDK errors sometimes echo request URLs or headers, so every error logged by the
// API passes through Error first.
package redact

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder    = "[REDACTED_KEY]"
	RedactedSecretPlaceholder = "[REDACTED_SECRET]"
	RedactedJWTPlaceholder    = "[REDACTED_JWT]"
)

// Precompiled regex patterns
var (
	bearerRegex = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`)
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|x-api-key|token|secret|authorization)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)
	// Key shapes used by the supported providers (OpenAI/Anthropic "sk-", Google "AIza").
	providerKeyRegex = regexp.MustCompile(`\b(sk-[A-Za-z0-9_\-]{16,}|AIza[0-9A-Za-z_\-]{30,})`)
	jwtTokenRegex    = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
)

var (
	mu      sync.RWMutex
	secrets []string
)

// RegisterSecret adds an exact value (such as the configured API key) that must
// never appear in redacted output. Empty and very short values are ignored since
// masking them would mangle ordinary text.
func RegisterSecret(secret string) {
	if len(secret) < 4 {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	for _, s := range secrets {
		if s == secret {
			return
		}
	}
	secrets = append(secrets, secret)
	// Longest first so a secret containing another is masked whole.
	sort.Slice(secrets, func(i, j int) bool { return len(secrets[i]) > len(secrets[j]) })
}

// ResetSecrets forgets every registered secret.
func ResetSecrets() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	result := input
	for _, s := range secrets {
		result = strings.ReplaceAll(result, s, RedactedSecretPlaceholder)
	}
	mu.RUnlock()

	result = jwtTokenRegex.ReplaceAllString(result, RedactedJWTPlaceholder)
	result = bearerRegex.ReplaceAllString(result, "${1}"+RedactedKeyPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "${1}${2}"+RedactedKeyPlaceholder)
	result = providerKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
