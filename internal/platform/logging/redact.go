package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// sensitiveFields are attribute keys whose values are always redacted. The
// value-resolution client sends its credentials in these headers.
var sensitiveFields = []string{
	"authorization",
	"x-api-key",
	"password",
	"secret",
	"token",
}

// rawContentField is the attribute key under which raw property content
// (base64 attachments) may be logged. Raw content can be arbitrarily large
// and may carry personal data, so it never reaches the log.
const rawContentField = "raw_value"

var (
	bearerPattern       = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns a masq-powered ReplaceAttr function. It redacts by
// field name for known sensitive keys and by regex for credential-shaped
// values that slipped into other fields.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveFields)+6)
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName(rawContentField),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
