package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// sensitiveFields are attribute names whose values never reach a log sink.
// Form submitters' phone numbers are included alongside credentials.
var sensitiveFields = []string{
	"password", "secret", "token", "auth", "authorization", "bearer",
	"apiKey", "apikey", "api_key", "accessToken", "access_token",
	"credential", "credentials", "cookie", "session",
	"accessKey", "access_key", "secretKey", "secret_key",
	"recaptchaToken", "recaptcha_token", "captcha_token",
	"visitor_token", "visitor_cookie",
	"phone", "phoneNo", "phone_no",
}

var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`),
	// presigned attachment links stay readable until they expire
	regexp.MustCompile(`(?i)[?&]X-Amz-(Signature|Credential)=`),
}

// newRedactor returns a slog ReplaceAttr built on masq.
func newRedactor(extra ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveFields)+len(sensitiveValues)+2+len(extra))

	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	opts = append(opts, masq.WithFieldPrefix("secret"), masq.WithFieldPrefix("private"))

	return masq.New(append(opts, extra...)...)
}
