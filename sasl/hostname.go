package sasl

import (
	"strings"
	"unicode/utf8"
)

// isFQDN rejects invalid UTF-8 and bracketed literal addresses, then
// additionally requires a '.' so bare hostnames like "localhost" fail
// WithFQDNRequired while "mail.example.com" passes.
func isFQDN(host string) bool {
	if !utf8.ValidString(host) {
		return false
	}
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return false
	}
	return strings.Contains(host, ".")
}
