package sasl

import (
	"encoding/base64"
	"fmt"
)

// b64Encode encodes b using the standard RFC 4648 §4 alphabet with padding.
func b64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// b64Decode decodes s, failing with ErrMalformedInput on invalid characters
// or bad padding.
func b64Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return b, nil
}

func utf8Encode(s string) []byte {
	return []byte(s)
}

func utf8Decode(b []byte) string {
	return string(b)
}

// strToB64Utf8 is b64Encode(utf8Encode(s)).
func strToB64Utf8(s string) string {
	return b64Encode(utf8Encode(s))
}
