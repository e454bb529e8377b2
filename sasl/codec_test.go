package sasl

import (
	"bytes"
	"errors"
	"testing"
)

func TestB64RoundTrip(t *testing.T) {
	t.Parallel()
	in := []byte("hello, SASL")
	encoded := b64Encode(in)
	decoded, err := b64Decode(encoded)
	if err != nil {
		t.Fatalf("b64Decode: %v", err)
	}
	if !bytes.Equal(decoded, in) {
		t.Errorf("round trip = %q, want %q", decoded, in)
	}
}

func TestB64DecodeMalformed(t *testing.T) {
	t.Parallel()
	if _, err := b64Decode("not base64!!"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("err = %v, want ErrMalformedInput", err)
	}
}

func TestStrToB64Utf8(t *testing.T) {
	t.Parallel()
	got := strToB64Utf8("tim")
	want := b64Encode([]byte("tim"))
	if got != want {
		t.Errorf("strToB64Utf8() = %q, want %q", got, want)
	}
}

func TestUtf8RoundTrip(t *testing.T) {
	t.Parallel()
	s := "hello éè"
	if got := utf8Decode(utf8Encode(s)); got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}
