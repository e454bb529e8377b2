package sasl

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// HashAlg names a digest algorithm a CryptoProvider must support.
type HashAlg string

// Algorithms required by the mechanisms in this package.
const (
	MD5    HashAlg = "MD5"
	SHA1   HashAlg = "SHA-1"
	SHA256 HashAlg = "SHA-256"
	SHA384 HashAlg = "SHA-384"
	SHA512 HashAlg = "SHA-512"
)

// CryptoProvider abstracts the cryptographic primitives the engine needs,
// so that mechanisms are not coupled to a particular crypto runtime and can
// be driven deterministically in tests (fixed nonces, canned digests).
//
// Implementations must be safe to call from the single goroutine driving an
// Authenticator; the engine itself performs no concurrent calls.
type CryptoProvider interface {
	// RandomBytes returns n cryptographically secure random bytes.
	RandomBytes(n int) ([]byte, error)
	// Digest hashes data with alg.
	Digest(alg HashAlg, data []byte) ([]byte, error)
	// Hmac computes the keyed MAC of data under alg.
	Hmac(alg HashAlg, key, data []byte) ([]byte, error)
	// Pbkdf2 derives keyLen bytes from password and salt using iter rounds
	// of alg.
	Pbkdf2(alg HashAlg, password, salt []byte, iter, keyLen int) ([]byte, error)
}

// DefaultProvider is the CryptoProvider backed by the standard library and
// golang.org/x/crypto/pbkdf2.
var DefaultProvider CryptoProvider = defaultProvider{}

type defaultProvider struct{}

func hashFuncFor(alg HashAlg) (func() hash.Hash, error) {
	switch alg {
	case MD5:
		return md5.New, nil
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrCrypto, alg)
	}
}

func (defaultProvider) RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: invalid random length %d", ErrCrypto, n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return b, nil
}

func (defaultProvider) Digest(alg HashAlg, data []byte) ([]byte, error) {
	h, err := hashFuncFor(alg)
	if err != nil {
		return nil, err
	}
	d := h()
	d.Write(data)
	return d.Sum(nil), nil
}

func (defaultProvider) Hmac(alg HashAlg, key, data []byte) ([]byte, error) {
	h, err := hashFuncFor(alg)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(h, key)
	mac.Write(data)
	return mac.Sum(nil), nil
}

func (defaultProvider) Pbkdf2(alg HashAlg, password, salt []byte, iter, keyLen int) ([]byte, error) {
	h, err := hashFuncFor(alg)
	if err != nil {
		return nil, err
	}
	if iter <= 0 {
		return nil, fmt.Errorf("%w: non-positive iteration count %d", ErrCrypto, iter)
	}
	if keyLen <= 0 {
		return nil, fmt.Errorf("%w: non-positive key length %d", ErrCrypto, keyLen)
	}
	return pbkdf2.Key(password, salt, iter, keyLen, h), nil
}

// hashLen returns the digest length in bytes for the registered SCRAM hash
// algorithms.
func hashLen(alg HashAlg) int {
	switch alg {
	case SHA1:
		return 20
	case SHA256:
		return 32
	case SHA384:
		return 48
	case SHA512:
		return 64
	default:
		return 0
	}
}
