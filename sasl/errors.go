package sasl

import "errors"

// Errors returned by the engine. Callers should compare with errors.Is,
// since crypto and base64 failures are wrapped with %w underneath the
// sentinel that names the failure kind.
var (
	// ErrInvalidArgument is returned by NewAuthenticator when a constructor
	// argument violates its contract.
	ErrInvalidArgument = errors.New("sasl: invalid argument")

	// ErrNoMechanism is returned by TryNextAuth when every candidate
	// mechanism has been exhausted without one whose IsValid held.
	ErrNoMechanism = errors.New("sasl: no supported mechanism")

	// ErrMalformedServerResponse is returned when a mechanism cannot parse
	// a server challenge (e.g. an out-of-order SCRAM attribute).
	ErrMalformedServerResponse = errors.New("sasl: malformed server response")

	// ErrServerVerificationFailed is returned by SCRAM's final step when the
	// server's ServerSignature does not match the expected value.
	ErrServerVerificationFailed = errors.New("sasl: server verification failed")

	// ErrTooManySteps is returned when AuthStep is called after a
	// mechanism has already produced its final response.
	ErrTooManySteps = errors.New("sasl: too many steps")

	// ErrCrypto is returned when the CryptoProvider fails.
	ErrCrypto = errors.New("sasl: crypto provider error")

	// ErrMalformedInput is returned when a server challenge is not valid
	// base64.
	ErrMalformedInput = errors.New("sasl: malformed input")

	// ErrNotNegotiating is returned by AuthStep when called before a
	// successful TryNextAuth. Not part of the RFC-facing error taxonomy;
	// it guards the Authenticator's internal invariant.
	ErrNotNegotiating = errors.New("sasl: authStep called before a successful tryNextAuth")
)
