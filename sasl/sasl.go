// Package sasl implements a client-side SASL (RFC 4422) engine for driving
// authentication exchanges over line-oriented application protocols such as
// IMAP, SMTP, and XMPP. It negotiates a mechanism from a server-advertised
// list and then drives the challenge/response exchange one base64-encoded
// step at a time, leaving line framing and transport entirely to the host
// protocol.
package sasl

// Mechanism is the contract every SASL mechanism implements. An instance is
// created by a MechanismFactory for a single authentication attempt, driven
// step by step through Step, and discarded on success or failure.
type Mechanism interface {
	// Name returns the canonical, uppercase mechanism name (e.g. "SCRAM-SHA-256").
	Name() string

	// IsClientFirst reports whether the mechanism can produce a response
	// before receiving any server challenge.
	IsClientFirst() bool

	// IsValid reports whether the credentials supplied at construction are
	// sufficient to attempt this mechanism.
	IsValid() bool

	// Step consumes the n-th server challenge (the 0th is the empty slice
	// for client-first mechanisms) and returns the n-th client response.
	// Once the mechanism has produced its final response, any further call
	// fails with ErrTooManySteps.
	Step(challenge []byte) (response []byte, err error)

	// Done reports whether the mechanism has produced its final response.
	Done() bool
}

// MechanismFactory builds a fresh Mechanism instance bound to creds and
// sharing the given CryptoProvider for its cryptographic operations.
type MechanismFactory func(creds Credentials, provider CryptoProvider) Mechanism

// Priority selects how the effective mechanism priority list is built from
// Credentials.DesiredAuthMethods. The zero value, PriorityDefault, matches
// the engine's built-in preference order.
type Priority int

const (
	// PriorityDefault orders XOAUTH2, then the encrypted (SCRAM + CRAM-MD5)
	// family in decreasing hash strength, then PLAIN, then LOGIN.
	PriorityDefault Priority = iota
	// PriorityEncrypted restricts the list to the challenge-response
	// encrypted family: SCRAM in decreasing hash strength, then CRAM-MD5.
	PriorityEncrypted
	// PriorityExplicit uses Credentials.DesiredAuthMethods verbatim, in the
	// order given.
	PriorityExplicit
)

// Credentials is an immutable bundle of authentication inputs. All fields
// are optional except where a given Mechanism's IsValid requires them.
type Credentials struct {
	// User is the authentication identity (authcid).
	User string
	// Pass is the secret associated with User.
	Pass string
	// OAuthBearer is the bearer token used by XOAUTH2.
	OAuthBearer string
	// DesiredPriority selects how DesiredAuthMethods is interpreted; see
	// Priority.
	DesiredPriority Priority
	// DesiredAuthMethods is the explicit, ordered mechanism name list used
	// when DesiredPriority is PriorityExplicit.
	DesiredAuthMethods []string
}
