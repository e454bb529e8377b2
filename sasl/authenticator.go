package sasl

import (
	"fmt"
	"strings"
)

// encryptedPriority is the challenge-response encrypted mechanism family,
// in decreasing hash strength, with CRAM-MD5 last.
var encryptedPriority = []string{
	"SCRAM-SHA-512",
	"SCRAM-SHA-384",
	"SCRAM-SHA-256",
	"SCRAM-SHA-1",
	"CRAM-MD5",
}

func defaultPriority() []string {
	list := make([]string, 0, len(encryptedPriority)+3)
	list = append(list, "XOAUTH2")
	list = append(list, encryptedPriority...)
	list = append(list, "PLAIN", "LOGIN")
	return list
}

// Option configures an Authenticator at construction time.
type Option func(*Authenticator)

// WithCryptoProvider overrides DefaultProvider for every mechanism this
// Authenticator creates.
func WithCryptoProvider(p CryptoProvider) Option {
	return func(a *Authenticator) { a.provider = p }
}

// WithFQDNRequired additionally requires hostname to look like a fully
// qualified domain name (contain at least one '.'). §4.8/§9 leave this
// optional since the source this engine is modeled on enforced it
// inconsistently across revisions.
func WithFQDNRequired() Option {
	return func(a *Authenticator) { a.requireFQDN = true }
}

// Authenticator is a single-use-per-attempt SASL engine: it negotiates one
// mechanism at a time from a candidate stack built from the server's
// supported list and an effective priority order, then drives that
// mechanism's challenge/response exchange.
type Authenticator struct {
	serviceName string
	hostname    string
	creds       Credentials
	provider    CryptoProvider
	requireFQDN bool

	// candidates holds mechanism names not yet tried, highest priority on
	// top (end of slice).
	candidates []string

	current     Mechanism
	currentName string
}

// NewAuthenticator constructs an Authenticator. serviceName and hostname
// must be non-empty, and supportedMechanisms must be non-empty; any
// violation fails with ErrInvalidArgument.
func NewAuthenticator(serviceName, hostname string, supportedMechanisms []string, creds Credentials, opts ...Option) (*Authenticator, error) {
	a := &Authenticator{
		serviceName: serviceName,
		hostname:    hostname,
		creds:       creds,
		provider:    DefaultProvider,
	}
	for _, opt := range opts {
		opt(a)
	}

	if serviceName == "" {
		return nil, fmt.Errorf("%w: serviceName must not be empty", ErrInvalidArgument)
	}
	if hostname == "" {
		return nil, fmt.Errorf("%w: hostname must not be empty", ErrInvalidArgument)
	}
	if a.requireFQDN && !isFQDN(hostname) {
		return nil, fmt.Errorf("%w: hostname %q is not a fully qualified domain name", ErrInvalidArgument, hostname)
	}
	if len(supportedMechanisms) == 0 {
		return nil, fmt.Errorf("%w: supportedMechanisms must not be empty", ErrInvalidArgument)
	}

	priority, err := effectivePriority(creds)
	if err != nil {
		return nil, err
	}

	supported := make(map[string]bool, len(supportedMechanisms))
	for _, m := range supportedMechanisms {
		supported[strings.ToUpper(m)] = true
	}

	var filtered []string
	for _, name := range priority {
		if supported[strings.ToUpper(name)] {
			filtered = append(filtered, strings.ToUpper(name))
		}
	}

	// Push in reverse so the highest-priority mechanism is on top (the end
	// of the slice, popped first).
	a.candidates = make([]string, len(filtered))
	for i, name := range filtered {
		a.candidates[len(filtered)-1-i] = name
	}

	return a, nil
}

func effectivePriority(creds Credentials) ([]string, error) {
	switch creds.DesiredPriority {
	case PriorityDefault:
		return defaultPriority(), nil
	case PriorityEncrypted:
		return encryptedPriority, nil
	case PriorityExplicit:
		if len(creds.DesiredAuthMethods) == 0 {
			return nil, fmt.Errorf("%w: PriorityExplicit requires DesiredAuthMethods", ErrInvalidArgument)
		}
		return creds.DesiredAuthMethods, nil
	default:
		return nil, fmt.Errorf("%w: unknown priority %v", ErrInvalidArgument, creds.DesiredPriority)
	}
}

// TryNextAuth pops candidates until one has a registered factory and valid
// credentials, and makes it current. It returns the mechanism's name and
// IsClientFirst flag. When every candidate has been exhausted it returns
// ("", false, ErrNoMechanism) and clears the current mechanism.
func (a *Authenticator) TryNextAuth() (name string, isClientFirst bool, err error) {
	for len(a.candidates) > 0 {
		n := a.candidates[len(a.candidates)-1]
		a.candidates = a.candidates[:len(a.candidates)-1]

		desc, ok := defaultRegistry.lookup(n)
		if !ok {
			continue
		}
		mech := desc.New(a.creds, a.provider)
		if !mech.IsValid() {
			continue
		}
		a.current = mech
		a.currentName = n
		return n, desc.IsClientFirst, nil
	}
	a.current = nil
	a.currentName = ""
	return "", false, ErrNoMechanism
}

// AuthStep feeds serverChallengeB64 (the empty string for the initial,
// client-first challenge) to the current mechanism and returns its next
// client response, base64-encoded. On any error the current mechanism is
// treated as dead; the caller must call TryNextAuth before stepping again.
func (a *Authenticator) AuthStep(serverChallengeB64 string) (string, error) {
	if a.current == nil {
		return "", ErrNotNegotiating
	}

	var challenge []byte
	if serverChallengeB64 != "" {
		decoded, err := b64Decode(serverChallengeB64)
		if err != nil {
			a.current = nil
			return "", err
		}
		challenge = decoded
	}

	resp, err := a.current.Step(challenge)
	if err != nil {
		a.current = nil
		return "", err
	}
	return b64Encode(resp), nil
}

// CurrentMechanism returns the name of the mechanism most recently selected
// by TryNextAuth, or "" if none has been selected or the candidates are
// exhausted. The name is kept after an AuthStep error drops the mechanism.
func (a *Authenticator) CurrentMechanism() string {
	return a.currentName
}
