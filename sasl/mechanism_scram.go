package sasl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meszmate/go-sasl/sasl/saslprep"
)

const scramGS2Header = "n,,"

// scramMechanism implements the SCRAM-SHA-* family (RFC 5802), parameterized
// by hash algorithm. It is the only mechanism here with more than a fixed
// one- or two-step shape: three steps, the middle one doing the PBKDF2 key
// schedule and proof computation, the last one verifying the server.
type scramMechanism struct {
	name     string
	alg      HashAlg
	hashLen  int
	user     string
	pass     string
	provider CryptoProvider

	step int

	clientNonce       string
	clientFirstBare   string
	serverNonce       string
	saltedPassword    []byte
	authMessage       string
	expectedServerSig []byte
}

func newScramFactory(alg HashAlg, name string) MechanismFactory {
	return func(creds Credentials, provider CryptoProvider) Mechanism {
		return &scramMechanism{
			name:     name,
			alg:      alg,
			hashLen:  hashLen(alg),
			user:     creds.User,
			pass:     creds.Pass,
			provider: provider,
		}
	}
}

func (m *scramMechanism) Name() string        { return m.name }
func (m *scramMechanism) IsClientFirst() bool { return true }
func (m *scramMechanism) IsValid() bool       { return m.user != "" && m.pass != "" }
func (m *scramMechanism) Done() bool          { return m.step >= 3 }

func (m *scramMechanism) Step(challenge []byte) ([]byte, error) {
	switch m.step {
	case 0:
		return m.clientFirst()
	case 1:
		return m.clientFinal(challenge)
	case 2:
		return m.verifyServerFinal(challenge)
	default:
		return nil, ErrTooManySteps
	}
}

func (m *scramMechanism) clientFirst() ([]byte, error) {
	nonceBytes, err := m.provider.RandomBytes(m.hashLen)
	if err != nil {
		return nil, err
	}
	m.clientNonce = b64Encode(nonceBytes)
	m.clientFirstBare = "n=" + escapeSCRAMUsername(saslprep.Prepare(m.user)) + ",r=" + m.clientNonce
	m.step = 1
	return utf8Encode(scramGS2Header + m.clientFirstBare), nil
}

func (m *scramMechanism) clientFinal(challenge []byte) ([]byte, error) {
	serverFirst := utf8Decode(challenge)
	serverNonce, salt, iterCount, err := parseServerFirst(serverFirst, m.clientNonce)
	if err != nil {
		return nil, err
	}
	m.serverNonce = serverNonce

	clientFinalNoProof := "c=" + strToB64Utf8(scramGS2Header) + ",r=" + serverNonce
	m.authMessage = m.clientFirstBare + "," + serverFirst + "," + clientFinalNoProof

	preparedPass := saslprep.Prepare(m.pass)
	passBytes := utf8Encode(preparedPass)

	saltedPassword, err := m.provider.Pbkdf2(m.alg, passBytes, salt, iterCount, m.hashLen)
	if err != nil {
		return nil, err
	}
	m.saltedPassword = saltedPassword

	clientKey, err := m.provider.Hmac(m.alg, saltedPassword, utf8Encode("Client Key"))
	if err != nil {
		return nil, err
	}
	storedKey, err := m.provider.Digest(m.alg, clientKey)
	if err != nil {
		return nil, err
	}
	clientSig, err := m.provider.Hmac(m.alg, storedKey, utf8Encode(m.authMessage))
	if err != nil {
		return nil, err
	}
	proof := xorBytes(clientKey, clientSig)

	serverKey, err := m.provider.Hmac(m.alg, saltedPassword, utf8Encode("Server Key"))
	if err != nil {
		return nil, err
	}
	expectedSig, err := m.provider.Hmac(m.alg, serverKey, utf8Encode(m.authMessage))
	if err != nil {
		return nil, err
	}
	m.expectedServerSig = expectedSig

	m.step = 2
	resp := clientFinalNoProof + ",p=" + b64Encode(proof)
	return utf8Encode(resp), nil
}

func (m *scramMechanism) verifyServerFinal(challenge []byte) ([]byte, error) {
	serverFinal := utf8Decode(challenge)
	if !strings.HasPrefix(serverFinal, "v=") {
		return nil, fmt.Errorf("%w: server-final missing v=", ErrMalformedServerResponse)
	}
	got := serverFinal[2:]
	want := b64Encode(m.expectedServerSig)
	if got != want {
		return nil, ErrServerVerificationFailed
	}
	m.step = 3
	return []byte{}, nil
}

// parseServerFirst parses a server-first-message, enforcing the strict
// attribute order required by §4.7: an optional leading "m=" extension is
// discarded, then "r=" (which must begin with clientNonce), then "s=",
// then "i=".
func parseServerFirst(s, clientNonce string) (serverNonce string, salt []byte, iterCount int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) > 0 && strings.HasPrefix(parts[0], "m=") {
		parts = parts[1:]
	}
	if len(parts) < 3 {
		return "", nil, 0, fmt.Errorf("%w: server-first-message too short", ErrMalformedServerResponse)
	}
	if !strings.HasPrefix(parts[0], "r=") {
		return "", nil, 0, fmt.Errorf("%w: expected r= attribute", ErrMalformedServerResponse)
	}
	serverNonce = parts[0][2:]
	if !strings.HasPrefix(serverNonce, clientNonce) {
		return "", nil, 0, fmt.Errorf("%w: server nonce does not extend client nonce", ErrMalformedServerResponse)
	}

	if !strings.HasPrefix(parts[1], "s=") {
		return "", nil, 0, fmt.Errorf("%w: expected s= attribute", ErrMalformedServerResponse)
	}
	salt, err = b64Decode(parts[1][2:])
	if err != nil {
		return "", nil, 0, fmt.Errorf("%w: invalid salt", ErrMalformedServerResponse)
	}

	if !strings.HasPrefix(parts[2], "i=") {
		return "", nil, 0, fmt.Errorf("%w: expected i= attribute", ErrMalformedServerResponse)
	}
	iterCount, err = strconv.Atoi(parts[2][2:])
	if err != nil || iterCount <= 0 {
		return "", nil, 0, fmt.Errorf("%w: invalid iteration count", ErrMalformedServerResponse)
	}

	return serverNonce, salt, iterCount, nil
}

// escapeSCRAMUsername escapes ',' and '=' per RFC 5802 §5.1 in a single
// left-to-right scan: each input rune is classified once, so an escaped
// '=' produced for a ',' is never rescanned and double-escaped.
func escapeSCRAMUsername(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ',':
			b.WriteString("=2C")
		case '=':
			b.WriteString("=3D")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
