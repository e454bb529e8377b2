package sasl

import (
	"encoding/hex"

	"github.com/meszmate/go-sasl/sasl/saslprep"
)

// cramMD5Mechanism implements CRAM-MD5 (RFC 2195): a single HMAC-MD5 over
// the server challenge, keyed by the password.
type cramMD5Mechanism struct {
	user, pass string
	provider   CryptoProvider
	step       int
}

func newCramMD5Mechanism(creds Credentials, provider CryptoProvider) Mechanism {
	return &cramMD5Mechanism{user: creds.User, pass: creds.Pass, provider: provider}
}

func (m *cramMD5Mechanism) Name() string        { return "CRAM-MD5" }
func (m *cramMD5Mechanism) IsClientFirst() bool { return false }
func (m *cramMD5Mechanism) IsValid() bool       { return m.user != "" && m.pass != "" }
func (m *cramMD5Mechanism) Done() bool          { return m.step >= 1 }

func (m *cramMD5Mechanism) Step(challenge []byte) ([]byte, error) {
	if m.step >= 1 {
		return nil, ErrTooManySteps
	}
	m.step++
	pass := saslprep.Prepare(m.pass)
	mac, err := m.provider.Hmac(MD5, utf8Encode(pass), challenge)
	if err != nil {
		return nil, err
	}
	resp := saslprep.Prepare(m.user) + " " + hex.EncodeToString(mac)
	return utf8Encode(resp), nil
}
