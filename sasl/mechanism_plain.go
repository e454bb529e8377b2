package sasl

import "github.com/meszmate/go-sasl/sasl/saslprep"

// plainMechanism implements PLAIN (RFC 4616).
type plainMechanism struct {
	user, pass string
	step       int
}

func newPlainMechanism(creds Credentials, _ CryptoProvider) Mechanism {
	return &plainMechanism{user: creds.User, pass: creds.Pass}
}

func (m *plainMechanism) Name() string        { return "PLAIN" }
func (m *plainMechanism) IsClientFirst() bool { return true }
func (m *plainMechanism) IsValid() bool       { return m.user != "" && m.pass != "" }
func (m *plainMechanism) Done() bool          { return m.step >= 1 }

func (m *plainMechanism) Step(_ []byte) ([]byte, error) {
	if m.step >= 1 {
		return nil, ErrTooManySteps
	}
	m.step++
	user := saslprep.Prepare(m.user)
	pass := saslprep.Prepare(m.pass)
	resp := "\x00" + user + "\x00" + pass
	return utf8Encode(resp), nil
}
