package sasl

import "github.com/meszmate/go-sasl/sasl/saslprep"

// xoauth2Mechanism implements Google's XOAUTH2. A server that rejects the
// bearer token sends a JSON error blob as its one continuation instead of
// success; this mechanism does not parse it, it simply emits an empty
// response so the server can complete the failure turn.
type xoauth2Mechanism struct {
	user, token string
	step        int
}

func newXOAuth2Mechanism(creds Credentials, _ CryptoProvider) Mechanism {
	return &xoauth2Mechanism{user: creds.User, token: creds.OAuthBearer}
}

func (m *xoauth2Mechanism) Name() string        { return "XOAUTH2" }
func (m *xoauth2Mechanism) IsClientFirst() bool { return true }
func (m *xoauth2Mechanism) IsValid() bool       { return m.user != "" && m.token != "" }
func (m *xoauth2Mechanism) Done() bool          { return m.step >= 2 }

func (m *xoauth2Mechanism) Step(_ []byte) ([]byte, error) {
	switch m.step {
	case 0:
		m.step++
		resp := "user=" + saslprep.Prepare(m.user) + "\x01auth=Bearer " + m.token + "\x01\x01"
		return utf8Encode(resp), nil
	case 1:
		m.step++
		return []byte{}, nil
	default:
		return nil, ErrTooManySteps
	}
}
