package sasl

import "github.com/meszmate/go-sasl/sasl/saslprep"

// loginMechanism implements the non-standard but widely deployed LOGIN
// mechanism. It ignores the text of the two server challenges (typically
// "Username:" / "Password:" prompts) and always answers user then pass.
type loginMechanism struct {
	user, pass string
	step       int
}

func newLoginMechanism(creds Credentials, _ CryptoProvider) Mechanism {
	return &loginMechanism{user: creds.User, pass: creds.Pass}
}

func (m *loginMechanism) Name() string        { return "LOGIN" }
func (m *loginMechanism) IsClientFirst() bool { return false }
func (m *loginMechanism) IsValid() bool       { return m.user != "" && m.pass != "" }
func (m *loginMechanism) Done() bool          { return m.step >= 2 }

func (m *loginMechanism) Step(_ []byte) ([]byte, error) {
	switch m.step {
	case 0:
		m.step++
		return utf8Encode(saslprep.Prepare(m.user)), nil
	case 1:
		m.step++
		return utf8Encode(saslprep.Prepare(m.pass)), nil
	default:
		return nil, ErrTooManySteps
	}
}
