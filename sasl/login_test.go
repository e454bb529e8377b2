package sasl

import "testing"

func TestLoginName(t *testing.T) {
	t.Parallel()
	m := newLoginMechanism(Credentials{User: "tim", Pass: "tanstaaftanstaaf"}, DefaultProvider)
	if m.Name() != "LOGIN" {
		t.Errorf("Name() = %q, want %q", m.Name(), "LOGIN")
	}
	if m.IsClientFirst() {
		t.Error("LOGIN should not be client-first")
	}
}

func TestLoginTwoSteps(t *testing.T) {
	t.Parallel()
	m := newLoginMechanism(Credentials{User: "tim", Pass: "tanstaaftanstaaf"}, DefaultProvider)

	challenge1, err := b64Decode("VXNlciBOYW1lAA==")
	if err != nil {
		t.Fatalf("b64Decode: %v", err)
	}
	resp1, err := m.Step(challenge1)
	if err != nil {
		t.Fatalf("Step 1: %v", err)
	}
	if got := b64Encode(resp1); got != "dGlt" {
		t.Errorf("Step 1 = %q, want %q", got, "dGlt")
	}
	if m.Done() {
		t.Error("should not be done after the first step")
	}

	challenge2, err := b64Decode("UGFzc3dvcmQA")
	if err != nil {
		t.Fatalf("b64Decode: %v", err)
	}
	resp2, err := m.Step(challenge2)
	if err != nil {
		t.Fatalf("Step 2: %v", err)
	}
	if got := b64Encode(resp2); got != "dGFuc3RhYWZ0YW5zdGFhZg==" {
		t.Errorf("Step 2 = %q, want %q", got, "dGFuc3RhYWZ0YW5zdGFhZg==")
	}
	if !m.Done() {
		t.Error("should be done after the second step")
	}
}

func TestLoginTooManySteps(t *testing.T) {
	t.Parallel()
	m := newLoginMechanism(Credentials{User: "tim", Pass: "pw"}, DefaultProvider)
	m.Step(nil)
	m.Step(nil)
	if _, err := m.Step(nil); err != ErrTooManySteps {
		t.Errorf("third Step() err = %v, want ErrTooManySteps", err)
	}
}
