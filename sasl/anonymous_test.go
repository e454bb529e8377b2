package sasl

import "testing"

func TestAnonymousName(t *testing.T) {
	t.Parallel()
	m := newAnonymousMechanism(Credentials{}, DefaultProvider)
	if m.Name() != "ANONYMOUS" {
		t.Errorf("Name() = %q, want %q", m.Name(), "ANONYMOUS")
	}
	if !m.IsClientFirst() {
		t.Error("ANONYMOUS should be client-first")
	}
}

func TestAnonymousAlwaysValid(t *testing.T) {
	t.Parallel()
	m := newAnonymousMechanism(Credentials{}, DefaultProvider)
	if !m.IsValid() {
		t.Error("ANONYMOUS should be valid with no credentials at all")
	}
}

func TestAnonymousStep(t *testing.T) {
	t.Parallel()
	m := newAnonymousMechanism(Credentials{User: "trace-info"}, DefaultProvider)
	resp, err := m.Step(nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if string(resp) != "trace-info" {
		t.Errorf("Step() = %q, want %q", resp, "trace-info")
	}
	if !m.Done() {
		t.Error("should be done after one step")
	}
}

func TestAnonymousStepEmpty(t *testing.T) {
	t.Parallel()
	m := newAnonymousMechanism(Credentials{}, DefaultProvider)
	resp, err := m.Step(nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(resp) != 0 {
		t.Errorf("Step() = %q, want empty", resp)
	}
}

func TestAnonymousTooManySteps(t *testing.T) {
	t.Parallel()
	m := newAnonymousMechanism(Credentials{User: "x"}, DefaultProvider)
	if _, err := m.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if _, err := m.Step(nil); err != ErrTooManySteps {
		t.Errorf("second Step() err = %v, want ErrTooManySteps", err)
	}
}
