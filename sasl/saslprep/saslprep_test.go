package saslprep

import "testing"

func TestPrepareStripsSoftHyphen(t *testing.T) {
	t.Parallel()
	got := Prepare("ti­m")
	if got != "tim" {
		t.Errorf("Prepare() = %q, want %q", got, "tim")
	}
}

func TestPrepareMapsNonASCIISpaceToSpace(t *testing.T) {
	t.Parallel()
	got := Prepare("a b")
	if got != "a b" {
		t.Errorf("Prepare() = %q, want %q", got, "a b")
	}
}

func TestPrepareZeroWidthSpaceMapsToSpace(t *testing.T) {
	t.Parallel()
	// U+200B is in the mapped-to-space range (U+2000..U+200B), not the
	// mapped-to-nothing table.
	got := Prepare("a​b")
	if got != "a b" {
		t.Errorf("Prepare() = %q, want %q", got, "a b")
	}
}

func TestPrepareIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"tim", "ti­m", "a b", "café", "­­"}
	for _, in := range inputs {
		once := Prepare(in)
		twice := Prepare(once)
		if once != twice {
			t.Errorf("Prepare(%q) not idempotent: %q vs %q", in, once, twice)
		}
	}
}

func TestPrepareLeavesPlainASCIIAlone(t *testing.T) {
	t.Parallel()
	if got := Prepare("tanstaaftanstaaf"); got != "tanstaaftanstaaf" {
		t.Errorf("Prepare() = %q, want unchanged", got)
	}
}
