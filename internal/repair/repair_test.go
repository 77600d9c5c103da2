package repair_test

import (
	"strings"
	"testing"

	"vidpack/internal/repair"
)

func TestFixesBareBooleanAttributes(t *testing.T) {
	in := `<svg><video controls autoplay><audio loop muted src="x"/></svg>`
	got := repair.Apply(in)

	if !strings.Contains(got, `<video controls="controls" autoplay="autoplay">`) {
		t.Fatalf("video attributes not repaired: %s", got)
	}
	if !strings.Contains(got, `<audio loop="loop" muted="muted" src="x"/>`) {
		t.Fatalf("audio attributes not repaired: %s", got)
	}
}

func TestLeavesValuedAttributesAlone(t *testing.T) {
	in := `<video controls="controls" preload="auto">`
	if got := repair.Apply(in); got != in {
		t.Fatalf("already-valid tag was rewritten: %s", got)
	}
}

func TestEscapesStrayAnglesInDescription(t *testing.T) {
	in := `<svg><desc>speed < 10 and height > 4</desc></svg>`
	got := repair.Apply(in)
	want := `<svg><desc>speed &lt; 10 and height &gt; 4</desc></svg>`
	if got != want {
		t.Fatalf("description not escaped:\n got %s\nwant %s", got, want)
	}
}

func TestRestoresIntendedMarkupInDescription(t *testing.T) {
	in := `<svg><desc>plain <em>emphasis</em> and a stray <</desc></svg>`
	got := repair.Apply(in)
	if !strings.Contains(got, "<em>emphasis</em>") {
		t.Fatalf("intended markup was not restored: %s", got)
	}
	if !strings.Contains(got, "stray &lt;") {
		t.Fatalf("stray bracket was not escaped: %s", got)
	}
}

func TestDoesNotTouchContentOutsideKnownRegions(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg"><title>a < b</title></svg>`
	if got := repair.Apply(in); got != in {
		t.Fatalf("content outside desc rewritten: %s", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	inputs := []string{
		`<svg><video controls autoplay></video></svg>`,
		`<svg><desc>x < y with <em>markup</em></desc></svg>`,
		`<svg><desc>already &lt;escaped&gt;</desc><audio muted/></svg>`,
		`plain text, nothing to do`,
		"",
	}
	for _, in := range inputs {
		once := repair.Apply(in)
		twice := repair.Apply(once)
		if once != twice {
			t.Fatalf("repair not idempotent for %q:\n once %q\ntwice %q", in, once, twice)
		}
	}
}

func TestUnmatchedInputReturnedUnchanged(t *testing.T) {
	in := `<svg><rect width="10"/></svg>`
	if got := repair.Apply(in); got != in {
		t.Fatalf("input without malformations changed: %s", got)
	}
}

func TestNames(t *testing.T) {
	if len(repair.Names()) == 0 {
		t.Fatal("expected at least one named rule")
	}
}
