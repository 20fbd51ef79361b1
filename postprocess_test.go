package entitysdk

import (
	"strings"
	"testing"
)

// ══════════════════════════════════════════════
// Response post-processing
// ══════════════════════════════════════════════

func TestClean_SpeakerPrefixStripped(t *testing.T) {
	got, ok := CleanResponse("Venom: We could eat him.")
	if !ok || got != "We could eat him." {
		t.Fatalf("expected speaker prefix stripped, got %q (ok=%v)", got, ok)
	}
}

func TestClean_SilenceMarkerIsNull(t *testing.T) {
	if _, ok := CleanResponse("..."); ok {
		t.Fatal("silence marker must yield no commentary")
	}
	if _, ok := CleanResponse("  ...  "); ok {
		t.Fatal("padded silence marker must yield no commentary")
	}
}

func TestClean_TooShortIsNull(t *testing.T) {
	if _, ok := CleanResponse("ah"); ok {
		t.Fatal("sub-3-character output must yield no commentary")
	}
	if _, ok := CleanResponse(""); ok {
		t.Fatal("empty output must yield no commentary")
	}
}

func TestClean_WrappingQuotesStripped(t *testing.T) {
	got, ok := CleanResponse(`"Watch the hands."`)
	if !ok || got != "Watch the hands." {
		t.Fatalf("double quotes: got %q", got)
	}
	got, ok = CleanResponse(`'Watch the hands.'`)
	if !ok || got != "Watch the hands." {
		t.Fatalf("single quotes: got %q", got)
	}
	// Interior quotes survive.
	got, _ = CleanResponse(`He said "no" again.`)
	if got != `He said "no" again.` {
		t.Fatalf("interior quotes must survive, got %q", got)
	}
}

func TestClean_MarkupStripped(t *testing.T) {
	got, ok := CleanResponse("**Bold** and *italic* words.")
	if !ok || got != "Bold and italic words." {
		t.Fatalf("expected markup stripped, got %q", got)
	}
}

func TestClean_TruncatesAtSentenceBoundary(t *testing.T) {
	// 800 chars with a sentence boundary at index 420.
	raw := strings.Repeat("a", 420) + "." + strings.Repeat("b", 379)
	got, ok := CleanResponse(raw)
	if !ok {
		t.Fatal("expected commentary")
	}
	if len(got) != 421 {
		t.Fatalf("expected 421 chars, got %d", len(got))
	}
	if !strings.HasSuffix(got, ".") {
		t.Fatal("expected truncation to end at the sentence boundary")
	}
}

func TestClean_HardTruncateWithoutBoundary(t *testing.T) {
	raw := strings.Repeat("x", 800)
	got, ok := CleanResponse(raw)
	if !ok {
		t.Fatal("expected commentary")
	}
	if len(got) != 503 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected 500 chars plus ellipsis, got len %d", len(got))
	}
}

func TestClean_EarlyBoundaryIgnored(t *testing.T) {
	// Boundary at 100 is before the 200 floor; hard truncation applies.
	raw := strings.Repeat("a", 100) + "." + strings.Repeat("b", 700)
	got, _ := CleanResponse(raw)
	if !strings.HasSuffix(got, "...") {
		t.Fatal("boundary before position 200 must not be used")
	}
}

func TestClean_ShortInputUntouched(t *testing.T) {
	got, ok := CleanResponse("  You almost said it.  ")
	if !ok || got != "You almost said it." {
		t.Fatalf("expected trimmed passthrough, got %q", got)
	}
}
