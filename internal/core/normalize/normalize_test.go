package normalize

import (
	"testing"

	"mouthsoap/internal/core/confusables"
)

// Test table covers each stage and combined pipelines.
func TestNormalize_Table(t *testing.T) {
	n := Default()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "hello world",
			out:  "hello world",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'f', 'o', 'o', 0x80, ' ', 'b', 'a', 'r'}),
			out:  "foo bar",
		},
		{
			name: "case fold",
			in:   "SteVE",
			out:  "steve",
		},
		{
			name: "remove zero-widths",
			in:   "h​e‍llo",
			out:  "hello",
		},
		{
			name: "remove combining marks",
			in:   "café", // combining acute accent
			out:  "cafe",
		},
		{
			name: "precomposed accent decomposes",
			in:   "café",
			out:  "cafe",
		},
		{
			name: "accent stripped before confusable lookup",
			in:   "са́т", // cyrillic es, a + combining acute, te
			out:  "cat",
		},
		{
			name: "width fold fullwidth",
			in:   "ＷＩＤＥ text",
			out:  "wide text",
		},
		{
			name: "nfkc ligature",
			in:   "oﬃce",
			out:  "office",
		},
		{
			name: "cyrillic confusables",
			in:   "Ѕtеvе", // Ѕtеvе
			out:  "steve",
		},
		{
			name: "leet folding basic",
			in:   "5h!t 3l1te f@ce 700l",
			out:  "shit elite face tool",
		},
		{
			name: "whitespace preserved verbatim",
			in:   "a\t\tb\nc   d",
			out:  "a\t\tb\nc   d",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
		{
			name: "idempotent",
			in:   n.Normalize("ＳtеVe  dr0wned\t"),
			out:  "steve  drowned\t",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			// Idempotence check: normalize again should be identical
			got2 := n.Normalize(got)
			if got2 != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, got2)
			}
		})
	}
}

// identity is a Replacer that substitutes nothing.
type identity struct{}

func (identity) Replace(s string) string { return s }

// TestNormalize_InjectedTable verifies the table is a swappable seam and
// that substitution runs before case folding.
func TestNormalize_InjectedTable(t *testing.T) {
	plain := New(identity{})
	if got := plain.Normalize("5h1t"); got != "5h1t" {
		t.Fatalf("identity table: got %q, want input unchanged", got)
	}

	custom := New(confusables.NewTable(map[rune]string{'Z': "s"}))
	// 'Z' must hit the table before folding would turn it into 'z'
	if got := custom.Normalize("Zip"); got != "sip" {
		t.Fatalf("custom table: got %q, want %q", got, "sip")
	}
}
