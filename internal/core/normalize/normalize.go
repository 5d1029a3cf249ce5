// Package normalize canonicalizes raw text before boundary scanning
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Accent decomposition NFD strip combining marks NFC so accented
//   lookalikes reduce to their base rune before table lookup
// 3 Confusable substitution via the injected table
// 4 Unicode NFKC normalization
// 5 Case folding
// 6 Remove zero-width format chars ZWJ ZWNJ FEFF etc
// 7 Width fold fullwidth to ASCII
// Whitespace and control characters pass through untouched; the boundary
// scanner classifies them, so collapsing or trimming here would corrupt
// word segmentation
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"mouthsoap/internal/core/confusables"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Replacer is the confusable table contract: a deterministic pure
// function from a string to its substituted form
type Replacer interface {
	Replace(s string) string
}

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct {
	table Replacer
}

// pool of decomposition prepass chains run before table lookup
var decomposePool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			norm.NFC,
		)
	},
}

// pool of fresh transformer chains for the fold stages
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Cf)), // strip format chars
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Normalizer around the given confusable table
func New(table Replacer) *Normalizer { return &Normalizer{table: table} }

// Default returns a Normalizer backed by the built-in confusable table
func Default() *Normalizer { return defaultNormalizer }

var defaultNormalizer = New(confusables.Default())

// Normalize returns the canonical form of s following the pipeline above.
// Total and deterministic: every input produces exactly one output and
// there are no failure modes. Idempotent as long as the injected table
// maps onto its own fixed points
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2 decompose and drop accents so the table sees base runes
	dt := decomposePool.Get().(transform.Transformer)
	s, _, _ = transform.String(dt, s)
	dt.Reset()
	decomposePool.Put(dt)

	// 3 confusable substitution
	s = n.table.Replace(s)

	// 4-7 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return ns
}
