// Package sentence builds the canonical rune sequence and word boundary
// annotations the matcher operates on. Construction is a single
// left-to-right pass with one rune of lookahead; everything except the
// checked flags is immutable afterward
package sentence

import (
	"unicode"

	"mouthsoap/internal/core/normalize"
)

// Marker records where a word begins within the canonical contents.
// Start and End are equal at construction and never updated; markers
// pin only the word's first rune, not its extent.
// TODO: grow markers into real spans that split as the matcher claims
// regions, so partial censoring can skip already-claimed stretches
type Marker struct {
	Start int
	End   int
}

// Sentence owns four parallel sequences over the canonical runes:
// contents, one boundary per rune, one checked flag per rune, and one
// marker per detected word
type Sentence struct {
	contents   []rune
	boundaries []Boundary
	checked    []bool
	markers    []Marker
}

// Option tweaks sentence construction
type Option func(*options)

type options struct {
	norm *normalize.Normalizer
}

// WithNormalizer injects the upstream normalizer, mainly so tests can
// swap the confusable table
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(o *options) {
		if n != nil {
			o.norm = n
		}
	}
}

// New normalizes raw and scans it into a Sentence. Never fails: every
// input string, including the empty one, yields a well-formed Sentence
func New(raw string, opts ...Option) *Sentence {
	o := options{norm: normalize.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	rs := []rune(o.norm.Normalize(raw))
	s := &Sentence{
		contents:   rs,
		boundaries: make([]Boundary, 0, len(rs)),
		checked:    make([]bool, 0, len(rs)),
	}

	for i, r := range rs {
		var b Boundary
		switch {
		case isFiller(r):
			b = NoContent
		case i > 0 && s.boundaries[i-1].IsWord():
			b = Word
		default:
			b = Start
		}

		// one rune of lookahead: a word rune with no word rune after it
		// closes its word
		closing := i+1 >= len(rs) || isFiller(rs[i+1])

		switch b {
		case Start:
			// the marker lands before the Mixed upgrade, so one-rune
			// words carry a marker too
			s.markers = append(s.markers, Marker{Start: i, End: i})
			if closing {
				b = Mixed
			}
		case Word:
			if closing {
				b = End
			}
		}

		s.checked = append(s.checked, false)
		s.boundaries = append(s.boundaries, b)
	}

	return s
}

// isFiller reports whether r is non-word filler
func isFiller(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// Len returns the number of canonical runes
func (s *Sentence) Len() int { return len(s.contents) }

// String reconstructs the normalized contents. This is the canonical
// form, not the original input; substitutions and folding are one-way
func (s *Sentence) String() string { return string(s.contents) }

// Boundaries returns the per-rune boundary classifications.
// The slice is shared; callers must treat it as read-only
func (s *Sentence) Boundaries() []Boundary { return s.boundaries }

// Checked returns the per-rune matched flags. The slice is shared and
// meant to be mutated by the matcher; the Sentence itself never writes
// to it after construction and does no locking, so concurrent matching
// passes must coordinate their own writes
func (s *Sentence) Checked() []bool { return s.checked }

// IsChecked reports the checked flag at i
func (s *Sentence) IsChecked(i int) bool { return s.checked[i] }

// SetChecked sets the checked flag at i
func (s *Sentence) SetChecked(i int, v bool) { s.checked[i] = v }

// WordMarkers returns one marker per word start, in scan order.
// Shared slice, read-only; reserved for the matching subsystem
func (s *Sentence) WordMarkers() []Marker { return s.markers }
