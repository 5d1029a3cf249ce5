// Package confusables maps visually confusable characters onto canonical
// latin forms so lookalike spellings cannot slip past the matcher.
// A Table is static read-only data; Replace is a pure function and the
// normalizer treats it as an injected dependency
package confusables

// Table is an immutable rune to replacement mapping.
// Runes absent from the table map to themselves.
// Replacements may be longer than one rune, so output length is not
// guaranteed equal to input length
type Table struct {
	m map[rune]string
}

// NewTable copies m into an immutable Table
func NewTable(m map[rune]string) Table {
	cp := make(map[rune]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Table{m: cp}
}

// Len returns the number of mapped runes
func (t Table) Len() int { return len(t.m) }

// Lookup returns the replacement for r and whether r is mapped
func (t Table) Lookup(r rune) (string, bool) {
	v, ok := t.m[r]
	return v, ok
}

// Replace substitutes every mapped rune in s with its canonical form.
// Unmapped runes pass through untouched. The fast path returns s intact
// when nothing in it is mapped
func (t Table) Replace(s string) string {
	if s == "" || len(t.m) == 0 {
		return s
	}

	// Fast path: scan for the first mapped rune
	changedAt := -1
	for i, r := range s {
		if _, ok := t.m[r]; ok {
			changedAt = i
			break
		}
	}
	if changedAt < 0 {
		return s
	}

	// Slow path: rebuild from the first mapped rune onward
	out := make([]byte, 0, len(s))
	out = append(out, s[:changedAt]...)
	for _, r := range s[changedAt:] {
		if rep, ok := t.m[r]; ok {
			out = append(out, rep...)
			continue
		}
		out = append(out, string(r)...)
	}
	return string(out)
}

// Default returns the built-in table.
// The mapping is a curated skeleton: cross-script lookalikes collapse to
// the latin letter they imitate and a small leet set folds digits and
// symbols commonly used as letter stand-ins
func Default() Table { return defaultTable }

var defaultTable = NewTable(defaultMap)
