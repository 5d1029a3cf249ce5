package sentence

// Boundary classifies the role a single rune plays in word segmentation
type Boundary uint8

const (
	// Start is the first rune of a word with more word runes following
	Start Boundary = iota
	// Word is an interior rune of a multi-rune word
	Word
	// End is the last rune of a multi-rune word
	End
	// Mixed is a one-rune word, both the start and the end
	Mixed
	// NoContent is whitespace or a control rune, never part of a word
	NoContent
)

// IsWord reports whether the boundary belongs to a word
func (b Boundary) IsWord() bool {
	switch b {
	case Start, Word, End, Mixed:
		return true
	case NoContent:
		return false
	}
	return false
}

// String returns the lowercase name of the boundary
func (b Boundary) String() string {
	switch b {
	case Start:
		return "start"
	case Word:
		return "word"
	case End:
		return "end"
	case Mixed:
		return "mixed"
	case NoContent:
		return "no_content"
	}
	return "unknown"
}
