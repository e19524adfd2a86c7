package decoder

// DecodeOptions provides configuration options for decoding GEDCOM
// input into a tree.
type DecodeOptions struct {
	// StrictMode rejects non-blank lines that match no record
	// instead of silently skipping them.
	StrictMode bool

	// MaxNestingDepth caps the accepted level value. 0 disables the
	// cap; records deeper than any open ancestor are then orphaned
	// by the builder rather than rejected.
	MaxNestingDepth int
}

// DefaultOptions returns the default decoding options: lenient line
// handling and no depth cap.
func DefaultOptions() *DecodeOptions {
	return &DecodeOptions{
		StrictMode:      false,
		MaxNestingDepth: 0,
	}
}
