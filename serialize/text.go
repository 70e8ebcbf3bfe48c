package serialize

// EncodeText stashes already-formatted text in the arena. The eager
// strategies (display and debug) format at the callsite and defer only
// the copy; the stored form is the same length-prefixed layout strings
// use, so DecodeString reads it back.
func EncodeText(text string, buf []byte) (Store, []byte) {
	return EncodeString(text, buf)
}

// TextSizeRequired returns the encoded size of already-formatted text.
func TextSizeRequired(text string) int { return StringSizeRequired(text) }
