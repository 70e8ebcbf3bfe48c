package serialize

// SizeLength is the number of bytes used for length prefixes and element
// counts: a 64-bit little-endian unsigned integer.
const SizeLength = 8

// DecodeFn turns encoded bytes back into display text. It reads its
// value from the front of buf and returns the text together with the
// unread remainder. Decode functions must not capture producer-side
// state and must be idempotent.
type DecodeFn func(buf []byte) (string, []byte)

// Store remembers how to turn an encoded arena region back into a
// displayable fragment. It does not own the bytes; they stay valid until
// the record that captured the Store is drained.
type Store struct {
	decode DecodeFn
	buf    []byte
}

// NewStore pairs encoded bytes with their decoder.
func NewStore(decode DecodeFn, buf []byte) Store {
	return Store{decode: decode, buf: buf}
}

// Bytes returns the encoded region.
func (s Store) Bytes() []byte { return s.buf }

// String decodes the bytes into their display text.
func (s Store) String() string {
	if s.decode == nil {
		return ""
	}
	text, _ := s.decode(s.buf)
	return text
}

// Serializer is the variable-size serialization contract. Encode writes
// into the front of buf — which the caller sized using
// BufferSizeRequired — and returns the Store over the written bytes plus
// the unwritten remainder of buf.
type Serializer interface {
	// BufferSizeRequired is an upper bound on the bytes Encode writes.
	BufferSizeRequired() int

	// Encode writes the value into the front of buf and returns the
	// Store over the written prefix and the rest of buf.
	Encode(buf []byte) (Store, []byte)
}
