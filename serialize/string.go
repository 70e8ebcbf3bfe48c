package serialize

import "encoding/binary"

// Strings and byte strings encode as an 8-byte little-endian length
// prefix followed by the raw bytes.

// StringSizeRequired returns the encoded size of s.
func StringSizeRequired(s string) int { return SizeLength + len(s) }

// EncodeString writes s with its length prefix.
func EncodeString(s string, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint64(buf, uint64(len(s)))
	copy(buf[SizeLength:], s)
	n := SizeLength + len(s)
	return NewStore(DecodeString, buf[:n]), buf[n:]
}

// EncodeBytes writes b with its length prefix. The decoded text treats
// the payload as UTF-8.
func EncodeBytes(b []byte, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint64(buf, uint64(len(b)))
	copy(buf[SizeLength:], b)
	n := SizeLength + len(b)
	return NewStore(DecodeString, buf[:n]), buf[n:]
}

// DecodeString reads a length-prefixed string.
func DecodeString(buf []byte) (string, []byte) {
	n := binary.LittleEndian.Uint64(buf)
	end := SizeLength + int(n)
	return string(buf[SizeLength:end]), buf[end:]
}

// Str adapts a Go string to the Serializer contract.
type Str string

// BufferSizeRequired returns the encoded size.
func (s Str) BufferSizeRequired() int { return StringSizeRequired(string(s)) }

// Encode writes the string with its length prefix.
func (s Str) Encode(buf []byte) (Store, []byte) { return EncodeString(string(s), buf) }
