package serialize

import (
	"encoding/binary"
	"math"
	"strings"
)

// Sequences encode as an 8-byte little-endian element count followed by
// the elements. Fixed-size elements pack back-to-back; variable-size
// elements each carry their own framing. Decoded text is "[a, b, c]".

func putCount(n int, buf []byte) []byte {
	binary.LittleEndian.PutUint64(buf, uint64(n))
	return buf[SizeLength:]
}

func sliceText(parts []string) string {
	return "[" + strings.Join(parts, ", ") + "]"
}

// Uint32Slice adapts []uint32 to the Serializer contract.
type Uint32Slice []uint32

// BufferSizeRequired returns the count prefix plus 4 bytes per element.
func (s Uint32Slice) BufferSizeRequired() int { return SizeLength + 4*len(s) }

// Encode writes the count and packed elements.
func (s Uint32Slice) Encode(buf []byte) (Store, []byte) {
	rest := putCount(len(s), buf)
	for _, v := range s {
		binary.LittleEndian.PutUint32(rest, v)
		rest = rest[4:]
	}
	n := s.BufferSizeRequired()
	return NewStore(DecodeUint32Slice, buf[:n]), buf[n:]
}

// DecodeUint32Slice reads the sequence written by Uint32Slice.Encode.
func DecodeUint32Slice(buf []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint64(buf))
	rest := buf[SizeLength:]
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i], rest = DecodeUint32(rest)
	}
	return sliceText(parts), rest
}

// Uint64Slice adapts []uint64 to the Serializer contract.
type Uint64Slice []uint64

// BufferSizeRequired returns the count prefix plus 8 bytes per element.
func (s Uint64Slice) BufferSizeRequired() int { return SizeLength + 8*len(s) }

// Encode writes the count and packed elements.
func (s Uint64Slice) Encode(buf []byte) (Store, []byte) {
	rest := putCount(len(s), buf)
	for _, v := range s {
		binary.LittleEndian.PutUint64(rest, v)
		rest = rest[8:]
	}
	n := s.BufferSizeRequired()
	return NewStore(DecodeUint64Slice, buf[:n]), buf[n:]
}

// DecodeUint64Slice reads the sequence written by Uint64Slice.Encode.
func DecodeUint64Slice(buf []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint64(buf))
	rest := buf[SizeLength:]
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i], rest = DecodeUint64(rest)
	}
	return sliceText(parts), rest
}

// Int32Slice adapts []int32 to the Serializer contract.
type Int32Slice []int32

// BufferSizeRequired returns the count prefix plus 4 bytes per element.
func (s Int32Slice) BufferSizeRequired() int { return SizeLength + 4*len(s) }

// Encode writes the count and packed elements.
func (s Int32Slice) Encode(buf []byte) (Store, []byte) {
	rest := putCount(len(s), buf)
	for _, v := range s {
		binary.LittleEndian.PutUint32(rest, uint32(v))
		rest = rest[4:]
	}
	n := s.BufferSizeRequired()
	return NewStore(DecodeInt32Slice, buf[:n]), buf[n:]
}

// DecodeInt32Slice reads the sequence written by Int32Slice.Encode.
func DecodeInt32Slice(buf []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint64(buf))
	rest := buf[SizeLength:]
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i], rest = DecodeInt32(rest)
	}
	return sliceText(parts), rest
}

// Int64Slice adapts []int64 to the Serializer contract.
type Int64Slice []int64

// BufferSizeRequired returns the count prefix plus 8 bytes per element.
func (s Int64Slice) BufferSizeRequired() int { return SizeLength + 8*len(s) }

// Encode writes the count and packed elements.
func (s Int64Slice) Encode(buf []byte) (Store, []byte) {
	rest := putCount(len(s), buf)
	for _, v := range s {
		binary.LittleEndian.PutUint64(rest, uint64(v))
		rest = rest[8:]
	}
	n := s.BufferSizeRequired()
	return NewStore(DecodeInt64Slice, buf[:n]), buf[n:]
}

// DecodeInt64Slice reads the sequence written by Int64Slice.Encode.
func DecodeInt64Slice(buf []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint64(buf))
	rest := buf[SizeLength:]
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i], rest = DecodeInt64(rest)
	}
	return sliceText(parts), rest
}

// Float64Slice adapts []float64 to the Serializer contract.
type Float64Slice []float64

// BufferSizeRequired returns the count prefix plus 8 bytes per element.
func (s Float64Slice) BufferSizeRequired() int { return SizeLength + 8*len(s) }

// Encode writes the count and packed elements.
func (s Float64Slice) Encode(buf []byte) (Store, []byte) {
	rest := putCount(len(s), buf)
	for _, v := range s {
		binary.LittleEndian.PutUint64(rest, math.Float64bits(v))
		rest = rest[8:]
	}
	n := s.BufferSizeRequired()
	return NewStore(DecodeFloat64Slice, buf[:n]), buf[n:]
}

// DecodeFloat64Slice reads the sequence written by Float64Slice.Encode.
func DecodeFloat64Slice(buf []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint64(buf))
	rest := buf[SizeLength:]
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i], rest = DecodeFloat64(rest)
	}
	return sliceText(parts), rest
}

// StringSlice adapts []string to the Serializer contract. Elements are
// variable-size, so each carries its own length prefix.
type StringSlice []string

// BufferSizeRequired returns the count prefix plus each element's
// length-prefixed size.
func (s StringSlice) BufferSizeRequired() int {
	total := SizeLength
	for _, v := range s {
		total += StringSizeRequired(v)
	}
	return total
}

// Encode writes the count and length-prefixed elements.
func (s StringSlice) Encode(buf []byte) (Store, []byte) {
	rest := putCount(len(s), buf)
	for _, v := range s {
		_, rest = EncodeString(v, rest)
	}
	n := s.BufferSizeRequired()
	return NewStore(DecodeStringSlice, buf[:n]), buf[n:]
}

// DecodeStringSlice reads the sequence written by StringSlice.Encode.
func DecodeStringSlice(buf []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint64(buf))
	rest := buf[SizeLength:]
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i], rest = DecodeString(rest)
	}
	return sliceText(parts), rest
}

// OptionInt32Slice adapts []*int32 to the Serializer contract. Each
// element is an optional: one marker byte plus the payload when present.
type OptionInt32Slice []*int32

// BufferSizeRequired returns the count prefix plus each element's
// marker-and-payload size.
func (s OptionInt32Slice) BufferSizeRequired() int {
	total := SizeLength
	for _, v := range s {
		total++
		if v != nil {
			total += 4
		}
	}
	return total
}

// Encode writes the count and marker-framed elements.
func (s OptionInt32Slice) Encode(buf []byte) (Store, []byte) {
	rest := putCount(len(s), buf)
	for _, v := range s {
		if v == nil {
			rest[0] = 0
			rest = rest[1:]
			continue
		}
		rest[0] = 1
		binary.LittleEndian.PutUint32(rest[1:], uint32(*v))
		rest = rest[5:]
	}
	n := s.BufferSizeRequired()
	return NewStore(DecodeOptionInt32Slice, buf[:n]), buf[n:]
}

// DecodeOptionInt32Slice reads the sequence written by
// OptionInt32Slice.Encode.
func DecodeOptionInt32Slice(buf []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint64(buf))
	rest := buf[SizeLength:]
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i], rest = DecodeOptionInt32(rest)
	}
	return sliceText(parts), rest
}
