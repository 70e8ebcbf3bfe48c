package serialize

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// Encode/decode pairs for every primitive width. Encoding is a plain
// little-endian copy; decoding slices the same number of bytes back off
// the front. A short buffer panics, which is the desired behavior: it
// means an encoder and decoder disagree on a type's layout.

// EncodeUint8 writes v as 1 byte.
func EncodeUint8(v uint8, buf []byte) (Store, []byte) {
	buf[0] = v
	return NewStore(DecodeUint8, buf[:1]), buf[1:]
}

// DecodeUint8 reads the byte written by EncodeUint8.
func DecodeUint8(buf []byte) (string, []byte) {
	return strconv.FormatUint(uint64(buf[0]), 10), buf[1:]
}

// EncodeUint16 writes v as 2 little-endian bytes.
func EncodeUint16(v uint16, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint16(buf, v)
	return NewStore(DecodeUint16, buf[:2]), buf[2:]
}

// DecodeUint16 reads the bytes written by EncodeUint16.
func DecodeUint16(buf []byte) (string, []byte) {
	return strconv.FormatUint(uint64(binary.LittleEndian.Uint16(buf)), 10), buf[2:]
}

// EncodeUint32 writes v as 4 little-endian bytes.
func EncodeUint32(v uint32, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint32(buf, v)
	return NewStore(DecodeUint32, buf[:4]), buf[4:]
}

// DecodeUint32 reads the bytes written by EncodeUint32.
func DecodeUint32(buf []byte) (string, []byte) {
	return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(buf)), 10), buf[4:]
}

// EncodeUint64 writes v as 8 little-endian bytes.
func EncodeUint64(v uint64, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint64(buf, v)
	return NewStore(DecodeUint64, buf[:8]), buf[8:]
}

// DecodeUint64 reads the bytes written by EncodeUint64.
func DecodeUint64(buf []byte) (string, []byte) {
	return strconv.FormatUint(binary.LittleEndian.Uint64(buf), 10), buf[8:]
}

// EncodeInt8 writes v as 1 byte.
func EncodeInt8(v int8, buf []byte) (Store, []byte) {
	buf[0] = byte(v)
	return NewStore(DecodeInt8, buf[:1]), buf[1:]
}

// DecodeInt8 reads the byte written by EncodeInt8.
func DecodeInt8(buf []byte) (string, []byte) {
	return strconv.FormatInt(int64(int8(buf[0])), 10), buf[1:]
}

// EncodeInt16 writes v as 2 little-endian bytes.
func EncodeInt16(v int16, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint16(buf, uint16(v))
	return NewStore(DecodeInt16, buf[:2]), buf[2:]
}

// DecodeInt16 reads the bytes written by EncodeInt16.
func DecodeInt16(buf []byte) (string, []byte) {
	return strconv.FormatInt(int64(int16(binary.LittleEndian.Uint16(buf))), 10), buf[2:]
}

// EncodeInt32 writes v as 4 little-endian bytes.
func EncodeInt32(v int32, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return NewStore(DecodeInt32, buf[:4]), buf[4:]
}

// DecodeInt32 reads the bytes written by EncodeInt32.
func DecodeInt32(buf []byte) (string, []byte) {
	return strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(buf))), 10), buf[4:]
}

// EncodeInt64 writes v as 8 little-endian bytes.
func EncodeInt64(v int64, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return NewStore(DecodeInt64, buf[:8]), buf[8:]
}

// DecodeInt64 reads the bytes written by EncodeInt64.
func DecodeInt64(buf []byte) (string, []byte) {
	return strconv.FormatInt(int64(binary.LittleEndian.Uint64(buf)), 10), buf[8:]
}

// EncodeFloat32 writes the IEEE-754 bits of v as 4 little-endian bytes.
func EncodeFloat32(v float32, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	return NewStore(DecodeFloat32, buf[:4]), buf[4:]
}

// DecodeFloat32 reads the bytes written by EncodeFloat32.
func DecodeFloat32(buf []byte) (string, []byte) {
	v := math.Float32frombits(binary.LittleEndian.Uint32(buf))
	return FormatFloat(float64(v), 32), buf[4:]
}

// EncodeFloat64 writes the IEEE-754 bits of v as 8 little-endian bytes.
func EncodeFloat64(v float64, buf []byte) (Store, []byte) {
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
	return NewStore(DecodeFloat64, buf[:8]), buf[8:]
}

// DecodeFloat64 reads the bytes written by EncodeFloat64.
func DecodeFloat64(buf []byte) (string, []byte) {
	v := math.Float64frombits(binary.LittleEndian.Uint64(buf))
	return FormatFloat(v, 64), buf[8:]
}

// EncodeBool writes v as 1 byte (0 or 1).
func EncodeBool(v bool, buf []byte) (Store, []byte) {
	if v {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
	return NewStore(DecodeBool, buf[:1]), buf[1:]
}

// DecodeBool reads the byte written by EncodeBool.
func DecodeBool(buf []byte) (string, []byte) {
	return strconv.FormatBool(buf[0] != 0), buf[1:]
}

// FormatFloat renders a float the way the rest of the codecs expect:
// full decimal form, with integral values keeping a trailing ".0" so
// that 10.0 round-trips as "10.0" rather than "10". Infinities render as
// "inf"/"-inf" and NaN as "NaN".
func FormatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
