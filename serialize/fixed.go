package serialize

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"sync"
)

// FixedSize is the compile-time-sized serialization contract. A type
// with a fixed little-endian byte width implements it with pointer
// receivers so UnmarshalLE can reconstruct the value at drain time.
//
// Implementations must keep ByteSize constant per type, MarshalLE must
// write exactly ByteSize bytes into dst, and UnmarshalLE must read the
// same bytes back. String supplies the drain-time display text.
type FixedSize interface {
	fmt.Stringer

	// ByteSize is the exact encoded width. Constant per type.
	ByteSize() int

	// MarshalLE writes the little-endian representation into dst,
	// which holds at least ByteSize bytes.
	MarshalLE(dst []byte)

	// UnmarshalLE reconstructs the value from src, which holds at
	// least ByteSize bytes.
	UnmarshalLE(src []byte)
}

// fixedDecoders caches one DecodeFn per concrete FixedSize type, so the
// hot encode path never composes functions.
var fixedDecoders sync.Map // reflect.Type -> DecodeFn

// FixedDecode returns the decoder for v's concrete type, building and
// caching it on first use. The decoder allocates a fresh value,
// unmarshals the fixed-width bytes into it, and returns its String.
func FixedDecode(v FixedSize) DecodeFn {
	t := reflect.TypeOf(v)
	if fn, ok := fixedDecoders.Load(t); ok {
		return fn.(DecodeFn)
	}
	if t.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("deferlog: FixedSize must be implemented on a pointer receiver, got %s", t))
	}
	elem := t.Elem()
	size := v.ByteSize()
	fn := DecodeFn(func(buf []byte) (string, []byte) {
		nv := reflect.New(elem).Interface().(FixedSize)
		nv.UnmarshalLE(buf[:size])
		return nv.String(), buf[size:]
	})
	actual, _ := fixedDecoders.LoadOrStore(t, fn)
	return actual.(DecodeFn)
}

// EncodeFixed writes v's fixed-width bytes and pairs them with the
// cached decoder for v's type.
func EncodeFixed(v FixedSize, buf []byte) (Store, []byte) {
	n := v.ByteSize()
	v.MarshalLE(buf[:n])
	return NewStore(FixedDecode(v), buf[:n]), buf[n:]
}

// Fixed lifts a FixedSize value into the variable-size Serializer
// contract.
func Fixed(v FixedSize) Serializer { return fixedSerializer{v} }

type fixedSerializer struct{ v FixedSize }

func (f fixedSerializer) BufferSizeRequired() int { return f.v.ByteSize() }

func (f fixedSerializer) Encode(buf []byte) (Store, []byte) { return EncodeFixed(f.v, buf) }

// Ready-made FixedSize wrappers for the primitive widths, mirroring the
// primitive codecs in primitives.go for callers who want to thread primitives
// through FixedSize-typed APIs (schemas, optionals, custom aggregates).

// U8 is a fixed-size uint8.
type U8 uint8

// ByteSize returns 1.
func (*U8) ByteSize() int { return 1 }

// MarshalLE writes the byte.
func (v *U8) MarshalLE(dst []byte) { dst[0] = uint8(*v) }

// UnmarshalLE reads the byte.
func (v *U8) UnmarshalLE(src []byte) { *v = U8(src[0]) }

func (v *U8) String() string { return strconv.FormatUint(uint64(*v), 10) }

// U16 is a fixed-size uint16.
type U16 uint16

// ByteSize returns 2.
func (*U16) ByteSize() int { return 2 }

// MarshalLE writes 2 little-endian bytes.
func (v *U16) MarshalLE(dst []byte) { binary.LittleEndian.PutUint16(dst, uint16(*v)) }

// UnmarshalLE reads 2 little-endian bytes.
func (v *U16) UnmarshalLE(src []byte) { *v = U16(binary.LittleEndian.Uint16(src)) }

func (v *U16) String() string { return strconv.FormatUint(uint64(*v), 10) }

// U32 is a fixed-size uint32.
type U32 uint32

// ByteSize returns 4.
func (*U32) ByteSize() int { return 4 }

// MarshalLE writes 4 little-endian bytes.
func (v *U32) MarshalLE(dst []byte) { binary.LittleEndian.PutUint32(dst, uint32(*v)) }

// UnmarshalLE reads 4 little-endian bytes.
func (v *U32) UnmarshalLE(src []byte) { *v = U32(binary.LittleEndian.Uint32(src)) }

func (v *U32) String() string { return strconv.FormatUint(uint64(*v), 10) }

// U64 is a fixed-size uint64.
type U64 uint64

// ByteSize returns 8.
func (*U64) ByteSize() int { return 8 }

// MarshalLE writes 8 little-endian bytes.
func (v *U64) MarshalLE(dst []byte) { binary.LittleEndian.PutUint64(dst, uint64(*v)) }

// UnmarshalLE reads 8 little-endian bytes.
func (v *U64) UnmarshalLE(src []byte) { *v = U64(binary.LittleEndian.Uint64(src)) }

func (v *U64) String() string { return strconv.FormatUint(uint64(*v), 10) }

// I32 is a fixed-size int32.
type I32 int32

// ByteSize returns 4.
func (*I32) ByteSize() int { return 4 }

// MarshalLE writes 4 little-endian bytes.
func (v *I32) MarshalLE(dst []byte) { binary.LittleEndian.PutUint32(dst, uint32(*v)) }

// UnmarshalLE reads 4 little-endian bytes.
func (v *I32) UnmarshalLE(src []byte) { *v = I32(binary.LittleEndian.Uint32(src)) }

func (v *I32) String() string { return strconv.FormatInt(int64(*v), 10) }

// I64 is a fixed-size int64.
type I64 int64

// ByteSize returns 8.
func (*I64) ByteSize() int { return 8 }

// MarshalLE writes 8 little-endian bytes.
func (v *I64) MarshalLE(dst []byte) { binary.LittleEndian.PutUint64(dst, uint64(*v)) }

// UnmarshalLE reads 8 little-endian bytes.
func (v *I64) UnmarshalLE(src []byte) { *v = I64(binary.LittleEndian.Uint64(src)) }

func (v *I64) String() string { return strconv.FormatInt(int64(*v), 10) }

// F32 is a fixed-size float32.
type F32 float32

// ByteSize returns 4.
func (*F32) ByteSize() int { return 4 }

// MarshalLE writes the IEEE-754 bits as 4 little-endian bytes.
func (v *F32) MarshalLE(dst []byte) { binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(*v))) }

// UnmarshalLE reads 4 little-endian bytes.
func (v *F32) UnmarshalLE(src []byte) {
	*v = F32(math.Float32frombits(binary.LittleEndian.Uint32(src)))
}

func (v *F32) String() string { return FormatFloat(float64(*v), 32) }

// F64 is a fixed-size float64.
type F64 float64

// ByteSize returns 8.
func (*F64) ByteSize() int { return 8 }

// MarshalLE writes the IEEE-754 bits as 8 little-endian bytes.
func (v *F64) MarshalLE(dst []byte) { binary.LittleEndian.PutUint64(dst, math.Float64bits(float64(*v))) }

// UnmarshalLE reads 8 little-endian bytes.
func (v *F64) UnmarshalLE(src []byte) {
	*v = F64(math.Float64frombits(binary.LittleEndian.Uint64(src)))
}

func (v *F64) String() string { return FormatFloat(float64(*v), 64) }

// ArrayStr16 is a fixed-width inline string: up to 16 bytes, null padded.
// The encoded form is the raw 16-byte block; length is implicit from the
// first null byte.
type ArrayStr16 struct {
	data [16]byte
}

// NewArrayStr16 builds an inline string from s, failing when s exceeds
// 16 bytes.
func NewArrayStr16(s string) (ArrayStr16, error) {
	var a ArrayStr16
	if len(s) > len(a.data) {
		return a, fmt.Errorf("deferlog: string %q exceeds %d bytes", s, len(a.data))
	}
	copy(a.data[:], s)
	return a, nil
}

// ByteSize returns 16.
func (*ArrayStr16) ByteSize() int { return 16 }

// MarshalLE writes the null-padded block.
func (v *ArrayStr16) MarshalLE(dst []byte) { copy(dst, v.data[:]) }

// UnmarshalLE reads the null-padded block.
func (v *ArrayStr16) UnmarshalLE(src []byte) { copy(v.data[:], src[:16]) }

func (v *ArrayStr16) String() string {
	n := len(v.data)
	for i, b := range v.data {
		if b == 0 {
			n = i
			break
		}
	}
	return string(v.data[:n])
}
