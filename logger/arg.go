package logger

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/firthlabs/deferlog/serialize"
)

type argKind uint8

const (
	argUint8 argKind = iota
	argUint16
	argUint32
	argUint64
	argInt8
	argInt16
	argInt32
	argInt64
	argFloat32
	argFloat64
	argBool
	argStr
	argText
	argSer
	argFixed
	argStruct
	argOptUint64
	argOptInt64
	argOptFloat64
	argOptBool
)

// Arg is one captured callsite argument: the value (or, for the eager
// strategies, its pre-formatted text) plus the strategy that encodes it
// into the arena. Args are plain values; constructing one does not
// allocate for fixed-size or arena-backed arguments.
type Arg struct {
	name    string
	kind    argKind
	present bool
	u64     uint64
	f64     float64
	str     string
	ser     serialize.Serializer
	fixed   serialize.FixedSize
	schema  *serialize.Schema
	ptr     unsafe.Pointer
}

// Named binds the argument to an explicit name. Named arguments append
// after the message as " name=value" pairs instead of filling template
// placeholders.
func Named(name string, a Arg) Arg {
	a.name = name
	return a
}

// Clone-defer constructors: the value is byte-copied into the arena at
// the callsite and decoded at drain time.

// Uint8 captures a uint8.
func Uint8(v uint8) Arg { return Arg{kind: argUint8, u64: uint64(v)} }

// Uint16 captures a uint16.
func Uint16(v uint16) Arg { return Arg{kind: argUint16, u64: uint64(v)} }

// Uint32 captures a uint32.
func Uint32(v uint32) Arg { return Arg{kind: argUint32, u64: uint64(v)} }

// Uint64 captures a uint64.
func Uint64(v uint64) Arg { return Arg{kind: argUint64, u64: v} }

// Uint captures a uint as 8 bytes.
func Uint(v uint) Arg { return Arg{kind: argUint64, u64: uint64(v)} }

// Int8 captures an int8.
func Int8(v int8) Arg { return Arg{kind: argInt8, u64: uint64(uint8(v))} }

// Int16 captures an int16.
func Int16(v int16) Arg { return Arg{kind: argInt16, u64: uint64(uint16(v))} }

// Int32 captures an int32.
func Int32(v int32) Arg { return Arg{kind: argInt32, u64: uint64(uint32(v))} }

// Int64 captures an int64.
func Int64(v int64) Arg { return Arg{kind: argInt64, u64: uint64(v)} }

// Int captures an int as 8 bytes.
func Int(v int) Arg { return Arg{kind: argInt64, u64: uint64(int64(v))} }

// Float32 captures a float32.
func Float32(v float32) Arg { return Arg{kind: argFloat32, f64: float64(v)} }

// Float64 captures a float64.
func Float64(v float64) Arg { return Arg{kind: argFloat64, f64: v} }

// Bool captures a bool.
func Bool(v bool) Arg {
	a := Arg{kind: argBool}
	if v {
		a.u64 = 1
	}
	return a
}

// Str captures a string; the bytes are copied into the arena.
func Str(v string) Arg { return Arg{kind: argStr, str: v} }

// Optional clone-defer constructors. nil captures as absent and decodes
// to the literal "None".

// OptUint64 captures an optional uint64.
func OptUint64(v *uint64) Arg {
	if v == nil {
		return Arg{kind: argOptUint64}
	}
	return Arg{kind: argOptUint64, present: true, u64: *v}
}

// OptInt64 captures an optional int64.
func OptInt64(v *int64) Arg {
	if v == nil {
		return Arg{kind: argOptInt64}
	}
	return Arg{kind: argOptInt64, present: true, u64: uint64(*v)}
}

// OptFloat64 captures an optional float64.
func OptFloat64(v *float64) Arg {
	if v == nil {
		return Arg{kind: argOptFloat64}
	}
	return Arg{kind: argOptFloat64, present: true, f64: *v}
}

// OptBool captures an optional bool.
func OptBool(v *bool) Arg {
	a := Arg{kind: argOptBool}
	if v == nil {
		return a
	}
	a.present = true
	if *v {
		a.u64 = 1
	}
	return a
}

// Serialize-strategy constructors: the value encodes its own bytes via
// the serialize contract and formatting is fully deferred.

// Ser captures any Serializer.
func Ser(v serialize.Serializer) Arg { return Arg{kind: argSer, ser: v} }

// SerFixed captures a FixedSize value.
func SerFixed(v serialize.FixedSize) Arg { return Arg{kind: argFixed, fixed: v} }

// SerStruct captures a tagged aggregate through its selective schema.
// v must be a pointer to a struct with at least one `log:"serialize"`
// field; anything else is a programmer error and panics.
func SerStruct(v any) Arg {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("deferlog: SerStruct requires a struct pointer, got %T", v))
	}
	return Arg{
		kind:   argStruct,
		schema: serialize.SchemaFor(t.Elem()),
		ptr:    ifaceDataPtr(v),
	}
}

// Eager constructors: formatting happens at the callsite; only the text
// copy is deferred.

// Display formats v with fmt.Sprint at the callsite.
func Display(v any) Arg { return Arg{kind: argText, str: fmt.Sprint(v)} }

// Debug formats v with fmt.Sprintf("%+v") at the callsite.
func Debug(v any) Arg { return Arg{kind: argText, str: fmt.Sprintf("%+v", v)} }

// sizeRequired is the upper bound on the bytes encode will consume.
func (a *Arg) sizeRequired() int {
	switch a.kind {
	case argUint8, argInt8, argBool:
		return 1
	case argUint16, argInt16:
		return 2
	case argUint32, argInt32, argFloat32:
		return 4
	case argUint64, argInt64, argFloat64:
		return 8
	case argStr, argText:
		return serialize.StringSizeRequired(a.str)
	case argSer:
		return a.ser.BufferSizeRequired()
	case argFixed:
		return a.fixed.ByteSize()
	case argStruct:
		return a.schema.SizeRequired(a.ptr)
	case argOptUint64, argOptInt64, argOptFloat64:
		if a.present {
			return 9
		}
		return 1
	case argOptBool:
		if a.present {
			return 2
		}
		return 1
	}
	return 0
}

// encode writes the argument into the front of buf per its strategy.
func (a *Arg) encode(buf []byte) (serialize.Store, []byte) {
	switch a.kind {
	case argUint8:
		return serialize.EncodeUint8(uint8(a.u64), buf)
	case argUint16:
		return serialize.EncodeUint16(uint16(a.u64), buf)
	case argUint32:
		return serialize.EncodeUint32(uint32(a.u64), buf)
	case argUint64:
		return serialize.EncodeUint64(a.u64, buf)
	case argInt8:
		return serialize.EncodeInt8(int8(a.u64), buf)
	case argInt16:
		return serialize.EncodeInt16(int16(a.u64), buf)
	case argInt32:
		return serialize.EncodeInt32(int32(a.u64), buf)
	case argInt64:
		return serialize.EncodeInt64(int64(a.u64), buf)
	case argFloat32:
		return serialize.EncodeFloat32(float32(a.f64), buf)
	case argFloat64:
		return serialize.EncodeFloat64(a.f64, buf)
	case argBool:
		return serialize.EncodeBool(a.u64 != 0, buf)
	case argStr, argText:
		return serialize.EncodeString(a.str, buf)
	case argSer:
		return a.ser.Encode(buf)
	case argFixed:
		return serialize.EncodeFixed(a.fixed, buf)
	case argStruct:
		return a.schema.Encode(a.ptr, buf)
	case argOptUint64:
		if !a.present {
			buf[0] = 0
			return serialize.NewStore(serialize.DecodeOptionUint64, buf[:1]), buf[1:]
		}
		buf[0] = 1
		binary.LittleEndian.PutUint64(buf[1:], a.u64)
		return serialize.NewStore(serialize.DecodeOptionUint64, buf[:9]), buf[9:]
	case argOptInt64:
		if !a.present {
			buf[0] = 0
			return serialize.NewStore(serialize.DecodeOptionInt64, buf[:1]), buf[1:]
		}
		buf[0] = 1
		binary.LittleEndian.PutUint64(buf[1:], a.u64)
		return serialize.NewStore(serialize.DecodeOptionInt64, buf[:9]), buf[9:]
	case argOptFloat64:
		if !a.present {
			buf[0] = 0
			return serialize.NewStore(serialize.DecodeOptionFloat64, buf[:1]), buf[1:]
		}
		buf[0] = 1
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(a.f64))
		return serialize.NewStore(serialize.DecodeOptionFloat64, buf[:9]), buf[9:]
	case argOptBool:
		if !a.present {
			buf[0] = 0
			return serialize.NewStore(serialize.DecodeOptionBool, buf[:1]), buf[1:]
		}
		buf[0] = 1
		buf[1] = byte(a.u64)
		return serialize.NewStore(serialize.DecodeOptionBool, buf[:2]), buf[2:]
	}
	panic(fmt.Sprintf("deferlog: unknown argument kind %d", a.kind))
}

// ifaceDataPtr extracts the data pointer out of an interface value. The
// argument is known to hold a pointer, so the data word is the pointer
// itself.
func ifaceDataPtr(v any) unsafe.Pointer {
	type eface struct {
		typ, data unsafe.Pointer
	}
	return (*eface)(unsafe.Pointer(&v)).data
}
