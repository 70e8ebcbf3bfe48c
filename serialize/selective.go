package serialize

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unsafe"
)

// TagName is the struct tag key that marks fields for selective
// serialization.
const TagName = "log"

// tagSerialize is the tag value that opts a field in.
const tagSerialize = "serialize"

type fieldKind uint8

const (
	kindUint8 fieldKind = iota
	kindUint16
	kindUint32
	kindUint64
	kindInt8
	kindInt16
	kindInt32
	kindInt64
	kindFloat32
	kindFloat64
	kindBool
	kindString
	kindFixed
)

var kindSizes = [...]int{
	kindUint8:   1,
	kindUint16:  2,
	kindUint32:  4,
	kindUint64:  8,
	kindInt8:    1,
	kindInt16:   2,
	kindInt32:   4,
	kindInt64:   8,
	kindFloat32: 4,
	kindFloat64: 8,
	kindBool:    1,
}

// fieldPlan is the registration-time layout of one tagged field.
type fieldPlan struct {
	name     string
	offset   uintptr
	kind     fieldKind
	size     int // payload size; 0 for kindString (value-dependent)
	optional bool
	// kindFixed only: the field's (non-pointer) type, used to
	// reconstruct a value at decode time.
	fixedType reflect.Type
}

// Schema is the selective encoder for one aggregate type. It is built
// once, on first use, from the struct's `log:"serialize"` tags,
// enumerating tagged fields in source order. That order is part of the
// contract: the drain-time display lists fields the same way.
//
// When every tagged field is fixed-size and non-optional the total
// reservation size is a constant and Encode is a straight-line sequence
// of byte writes at precomputed offsets.
type Schema struct {
	typeName  string
	fields    []fieldPlan
	constSize int // exact encoded size, or -1 when value-dependent
	decoder   DecodeFn
}

var schemas sync.Map // reflect.Type -> *Schema

// SchemaFor returns the schema for the struct type t, building and
// caching it on first use. t must be a struct type with at least one
// tagged field; anything else is a programmer error and panics.
func SchemaFor(t reflect.Type) *Schema {
	if s, ok := schemas.Load(t); ok {
		return s.(*Schema)
	}
	s, err := buildSchema(t)
	if err != nil {
		panic(err)
	}
	actual, _ := schemas.LoadOrStore(t, s)
	return actual.(*Schema)
}

// SchemaOf is the generic convenience form of SchemaFor.
func SchemaOf[T any]() *Schema {
	return SchemaFor(reflect.TypeOf((*T)(nil)).Elem())
}

func buildSchema(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("deferlog: selective serialization requires a struct type, got %s", t)
	}
	s := &Schema{typeName: t.Name()}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get(TagName) != tagSerialize {
			continue
		}
		plan, err := planField(f)
		if err != nil {
			return nil, err
		}
		s.fields = append(s.fields, plan)
	}
	if len(s.fields) == 0 {
		return nil, fmt.Errorf("deferlog: %s has no fields tagged `%s:\"%s\"`", t, TagName, tagSerialize)
	}

	constSize := 0
	sizeIsConst := true
	for _, f := range s.fields {
		switch {
		case f.kind == kindString, f.optional:
			sizeIsConst = false
		default:
			constSize += f.size
		}
	}
	if sizeIsConst {
		s.constSize = constSize
	} else {
		s.constSize = -1
	}
	// Bind the decoder once so Encode never builds a func value.
	s.decoder = s.decode
	return s, nil
}

func planField(f reflect.StructField) (fieldPlan, error) {
	plan := fieldPlan{name: f.Name, offset: f.Offset}
	t := f.Type
	if t.Kind() == reflect.Pointer {
		plan.optional = true
		t = t.Elem()
	}

	if k, ok := kindOfBasic(t); ok {
		plan.kind = k
		plan.size = kindSizes[k]
		return plan, nil
	}
	if t.Kind() == reflect.String {
		if plan.optional {
			return plan, fmt.Errorf("deferlog: field %s: optional strings are not supported in selective schemas", f.Name)
		}
		plan.kind = kindString
		return plan, nil
	}
	// Last resort: the field's pointer type implements FixedSize.
	if pt := reflect.PointerTo(t); pt.Implements(fixedSizeType) {
		probe := reflect.New(t).Interface().(FixedSize)
		plan.kind = kindFixed
		plan.size = probe.ByteSize()
		plan.fixedType = t
		return plan, nil
	}
	return plan, fmt.Errorf("deferlog: field %s: type %s is neither a supported primitive nor a FixedSize implementation", f.Name, f.Type)
}

var fixedSizeType = reflect.TypeOf((*FixedSize)(nil)).Elem()

func kindOfBasic(t reflect.Type) (fieldKind, bool) {
	// Named types with a basic kind are accepted as long as they do not
	// override display via FixedSize.
	if reflect.PointerTo(t).Implements(fixedSizeType) && t.PkgPath() != "" {
		return 0, false
	}
	switch t.Kind() {
	case reflect.Uint8:
		return kindUint8, true
	case reflect.Uint16:
		return kindUint16, true
	case reflect.Uint32:
		return kindUint32, true
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return kindUint64, true
	case reflect.Int8:
		return kindInt8, true
	case reflect.Int16:
		return kindInt16, true
	case reflect.Int32:
		return kindInt32, true
	case reflect.Int64, reflect.Int:
		return kindInt64, true
	case reflect.Float32:
		return kindFloat32, true
	case reflect.Float64:
		return kindFloat64, true
	case reflect.Bool:
		return kindBool, true
	default:
		return 0, false
	}
}

// TypeName returns the aggregate's display name.
func (s *Schema) TypeName() string { return s.typeName }

// NumFields returns the number of tagged fields.
func (s *Schema) NumFields() int { return len(s.fields) }

// SizeIsConst reports whether the total reservation size is a constant.
func (s *Schema) SizeIsConst() bool { return s.constSize >= 0 }

// SizeRequired returns the exact bytes Encode will write for the struct
// at ptr. For constant-size schemas no field is read.
func (s *Schema) SizeRequired(ptr unsafe.Pointer) int {
	if s.constSize >= 0 {
		return s.constSize
	}
	total := 0
	for i := range s.fields {
		f := &s.fields[i]
		fp := unsafe.Add(ptr, f.offset)
		switch {
		case f.kind == kindString:
			total += SizeLength + len(*(*string)(fp))
		case f.optional:
			total++
			if *(*unsafe.Pointer)(fp) != nil {
				total += f.size
			}
		default:
			total += f.size
		}
	}
	return total
}

// Encode writes the tagged fields sequentially into the front of buf and
// returns a single Store covering the whole aggregate. ptr must point at
// a value of the schema's struct type.
func (s *Schema) Encode(ptr unsafe.Pointer, buf []byte) (Store, []byte) {
	off := 0
	for i := range s.fields {
		f := &s.fields[i]
		fp := unsafe.Add(ptr, f.offset)
		if f.optional {
			p := *(*unsafe.Pointer)(fp)
			if p == nil {
				buf[off] = 0
				off++
				continue
			}
			buf[off] = 1
			off++
			fp = p
		}
		off += s.encodeField(f, fp, buf[off:])
	}
	return NewStore(s.decoder, buf[:off]), buf[off:]
}

func (s *Schema) encodeField(f *fieldPlan, fp unsafe.Pointer, buf []byte) int {
	switch f.kind {
	case kindUint8:
		buf[0] = *(*uint8)(fp)
	case kindUint16:
		binary.LittleEndian.PutUint16(buf, *(*uint16)(fp))
	case kindUint32:
		binary.LittleEndian.PutUint32(buf, *(*uint32)(fp))
	case kindUint64:
		binary.LittleEndian.PutUint64(buf, *(*uint64)(fp))
	case kindInt8:
		buf[0] = byte(*(*int8)(fp))
	case kindInt16:
		binary.LittleEndian.PutUint16(buf, uint16(*(*int16)(fp)))
	case kindInt32:
		binary.LittleEndian.PutUint32(buf, uint32(*(*int32)(fp)))
	case kindInt64:
		binary.LittleEndian.PutUint64(buf, uint64(*(*int64)(fp)))
	case kindFloat32:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(*(*float32)(fp)))
	case kindFloat64:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(*(*float64)(fp)))
	case kindBool:
		if *(*bool)(fp) {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
	case kindString:
		v := *(*string)(fp)
		binary.LittleEndian.PutUint64(buf, uint64(len(v)))
		copy(buf[SizeLength:], v)
		return SizeLength + len(v)
	case kindFixed:
		fv := reflect.NewAt(f.fixedType, fp).Interface().(FixedSize)
		fv.MarshalLE(buf[:f.size])
	}
	return f.size
}

// decode reproduces the aggregate's display form:
//
//	TypeName { field_a: <value>, field_b: <value> }
//
// reading fields in the same order Encode wrote them. Bound to the
// schema at registration and carried by every Store it produces.
func (s *Schema) decode(buf []byte) (string, []byte) {
	var b strings.Builder
	b.WriteString(s.typeName)
	b.WriteString(" { ")
	rest := buf
	for i := range s.fields {
		f := &s.fields[i]
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteString(": ")
		if f.optional {
			if rest[0] == 0 {
				rest = rest[1:]
				b.WriteString("None")
				continue
			}
			rest = rest[1:]
			var text string
			text, rest = s.decodeField(f, rest)
			b.WriteString("Some(")
			b.WriteString(text)
			b.WriteString(")")
			continue
		}
		var text string
		text, rest = s.decodeField(f, rest)
		b.WriteString(text)
	}
	b.WriteString(" }")
	return b.String(), rest
}

func (s *Schema) decodeField(f *fieldPlan, buf []byte) (string, []byte) {
	switch f.kind {
	case kindUint8:
		return DecodeUint8(buf)
	case kindUint16:
		return DecodeUint16(buf)
	case kindUint32:
		return DecodeUint32(buf)
	case kindUint64:
		return DecodeUint64(buf)
	case kindInt8:
		return DecodeInt8(buf)
	case kindInt16:
		return DecodeInt16(buf)
	case kindInt32:
		return DecodeInt32(buf)
	case kindInt64:
		return DecodeInt64(buf)
	case kindFloat32:
		return DecodeFloat32(buf)
	case kindFloat64:
		return DecodeFloat64(buf)
	case kindBool:
		return DecodeBool(buf)
	case kindString:
		return DecodeString(buf)
	case kindFixed:
		fv := reflect.New(f.fixedType).Interface().(FixedSize)
		fv.UnmarshalLE(buf[:f.size])
		return fv.String(), buf[f.size:]
	}
	panic("deferlog: unknown field kind " + strconv.Itoa(int(f.kind)))
}
