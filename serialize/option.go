package serialize

// Optionals encode as one marker byte — 0 for absent, 1 for present —
// followed by the payload when present. Absent values decode to the
// literal "None", present values to "Some(<payload>)".

// OptionDecode wraps a payload decoder into an option decoder. Build the
// result once (at registration or in a package variable), not per
// encode; the pre-composed DecodeOption* functions below cover the
// primitive payloads.
func OptionDecode(inner DecodeFn) DecodeFn {
	return func(buf []byte) (string, []byte) {
		if buf[0] == 0 {
			return "None", buf[1:]
		}
		s, rest := inner(buf[1:])
		return "Some(" + s + ")", rest
	}
}

// Pre-composed option decoders for primitive payloads.

// DecodeOptionUint32 decodes an optional uint32.
func DecodeOptionUint32(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeUint32(buf[1:])
	return "Some(" + s + ")", rest
}

// DecodeOptionUint64 decodes an optional uint64.
func DecodeOptionUint64(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeUint64(buf[1:])
	return "Some(" + s + ")", rest
}

// DecodeOptionInt32 decodes an optional int32.
func DecodeOptionInt32(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeInt32(buf[1:])
	return "Some(" + s + ")", rest
}

// DecodeOptionInt64 decodes an optional int64.
func DecodeOptionInt64(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeInt64(buf[1:])
	return "Some(" + s + ")", rest
}

// DecodeOptionFloat32 decodes an optional float32.
func DecodeOptionFloat32(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeFloat32(buf[1:])
	return "Some(" + s + ")", rest
}

// DecodeOptionFloat64 decodes an optional float64.
func DecodeOptionFloat64(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeFloat64(buf[1:])
	return "Some(" + s + ")", rest
}

// DecodeOptionBool decodes an optional bool.
func DecodeOptionBool(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeBool(buf[1:])
	return "Some(" + s + ")", rest
}

// DecodeOptionString decodes an optional length-prefixed string.
func DecodeOptionString(buf []byte) (string, []byte) {
	if buf[0] == 0 {
		return "None", buf[1:]
	}
	s, rest := DecodeString(buf[1:])
	return "Some(" + s + ")", rest
}

// Optional adapts an optional Serializer payload to the Serializer
// contract. Value nil means absent. Decode must be the option decoder
// for the payload type; it is carried here rather than derived so the
// encode path composes no closures.
type Optional struct {
	Value  Serializer
	Decode DecodeFn
}

// BufferSizeRequired returns the marker byte plus the payload bound.
func (o Optional) BufferSizeRequired() int {
	if o.Value == nil {
		return 1
	}
	return 1 + o.Value.BufferSizeRequired()
}

// Encode writes the marker and payload.
func (o Optional) Encode(buf []byte) (Store, []byte) {
	if o.Value == nil {
		buf[0] = 0
		return NewStore(o.Decode, buf[:1]), buf[1:]
	}
	buf[0] = 1
	payload, rest := o.Value.Encode(buf[1:])
	n := 1 + len(payload.Bytes())
	return NewStore(o.Decode, buf[:n]), rest
}
