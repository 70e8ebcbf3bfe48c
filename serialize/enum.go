package serialize

import "fmt"

// Enum support: a unit enum encodes as its single discriminant byte and
// decodes through a name table built once per enum type.

// NewEnumDecoder builds the decoder for a unit enum. names maps each
// valid discriminant to its display name. Decoding an unknown
// discriminant panics: it means the encoder and decoder disagree on the
// enum's variants.
func NewEnumDecoder(typeName string, names map[uint8]string) DecodeFn {
	return func(buf []byte) (string, []byte) {
		name, ok := names[buf[0]]
		if !ok {
			panic(fmt.Sprintf("deferlog: invalid %s discriminant: %d", typeName, buf[0]))
		}
		return name, buf[1:]
	}
}

// EncodeEnum writes the discriminant byte, pairing it with the enum's
// decoder built by NewEnumDecoder.
func EncodeEnum(discriminant uint8, decode DecodeFn, buf []byte) (Store, []byte) {
	buf[0] = discriminant
	return NewStore(decode, buf[:1]), buf[1:]
}
