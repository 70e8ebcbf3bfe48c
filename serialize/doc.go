// Package serialize defines deferlog's two-tier serialization contract
// and the codecs built on it.
//
// The variable-size tier is the Serializer interface: an implementation
// reports an upper bound on the bytes it needs, encodes itself into the
// front of a caller-provided buffer, and hands back a Store — the pair of
// the bytes it wrote and the function that turns them back into display
// text at drain time. Both Encode and DecodeFn consume a prefix of their
// buffer and return the remainder, so multiple values chain through a
// single arena window.
//
// The fixed-size tier is the FixedSize interface for types with a
// compile-time-known little-endian width. Encoding a FixedSize value is a
// straight byte copy with no length prefix; the selective Schema encoder
// exploits this to compute a whole aggregate's reservation size as a
// constant.
//
// Decode functions are plain package-level functions (or values computed
// once at registration). They capture no producer state, are
// position-independent, and are idempotent over the same bytes. A decoder
// that reads a different number of bytes than its encoder wrote is a
// programmer error in the type's implementation; the codecs here panic
// on such mismatches rather than guess.
//
// Sequence convention: every sequence encoding starts with an 8-byte
// little-endian element count. Fixed-size elements are packed
// back-to-back with no per-element framing; variable-size elements each
// carry their own framing (length prefix for strings, marker byte for
// optionals).
package serialize
