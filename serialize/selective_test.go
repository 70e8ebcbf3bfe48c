package serialize

import (
	"strings"
	"testing"
	"unsafe"
)

// Order mirrors the shape this encoder exists for: a trading aggregate
// where only the market-relevant fields are worth logging.
type Order struct {
	id    uint64   `log:"serialize"`
	price *float64 `log:"serialize"`
	size  float64  `log:"serialize"`
	meta  string
}

func encodeStruct[T any](t *testing.T, v *T) Store {
	t.Helper()
	s := SchemaOf[T]()
	buf := make([]byte, s.SizeRequired(unsafe.Pointer(v)))
	st, _ := s.Encode(unsafe.Pointer(v), buf)
	return st
}

func TestSchema_EncodeDecode(t *testing.T) {
	price := 100.5
	o := Order{id: 42, price: &price, size: 10.0, meta: "ignored"}

	st := encodeStruct(t, &o)
	want := "Order { id: 42, price: Some(100.5), size: 10.0 }"
	if got := st.String(); got != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
	if strings.Contains(st.String(), "ignored") || strings.Contains(st.String(), "meta") {
		t.Error("untagged field leaked into the output")
	}
}

func TestSchema_AbsentOptional(t *testing.T) {
	o := Order{id: 7, size: 1.5}

	st := encodeStruct(t, &o)
	want := "Order { id: 7, price: None, size: 1.5 }"
	if got := st.String(); got != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
}

func TestSchema_FieldOrderIsSourceOrder(t *testing.T) {
	type triple struct {
		c uint8 `log:"serialize"`
		a uint8 `log:"serialize"`
		b uint8 `log:"serialize"`
	}
	v := triple{c: 3, a: 1, b: 2}
	st := encodeStruct(t, &v)
	if got, want := st.String(), "triple { c: 3, a: 1, b: 2 }"; got != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
}

func TestSchema_ConstSize(t *testing.T) {
	type fixedOnly struct {
		a uint64  `log:"serialize"`
		b float64 `log:"serialize"`
		c bool    `log:"serialize"`
		d string  // untagged: must not affect the size
	}
	s := SchemaOf[fixedOnly]()
	if !s.SizeIsConst() {
		t.Fatal("all-fixed schema did not compute a constant size")
	}
	v := fixedOnly{a: 1, b: 2, c: true, d: "x"}
	if got := s.SizeRequired(unsafe.Pointer(&v)); got != 17 {
		t.Errorf("SizeRequired() = %d, want 17", got)
	}
}

func TestSchema_OptionalMakesSizeDynamic(t *testing.T) {
	type withOpt struct {
		a *uint64 `log:"serialize"`
	}
	s := SchemaOf[withOpt]()
	if s.SizeIsConst() {
		t.Fatal("schema with an optional field claimed a constant size")
	}

	var absent withOpt
	if got := s.SizeRequired(unsafe.Pointer(&absent)); got != 1 {
		t.Errorf("absent SizeRequired() = %d, want 1", got)
	}
	x := uint64(5)
	present := withOpt{a: &x}
	if got := s.SizeRequired(unsafe.Pointer(&present)); got != 9 {
		t.Errorf("present SizeRequired() = %d, want 9", got)
	}
}

func TestSchema_StringField(t *testing.T) {
	type event struct {
		symbol string `log:"serialize"`
		qty    int64  `log:"serialize"`
	}
	e := event{symbol: "ES", qty: -3}
	st := encodeStruct(t, &e)
	if got, want := st.String(), `event { symbol: ES, qty: -3 }`; got != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
}

func TestSchema_FixedSizeField(t *testing.T) {
	type trade struct {
		id   orderID `log:"serialize"`
		size float64 `log:"serialize"`
	}
	tr := trade{id: orderID(9), size: 2.5}
	st := encodeStruct(t, &tr)
	if got, want := st.String(), "trade { id: OrderID(9), size: 2.5 }"; got != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
}

func TestSchema_AllIntWidths(t *testing.T) {
	type widths struct {
		a uint8  `log:"serialize"`
		b uint16 `log:"serialize"`
		c uint32 `log:"serialize"`
		d int8   `log:"serialize"`
		e int16  `log:"serialize"`
		f int32  `log:"serialize"`
		g int    `log:"serialize"`
		h uint   `log:"serialize"`
	}
	w := widths{a: 1, b: 2, c: 3, d: -4, e: -5, f: -6, g: -7, h: 8}
	st := encodeStruct(t, &w)
	want := "widths { a: 1, b: 2, c: 3, d: -4, e: -5, f: -6, g: -7, h: 8 }"
	if got := st.String(); got != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
}

func TestSchema_CachedPerType(t *testing.T) {
	if SchemaOf[Order]() != SchemaOf[Order]() {
		t.Error("SchemaOf built two schemas for the same type")
	}
}

func TestSchema_NoTaggedFieldsPanics(t *testing.T) {
	type bare struct {
		a int
	}
	defer func() {
		if recover() == nil {
			t.Error("schema for an untagged struct did not panic")
		}
	}()
	SchemaOf[bare]()
}

func TestSchema_UnsupportedFieldPanics(t *testing.T) {
	type bad struct {
		ch chan int `log:"serialize"`
	}
	defer func() {
		if recover() == nil {
			t.Error("schema with an unsupported field type did not panic")
		}
	}()
	SchemaOf[bad]()
}

func TestSchema_ChainsWithOtherStores(t *testing.T) {
	// A schema store must consume exactly its own bytes so that a
	// following store decodes cleanly from the remainder.
	o := Order{id: 1, size: 0.5}
	s := SchemaOf[Order]()

	structSize := s.SizeRequired(unsafe.Pointer(&o))
	buf := make([]byte, structSize+8)

	first, rest := s.Encode(unsafe.Pointer(&o), buf)
	second, _ := EncodeUint64(77, rest)

	if got, want := first.String(), "Order { id: 1, price: None, size: 0.5 }"; got != want {
		t.Errorf("first store decoded %q, want %q", got, want)
	}
	if got := second.String(); got != "77" {
		t.Errorf("second store decoded %q, want %q", got, "77")
	}
}
