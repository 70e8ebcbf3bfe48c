package core

import (
	"bytes"
	"testing"

	"github.com/firthlabs/deferlog/serialize"
)

func textFragment(text string) Fragment {
	buf := make([]byte, serialize.TextSizeRequired(text))
	st, _ := serialize.EncodeText(text, buf)
	return Fragment{Store: st}
}

func materialized(r *Record) string {
	var buf bytes.Buffer
	r.Materialize(&buf)
	return buf.String()
}

func TestRecord_MaterializeInterpolation(t *testing.T) {
	tests := []struct {
		name     string
		template string
		frags    []Fragment
		want     string
	}{
		{
			name:     "no placeholders, no args",
			template: "hello world",
			want:     "hello world",
		},
		{
			name:     "single placeholder",
			template: "value of some_var: {}",
			frags:    []Fragment{textFragment("10")},
			want:     "value of some_var: 10",
		},
		{
			name:     "multiple placeholders in order",
			template: "{} then {}",
			frags:    []Fragment{textFragment("first"), textFragment("second")},
			want:     "first then second",
		},
		{
			name:     "leftover positional args append after message",
			template: "state:",
			frags:    []Fragment{textFragment("a"), textFragment("b")},
			want:     "state: a b",
		},
		{
			name:     "excess placeholders stay visible",
			template: "a={} b={}",
			frags:    []Fragment{textFragment("1")},
			want:     "a=1 b={}",
		},
		{
			name:     "named args append as pairs",
			template: "order filled",
			frags: []Fragment{
				{Name: "price", Store: textFragment("100.5").Store},
				{Name: "size", Store: textFragment("10").Store},
			},
			want: "order filled price=100.5 size=10",
		},
		{
			name:     "named args do not fill placeholders",
			template: "got {}",
			frags: []Fragment{
				{Name: "ctx", Store: textFragment("x").Store},
				textFragment("42"),
			},
			want: "got 42 ctx=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Site: Callsite{Template: tt.template}}
			for _, f := range tt.frags {
				r.AddFragment(f)
			}
			if got := materialized(&r); got != tt.want {
				t.Errorf("Materialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_MaterializeIdempotent(t *testing.T) {
	r := Record{Site: Callsite{Template: "x={}"}}
	r.AddFragment(textFragment("7"))

	first := materialized(&r)
	second := materialized(&r)
	if first != second {
		t.Errorf("materializing twice differed: %q vs %q", first, second)
	}
}

func TestRecord_FragmentSpill(t *testing.T) {
	r := Record{Site: Callsite{Template: "{} {} {} {} {} {}"}}
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		r.AddFragment(textFragment(s))
	}
	if r.NumFragments() != 6 {
		t.Fatalf("NumFragments() = %d, want 6", r.NumFragments())
	}
	if got, want := materialized(&r), "a b c d e f"; got != want {
		t.Errorf("Materialize() = %q, want %q", got, want)
	}

	// A record copy (as the queue performs) must carry spilled
	// fragments along.
	cp := r
	if got, want := materialized(&cp), "a b c d e f"; got != want {
		t.Errorf("copied record Materialize() = %q, want %q", got, want)
	}
}

func TestGetCallsite(t *testing.T) {
	site := GetCallsite(1, "tmpl")
	if site.File == "" || site.Line <= 0 {
		t.Errorf("GetCallsite did not capture a location: %+v", site)
	}
	if site.Template != "tmpl" {
		t.Errorf("Template = %q, want %q", site.Template, "tmpl")
	}
}
