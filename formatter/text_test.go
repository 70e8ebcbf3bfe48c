package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/firthlabs/deferlog/core"
	"github.com/firthlabs/deferlog/serialize"
)

func TestText_FormatRecord(t *testing.T) {
	f := NewText(Config{})

	rec := core.Record{
		Time:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Level: core.InfoLevel,
		Site: core.Callsite{
			File:     "/src/engine/fill.go",
			Line:     42,
			Template: "filled {}",
		},
	}
	buf := make([]byte, 16)
	st, _ := serialize.EncodeUint32(7, buf)
	rec.AddFragment(core.Fragment{Store: st})

	var out bytes.Buffer
	f.FormatRecord(&rec, &out)

	got := out.String()
	want := "2026-03-14T09:26:53Z [INFO] fill.go:42 filled 7\n"
	if got != want {
		t.Errorf("FormatRecord() = %q, want %q", got, want)
	}
}

func TestText_CustomTimestampFormat(t *testing.T) {
	f := NewText(Config{TimestampFormat: "15:04:05.000"})

	rec := core.Record{
		Time:  time.Date(2026, 1, 2, 10, 20, 30, 450_000_000, time.UTC),
		Level: core.ErrorLevel,
		Site:  core.Callsite{File: "x.go", Line: 1, Template: "boom"},
	}

	var out bytes.Buffer
	f.FormatRecord(&rec, &out)
	if got, want := out.String(), "10:20:30.450 [ERROR] x.go:1 boom\n"; got != want {
		t.Errorf("FormatRecord() = %q, want %q", got, want)
	}
}

func TestText_LevelBrackets(t *testing.T) {
	f := NewText(Config{})
	for _, level := range []core.Level{
		core.TraceLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel,
	} {
		rec := core.Record{
			Time:  time.Now(),
			Level: level,
			Site:  core.Callsite{File: "a.go", Line: 1, Template: "m"},
		}
		var out bytes.Buffer
		f.FormatRecord(&rec, &out)
		if !strings.Contains(out.String(), " ["+level.String()+"] ") {
			t.Errorf("line %q missing level tag %q", out.String(), level.String())
		}
	}
}

func TestText_MissingCallsite(t *testing.T) {
	f := NewText(Config{})
	rec := core.Record{
		Time:  time.Now(),
		Level: core.InfoLevel,
		Site:  core.Callsite{Template: "no site"},
	}
	var out bytes.Buffer
	f.FormatRecord(&rec, &out)
	if !strings.HasSuffix(out.String(), "[INFO] no site\n") {
		t.Errorf("line %q should omit the file:line block", out.String())
	}
}
