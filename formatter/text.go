package formatter

import (
	"bytes"
	"path/filepath"
	"strconv"
	"time"

	"github.com/firthlabs/deferlog/core"
)

// Config holds formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// Text formats drained records as human-readable text lines
type Text struct {
	Config
}

// NewText creates a new text formatter
func NewText(cfg Config) *Text {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &Text{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
}

// FormatRecord writes the record's complete output line, including the
// trailing newline, into buf.
func (f *Text) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	if int(rec.Level) < len(levelBrackets) && rec.Level >= 0 {
		buf.WriteString(levelBrackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Callsite
	if rec.Site.File != "" {
		buf.WriteString(filepath.Base(rec.Site.File))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(rec.Site.Line))
		buf.WriteByte(' ')
	}

	// Message with interpolated fragments
	rec.Materialize(buf)

	buf.WriteByte('\n')
}
