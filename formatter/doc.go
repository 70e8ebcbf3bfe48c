// Package formatter assembles finished log lines at drain time.
//
// The Text formatter produces the single supported output form:
//
//	timestamp [LEVEL] file:line message
//
// with the record's argument fragments interpolated into the message by
// the record's own materialization. It formats into a caller-provided
// bytes.Buffer and writes the timestamp with time.AppendFormat, so the
// drain loop reuses one buffer for every line. Level bracket strings (" [INFO] ", etc.) are
// pre-computed so the common path is a single WriteString call.
//
// Structured output formats are deliberately absent; deferlog emits
// plain text lines only.
package formatter
