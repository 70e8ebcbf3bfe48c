package sink

import (
	"bufio"
	"fmt"
	"os"
)

// File appends lines to a file through a buffered writer. Only the
// draining goroutine writes, so no locking is needed.
type File struct {
	filename string
	file     *os.File
	bw       *bufio.Writer
}

// NewFile opens path with append semantics, creating it if needed.
func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &File{
		filename: path,
		file:     f,
		bw:       bufio.NewWriter(f),
	}, nil
}

// Write appends the line to the file's buffer.
func (s *File) Write(line []byte) error {
	_, err := s.bw.Write(line)
	return err
}

// Flush pushes buffered lines to the operating system.
func (s *File) Flush() error {
	return s.bw.Flush()
}

// Close flushes buffered lines, syncs, and closes the file.
func (s *File) Close() error {
	if err := s.bw.Flush(); err != nil {
		s.file.Close()
		return err
	}
	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
