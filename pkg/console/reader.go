package console

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader is the blocking line source of a console.
//
// ReadLine returns one line without its terminator. It returns
// ErrInputExhausted when no further input is available and ErrInterrupted
// when an interactive user cancelled the line.
type LineReader interface {
	ReadLine() (string, error)
}

// PromptSetter is implemented by line readers that draw the prompt
// themselves. The console hands the prompt text to such readers instead of
// writing it to the output.
type PromptSetter interface {
	SetPrompt(prompt string)
}

// ScannerReader reads lines from a plain io.Reader, e.g. a pipe or a file.
type ScannerReader struct {
	scanner *bufio.Scanner
}

// NewScannerReader creates a ScannerReader. Line terminators "\n" and
// "\r\n" are both stripped.
func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

// ReadLine implements LineReader.
func (s *ScannerReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return "", ErrInputExhausted
}
