package charm

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmlang/charm/internal/flushio"
)

// ioSurface is the thin I/O contract spec.md §6 describes: write a byte
// string, and read one line without its trailing newline. p, pstring, and
// newline write through out; getline reads through in. An embedding GUI
// front end (out of scope here) supplies alternative implementations of the
// same two operations.
type ioSurface struct {
	out flushio.WriteFlusher
	in  *bufio.Reader
}

func newIOSurface(w io.Writer, r io.Reader) *ioSurface {
	return &ioSurface{out: flushio.NewWriteFlusher(w), in: bufio.NewReader(r)}
}

func newFlushWriter(w io.Writer) flushio.WriteFlusher { return flushio.NewWriteFlusher(w) }

func (s *ioSurface) setInput(r io.Reader) { s.in = bufio.NewReader(r) }

// writeString writes str and flushes. Like the original interpreter's
// display_output, a failing write is not part of Charm's error taxonomy
// (spec.md §7 enumerates language-level faults, not host I/O faults) and is
// not treated as fatal.
func (s *ioSurface) writeString(str string) {
	io.WriteString(s.out, str)
	s.out.Flush()
}

func (s *ioSurface) readLine() string {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
