package mlog

import (
	"strings"
	"time"

	"github.com/lixenwraith/mlog/sanitizer"
)

// exceptionTag prefixes every formatted exception block.
const exceptionTag = "[EXCEPTION] "

// serializer manages the buffered rendering of log records.
// Callers must serialize access; the manager renders under its dispatch lock.
type serializer struct {
	buf             []byte
	timestampFormat string
	san             *sanitizer.Sanitizer
}

// newSerializer creates a serializer instance.
func newSerializer() *serializer {
	return &serializer{
		buf:             make([]byte, 0, 4096), // Initial reasonable capacity
		timestampFormat: time.RFC3339Nano,      // Default until configured
		san:             sanitizer.New().Policy(sanitizer.PolicyTxt),
	}
}

// reset clears the serializer buffer for reuse.
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// setTimestampFormat configures the time layout for subsequent records.
func (s *serializer) setTimestampFormat(format string) {
	s.timestampFormat = format
}

// serializeRecord renders one single-line record: "timestamp LEVEL message\n".
// The message is sanitized so embedded control characters cannot break the
// one-record-per-line file format. The returned slice is reused by the next
// call; copy it before handing it to another goroutine.
func (s *serializer) serializeRecord(timestamp time.Time, level int64, message string) []byte {
	s.reset()
	s.buf = timestamp.AppendFormat(s.buf, s.timestampFormat)
	s.buf = append(s.buf, ' ')
	s.buf = append(s.buf, levelToString(level)...)
	s.buf = append(s.buf, ' ')
	s.buf = append(s.buf, s.san.Sanitize(message)...)
	s.buf = append(s.buf, '\n')
	return s.buf
}

// serializeException renders an exception record: the usual line prefix
// followed by the exception block. The stack trace keeps its own line
// structure, so the record is multi-line by design of the file format.
func (s *serializer) serializeException(timestamp time.Time, excType, message, stackTrace string) []byte {
	s.reset()
	s.buf = timestamp.AppendFormat(s.buf, s.timestampFormat)
	s.buf = append(s.buf, ' ')
	s.buf = append(s.buf, levelToString(LevelError)...)
	s.buf = append(s.buf, ' ')
	s.buf = append(s.buf, exceptionTag...)
	if excType != "" {
		s.buf = append(s.buf, s.san.Sanitize(excType)...)
		s.buf = append(s.buf, ':', ' ')
	}
	if message != "" {
		s.buf = append(s.buf, s.san.Sanitize(message)...)
	}
	if stackTrace != "" {
		s.buf = append(s.buf, '\n')
		s.buf = append(s.buf, strings.TrimRight(stackTrace, "\n")...)
	}
	s.buf = append(s.buf, '\n')
	return s.buf
}
