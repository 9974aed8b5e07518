// Package sanitizer keeps log record text safe for a line-oriented file
// format: characters matched by configurable filter flags are stripped or
// hex-encoded so a single record always stays on a single line.
package sanitizer

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable
	FilterControl                         // Matches control characters (unicode.IsControl)
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw PolicyPreset = "raw" // Raw is a no-op (passthrough)
	PolicyTxt PolicyPreset = "txt" // Policy for text written to line-oriented log files
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw: {},
	PolicyTxt: {{filter: FilterControl | FilterNonPrintable, transform: TransformHexEncode}},
}

// Sanitizer provides chainable text sanitization
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	if len(s.rules) == 0 {
		return data
	}

	s.buf = s.buf[:0]

	for _, r := range data {
		matched := false
		// First matching rule wins
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&s.buf, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}

	return string(s.buf)
}

// matchesFilter checks whether a rune matches any flag of a filter set
func matchesFilter(r rune, filter uint64) bool {
	if filter&FilterControl != 0 && unicode.IsControl(r) {
		return true
	}
	if filter&FilterNonPrintable != 0 && !unicode.IsPrint(r) {
		return true
	}
	return false
}

// applyTransform appends the transformed representation of a rune
func applyTransform(buf *[]byte, r rune, transform uint64) {
	switch {
	case transform&TransformStrip != 0:
		// Dropped
	case transform&TransformHexEncode != 0:
		var encoded [utf8.UTFMax]byte
		n := utf8.EncodeRune(encoded[:], r)
		*buf = append(*buf, '<')
		*buf = hex.AppendEncode(*buf, encoded[:n])
		*buf = append(*buf, '>')
	default:
		*buf = utf8.AppendRune(*buf, r)
	}
}
