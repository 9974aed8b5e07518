package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoRulesPassthrough(t *testing.T) {
	s := New()
	assert.Equal(t, "raw\ntext\x00", s.Sanitize("raw\ntext\x00"))
}

func TestPolicyRawPassthrough(t *testing.T) {
	s := New().Policy(PolicyRaw)
	assert.Equal(t, "a\nb", s.Sanitize("a\nb"))
}

func TestPolicyTxtHexEncodesControl(t *testing.T) {
	s := New().Policy(PolicyTxt)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"newline encoded", "a\nb", "a<0a>b"},
		{"tab encoded", "a\tb", "a<09>b"},
		{"carriage return encoded", "a\r\nb", "a<0d><0a>b"},
		{"null byte encoded", "a\x00b", "a<00>b"},
		{"unicode preserved", "héllo wörld", "héllo wörld"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}

func TestStripTransform(t *testing.T) {
	s := New().Rule(FilterControl, TransformStrip)
	assert.Equal(t, "ab", s.Sanitize("a\n\tb"))
}

func TestFirstMatchingRuleWins(t *testing.T) {
	s := New().
		Rule(FilterControl, TransformStrip).
		Rule(FilterControl|FilterNonPrintable, TransformHexEncode)

	// Control char hits the strip rule before the encode rule
	assert.Equal(t, "ab", s.Sanitize("a\nb"))
}

func TestMultiByteRuneHexEncoding(t *testing.T) {
	s := New().Rule(FilterNonPrintable, TransformHexEncode)

	// U+0085 (NEL) is non-printable, UTF-8 c2 85
	assert.Equal(t, "a<c285>b", s.Sanitize("a\u0085b"))
}

func TestSanitizerReuse(t *testing.T) {
	s := New().Policy(PolicyTxt)

	first := s.Sanitize("first\n")
	second := s.Sanitize("second")

	assert.Equal(t, "first<0a>", first)
	assert.Equal(t, "second", second)
}
