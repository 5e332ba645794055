package deskcalc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Session accumulates the expression under construction and drives the
// evaluation pipeline. Every visible change is reported to the display
// callback; when the expression is empty the display shows "0". It is not
// safe to use a Session concurrently.
type Session struct {
	buf     string
	display func(string)
}

// NewSession creates a session reporting to display, which must be non-nil.
func NewSession(display func(string)) *Session {
	return &Session{display: display}
}

// Append adds a fragment to the expression and updates the display.
// Fragments containing characters that can never appear in an expression
// are ignored without a display update.
func (s *Session) Append(frag string) {
	for _, r := range frag {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("+-*/^().", r) {
			return
		}
	}
	s.buf += frag
	s.show()
}

// Backspace removes the last character of the expression and updates the
// display. It is a no-op on an empty expression.
func (s *Session) Backspace() {
	if s.buf != "" {
		r := []rune(s.buf)
		s.buf = string(r[:len(r)-1])
	}
	s.show()
}

// Clear resets the expression and displays "0".
func (s *Session) Clear() {
	s.buf = ""
	s.show()
}

// Evaluate runs the expression through the pipeline. A finite result
// replaces the expression with its formatted value; an infinite or NaN
// result replaces it with "Error". On failure the expression is left
// untouched so it can be corrected, and the display shows the error
// message instead.
func (s *Session) Evaluate() {
	src := s.buf
	if src == "" {
		src = "0"
	}
	r, err := EvalString(src)
	if err != nil {
		s.display("error: " + err.Error())
		return
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		s.buf = "Error"
	} else {
		s.buf = FormatResult(r)
	}
	s.display(s.buf)
}

func (s *Session) show() {
	if s.buf == "" {
		s.display("0")
		return
	}
	s.display(s.buf)
}

// FormatResult renders a result with at most 12 significant digits and no
// trailing fractional zeros.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}
