package deskcalc_test

import (
	"strings"
	"testing"

	"deskcalc"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("sin(pi/6)")
	f.Add("(1+2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := deskcalc.Parse(s)
		if err != nil {
			return
		}
		if strings.ContainsAny(a.String(), "()") {
			t.Errorf("postfix form of %q contains a bracket: %q", s, a.String())
		}
	})
}
