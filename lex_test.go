package deskcalc

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
		errCol int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []token{{kind: tokenNum, text: "0", pos: 1}}, 0},
		{"9876543210", []token{{kind: tokenNum, text: "9876543210", pos: 1}}, 0},
		{"1.5", []token{{kind: tokenNum, text: "1.5", pos: 1}}, 0},
		{".5", []token{{kind: tokenNum, text: ".5", pos: 1}}, 0},
		{".", []token{{kind: tokenNum, text: ".", pos: 1}}, 0},
		// whitespace is stripped before scanning, so these join
		{"1 0", []token{{kind: tokenNum, text: "10", pos: 1}}, 0},
		{"1 . 5", []token{{kind: tokenNum, text: "1.5", pos: 1}}, 0},
		{"1.2.3", nil, 1},
		// operators
		{"1+2", []token{
			{kind: tokenNum, text: "1", pos: 1},
			{kind: tokenOp, text: "+", pos: 2},
			{kind: tokenNum, text: "2", pos: 3},
		}, 0},
		{"2^3", []token{
			{kind: tokenNum, text: "2", pos: 1},
			{kind: tokenOp, text: "^", pos: 2},
			{kind: tokenNum, text: "3", pos: 3},
		}, 0},
		// identifiers
		{"sin", []token{{kind: tokenFunc, text: "sin", pos: 1}}, 0},
		{"sqrt", []token{{kind: tokenFunc, text: "sqrt", pos: 1}}, 0},
		{"pi", []token{{kind: tokenConst, text: "pi", pos: 1}}, 0},
		{"e", []token{{kind: tokenConst, text: "e", pos: 1}}, 0},
		{"foo", nil, 1},
		{"log10", nil, 1},
		{"2x", nil, 2},
		// brackets and mixed forms
		{"sin(3)", []token{
			{kind: tokenFunc, text: "sin", pos: 1},
			{kind: tokenBracket, text: "(", pos: 4},
			{kind: tokenNum, text: "3", pos: 5},
			{kind: tokenBracket, text: ")", pos: 6},
		}, 0},
		{"(pi)", []token{
			{kind: tokenBracket, text: "(", pos: 1},
			{kind: tokenConst, text: "pi", pos: 2},
			{kind: tokenBracket, text: ")", pos: 4},
		}, 0},
		// erroneous characters
		{"$", nil, 1},
		{"2$", nil, 2},
		{"1+#2", nil, 3},
	}

	for _, c := range cases {
		got, err := tokenize(c.src)
		if c.errCol > 0 {
			lerr := new(LexError)
			if !errors.As(err, &lerr) {
				t.Errorf("scanning %q: want LexError, got %v", c.src, err)
				continue
			}
			if lerr.Col != c.errCol {
				t.Errorf("scanning %q: error at column %d, want %d", c.src, lerr.Col, c.errCol)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, got)
		}
	}
}
