package deskcalc

import (
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenFunc is a name from the function table.
	tokenFunc
	// tokenBracket is ( or ).
	tokenBracket
	// tokenConst is a name from the constant table.
	tokenConst
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenFunc:
		return "Func"
	case tokenBracket:
		return "Bracket"
	case tokenConst:
		return "Const"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// tokenize converts an expression to its token sequence. Whitespace is
// stripped before scanning, so token positions are rune columns of the
// stripped text. Empty input yields an empty sequence.
func tokenize(src string) ([]token, error) {
	rs := []rune(stripSpace(src))
	var toks []token
	i := 0
	for i < len(rs) {
		r := rs[i]
		pos := i + 1
		switch {
		case '0' <= r && r <= '9', r == '.':
			j := i
			dots := 0
			for j < len(rs) && (rs[j] == '.' || '0' <= rs[j] && rs[j] <= '9') {
				if rs[j] == '.' {
					dots++
				}
				j++
			}
			text := string(rs[i:j])
			if dots > 1 {
				return nil, &LexError{Text: text, Kind: "number", Col: pos}
			}
			toks = append(toks, token{kind: tokenNum, text: text, pos: pos})
			i = j
		case unicode.IsLetter(r):
			j := i + 1
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j])) {
				j++
			}
			text := string(rs[i:j])
			switch {
			case funcs[text].apply != nil:
				toks = append(toks, token{kind: tokenFunc, text: text, pos: pos})
			case hasConst(text):
				toks = append(toks, token{kind: tokenConst, text: text, pos: pos})
			default:
				return nil, &LexError{Text: text, Kind: "identifier", Col: pos}
			}
			i = j
		case r == '(', r == ')':
			toks = append(toks, token{kind: tokenBracket, text: string(r), pos: pos})
			i++
		case strings.ContainsRune(Operators, r):
			toks = append(toks, token{kind: tokenOp, text: string(r), pos: pos})
			i++
		default:
			return nil, &LexError{Text: string(r), Col: pos}
		}
	}
	return toks, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token being scanned when the error was detected.
	Text string
	// Kind is the type of token being scanned. This may be "number",
	// "identifier", or the empty string (if a token kind hadn't been
	// decided).
	Kind string
	// Col is the rune column of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	switch err.Kind {
	case "":
		return "invalid character at " + pos + ": " + strconv.Quote(err.Text)
	case "identifier":
		return "unknown identifier at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
