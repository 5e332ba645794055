package deskcalc

import (
	"strings"
)

// Expr = num | const | funcname '(' Expr ')' | Neg | Plus | Expr op Expr | '(' Expr ')'
// Neg = '-' Expr
// Plus = '+' Expr
// op = '+' | '-' | '*' | '/' | '^'

// Expr is a parsed expression held in postfix order, ready to evaluate.
type Expr struct {
	code []token
}

// opInfo describes how a binary operator binds.
type opInfo struct {
	prec       int
	rightAssoc bool
	unary      bool
}

var binops = map[string]opInfo{
	"+": {prec: 1},
	"-": {prec: 1},
	"*": {prec: 2},
	"/": {prec: 2},
	"^": {prec: 3, rightAssoc: true},
	// neg is the synthetic unary negation written by the transformer for a
	// prefix -. It binds looser than ^, so -2^2 is -(2^2).
	"neg": {prec: 3, rightAssoc: true, unary: true},
}

// Parse converts an expression to its evaluable postfix form.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	code, err := shunt(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{code: code}, nil
}

// shunt reorders tokens into postfix using an operator stack. The stack
// holds operators, function names, and open brackets; a function is emitted
// when the bracket group following it closes, which binds the group as the
// function's argument.
func shunt(toks []token) ([]token, error) {
	var out, stack []token
	prev := token{}
	for _, t := range toks {
		raw := t
		switch t.kind {
		case tokenNum, tokenConst:
			out = append(out, t)
		case tokenFunc:
			stack = append(stack, t)
		case tokenOp:
			if unaryPosition(prev) {
				switch t.text {
				case "+":
					// A prefix + is a no-op.
					prev = raw
					continue
				case "-":
					t.text = "neg"
				}
			}
			o := binops[t.text]
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenOp {
					p := binops[top.text]
					if p.rightAssoc && p.prec <= o.prec || !p.rightAssoc && p.prec < o.prec {
						break
					}
				} else if top.kind != tokenFunc {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		case tokenBracket:
			if t.text == "(" {
				stack = append(stack, t)
				break
			}
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: t.pos, Right: ")"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenBracket {
					break
				}
				out = append(out, top)
			}
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		}
		prev = raw
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenBracket {
			return nil, &BracketError{Col: top.pos, Left: top.text}
		}
		out = append(out, top)
	}
	return out, nil
}

// unaryPosition reports whether an operator following prev is in prefix
// position, i.e. there is no left operand for it to bind.
func unaryPosition(prev token) bool {
	switch prev.kind {
	case tokenNone, tokenOp, tokenFunc:
		return true
	case tokenBracket:
		return prev.text == "("
	}
	return false
}

// String renders the postfix program with one space between tokens.
func (e *Expr) String() string {
	var b strings.Builder
	for i, t := range e.code {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String()
}
