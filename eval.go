package deskcalc

import (
	"math"
	"strconv"
)

// Eval evaluates the postfix program and returns its result. The result may
// be infinite or NaN; numeric range is never an error. Malformed programs
// report EvalError, division by exactly zero reports DivisionByZeroError,
// and a function argument outside the function's domain reports
// DomainError.
func (e *Expr) Eval() (float64, error) {
	var stack []float64
	for _, t := range e.code {
		switch t.kind {
		case tokenNum:
			v, err := strconv.ParseFloat(t.text, 64)
			if err != nil {
				return 0, &EvalError{Col: t.pos, Msg: "invalid number " + strconv.Quote(t.text)}
			}
			stack = append(stack, v)
		case tokenConst:
			stack = append(stack, consts[t.text])
		case tokenOp:
			if binops[t.text].unary {
				if len(stack) < 1 {
					return 0, &EvalError{Col: t.pos, Msg: "missing operand for -"}
				}
				stack[len(stack)-1] = -stack[len(stack)-1]
				break
			}
			if len(stack) < 2 {
				return 0, &EvalError{Col: t.pos, Msg: "missing operand for " + t.text}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			var v float64
			switch t.text {
			case "+":
				v = l + r
			case "-":
				v = l - r
			case "*":
				v = l * r
			case "/":
				if r == 0 {
					return 0, &DivisionByZeroError{Col: t.pos}
				}
				v = l / r
			case "^":
				v = math.Pow(l, r)
			}
			stack[len(stack)-1] = v
		case tokenFunc:
			if len(stack) < 1 {
				return 0, &EvalError{Col: t.pos, Msg: "missing argument to " + t.text}
			}
			x := stack[len(stack)-1]
			f := funcs[t.text]
			if f.domain != nil && !f.domain(x) {
				return 0, &DomainError{X: x, Func: t.text, Col: t.pos}
			}
			stack[len(stack)-1] = f.apply(x)
		}
	}
	if len(stack) != 1 {
		return 0, &EvalError{Col: endPos(e.code), Msg: "invalid expression"}
	}
	return stack[0], nil
}

func endPos(code []token) int {
	if len(code) == 0 {
		return 1
	}
	return code[len(code)-1].pos
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalError indicates a malformed postfix program, e.g. an operator with
// too few operands. It implements InputError.
type EvalError struct {
	// Col is the position of the token that could not be evaluated.
	Col int
	// Msg describes the failure.
	Msg string
}

func (err *EvalError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *EvalError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a division whose right operand is exactly
// zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the / operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}
