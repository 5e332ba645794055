package deskcalc

import (
	"math"
	"strconv"
)

// function is a unary operation from the closed function vocabulary. A nil
// domain accepts all reals.
type function struct {
	apply  func(float64) float64
	domain func(float64) bool
}

// funcs is the fixed table of recognized functions. It is read-only after
// initialization.
var funcs = map[string]function{
	"sin":  {apply: math.Sin},
	"cos":  {apply: math.Cos},
	"tan":  {apply: math.Tan},
	"log":  {apply: math.Log10, domain: positive},
	"ln":   {apply: math.Log, domain: positive},
	"sqrt": {apply: math.Sqrt, domain: nonnegative},
}

// consts is the fixed table of named constants.
var consts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func hasConst(name string) bool {
	_, ok := consts[name]
	return ok
}

func positive(x float64) bool { return x > 0 }

func nonnegative(x float64) bool { return x >= 0 }

// DomainError is an error returned when a function is called on an argument
// outside its domain. It implements InputError.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is the name of the function.
	Func string
	// Col is the position of the function token.
	Col int
}

func (err *DomainError) Error() string {
	return errpos(err.Col, strconv.FormatFloat(err.X, 'g', -1, 64)+" outside domain of "+err.Func)
}

func (err *DomainError) Pos() int {
	return err.Col
}
