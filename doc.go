// Package deskcalc implements the expression engine behind a pocket
// calculator: a tokenizer, an infix-to-postfix transformer, a postfix
// evaluator, and an input session that accumulates keystrokes and formats
// results for a display.
//
// Expressions are built from decimal numbers, the binary operators
// + - * / ^, parentheses, the unary functions sin, cos, tan, log, ln, and
// sqrt, and the constants pi and e. "^" is right-associative, so "2^3^2"
// is "2^(3^2)". A function applies to the parenthesized group that follows
// it, as in "sqrt(2)".
package deskcalc
