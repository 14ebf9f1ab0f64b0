// Package arith implements a floating-point arithmetic expression evaluator.
//
// The syntax of expressions is the usual infix notation with the usual
// precedence: "2+3*4" is 14, "(2+3)*4" is 20, and "2^3^2" is 512, where
// "a^b" (or "a**b") is exponentiation, grouping to the right. Adjacent
// factors multiply, so "2(3+4)" is the same as "2*(3+4)". The "%" operator
// is an integer remainder: both operands are truncated toward zero before
// the remainder is taken.
//
// Each call to Eval walks its own copy of the cursor over its own input and
// shares nothing, so expressions may be evaluated concurrently without
// synchronization.
package arith
