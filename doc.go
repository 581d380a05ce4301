// Package equation evaluates arithmetic expressions supplied as text.
//
// Expressions are built from floating-point numbers, the binary operators
// + - * / ^, unary negation, the sqrt function, and parentheses for
// grouping. "2 + 3 * 4" is 14, "sqrt(2+2)" is 2. All operators, including
// ^, associate left to right, so "2^3^2" is (2^3)^2 = 64.
//
// An expression is compiled to a reverse Polish notation program which is
// then run on a value stack. Malformed input is reported with a message
// naming the offending tokens rather than a bare failure: extra
// parentheses, operators and operands in an impossible order, missing
// operands, and division by zero are all distinguished.
//
// Variables let you parse an expression once and evaluate it for many
// inputs by binding names in a Context. Evaluating an expression that uses
// an unbound name is an error.
package equation
