package main

import (
	"fmt"
	"strconv"
)

// number is the method set Int96 and UInt96 share.
type number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	Rem(T) (T, error)
	And(T) T
	Or(T) T
	Xor(T) T
	AndNot(T) T
	Cmp(T) int
	Lsh(uint) T
	Rsh(uint) T
	URsh(uint) T
	RotateLeft(int) T
	RotateRight(int) T
	String() string
	Text(int) string
}

var opKeys = []string{"+", "-", "*", "/", "%", "&", "|", "^", "&^", "<<", ">>", ">>>", "rotl", "rotr", "cmp"}

// countOp reports whether the right operand of op is a bit count rather than
// a number of the same type.
func countOp(op string) bool {
	switch op {
	case "<<", ">>", ">>>", "rotl", "rotr":
		return true
	}
	return false
}

func validOp(op string) bool {
	for _, o := range opKeys {
		if o == op {
			return true
		}
	}
	return false
}

func parseCount(op, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 && op != "rotl" && op != "rotr" {
		return 0, fmt.Errorf("negative shift count %d", n)
	}
	return n, nil
}

// eval applies op. Only one of y and n is used, depending on countOp(op).
// Comparisons come back as a plain int, everything else as a T.
func eval[T number[T]](x T, op string, y T, n int) (any, error) {
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Quo(y)
	case "%":
		return x.Rem(y)
	case "&":
		return x.And(y), nil
	case "|":
		return x.Or(y), nil
	case "^":
		return x.Xor(y), nil
	case "&^":
		return x.AndNot(y), nil
	case "<<":
		return x.Lsh(uint(n)), nil
	case ">>":
		return x.Rsh(uint(n)), nil
	case ">>>":
		return x.URsh(uint(n)), nil
	case "rotl":
		return x.RotateLeft(n), nil
	case "rotr":
		return x.RotateRight(n), nil
	case "cmp":
		return x.Cmp(y), nil
	}
	return nil, fmt.Errorf("unknown op %q", op)
}

// operands holds a parsed expression in one signedness.
type operands[T number[T]] struct {
	x, y T
	n    int
}

func parseOperands[T number[T]](parse func(string, int) (T, error), a, op, b string) (operands[T], []error) {
	var (
		o    operands[T]
		errs []error
		err  error
	)
	if o.x, err = parse(a, 0); err != nil {
		errs = append(errs, fmt.Errorf("left operand: %w", err))
	}
	if countOp(op) {
		if o.n, err = parseCount(op, b); err != nil {
			errs = append(errs, fmt.Errorf("right operand: %w", err))
		}
	} else if o.y, err = parse(b, 0); err != nil {
		errs = append(errs, fmt.Errorf("right operand: %w", err))
	}
	return o, errs
}

func (o operands[T]) eval(op string) (any, error) {
	return eval(o.x, op, o.y, o.n)
}
