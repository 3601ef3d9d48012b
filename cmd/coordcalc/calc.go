package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/lvcoord/coord"
)

// supportedTypes lists the element types accepted by --type and --to.
const supportedTypes = "float64, float32, int, int64, int32"

var (
	errUnknownType = errors.New("unknown element type")
	errUnsupported = errors.New("operation requires coord2 operands")
	errBadOperator = errors.New("unsupported operator")
	errArity       = errors.New("expected 2 or 3 components")
	errArithmetic  = errors.New("arithmetic failed")
)

// calculator evaluates coordinate text for one element type.
type calculator interface {
	// Format builds a coordinate from 2 or 3 component strings.
	Format(components []string) (string, error)
	// Eval applies op to a coord2 literal and a coord2 literal or scalar.
	Eval(lhs, op, rhs string) (string, error)
	// Convert reads a coord2/coord3 literal and converts it to this
	// calculator's element type. All-integer literals are read as int64,
	// others as float64.
	Convert(literal string) (string, error)
}

// newCalculator returns the calculator for the named element type.
func newCalculator(name string) (calculator, error) {
	switch name {
	case "float64", "":
		return calc[float64]{}, nil
	case "float32":
		return calc[float32]{}, nil
	case "int":
		return calc[int]{}, nil
	case "int64":
		return calc[int64]{}, nil
	case "int32":
		return calc[int32]{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", errUnknownType, name, supportedTypes)
	}
}

type calc[T coord.Number] struct{}

func (calc[T]) Format(components []string) (string, error) {
	vals := make([]T, len(components))
	for i, s := range components {
		v, err := coord.ParseScalar[T](s)
		if err != nil {
			return "", err
		}
		vals[i] = v
	}
	switch len(vals) {
	case 2:
		return coord.New2(vals[0], vals[1]).String(), nil
	case 3:
		return coord.New3(vals[0], vals[1], vals[2]).String(), nil
	default:
		return "", fmt.Errorf("%w, got %d", errArity, len(vals))
	}
}

func (calc[T]) Eval(lhs, op, rhs string) (res string, err error) {
	// Integer division by zero is left to the runtime; report it as an error.
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w: %s", errArithmetic, re.Error())
		}
	}()

	a, err := parseOperand2[T](lhs)
	if err != nil {
		return "", err
	}

	if isLiteral(rhs) {
		b, err := parseOperand2[T](rhs)
		if err != nil {
			return "", err
		}
		switch op {
		case "+":
			return a.Add(b).String(), nil
		case "-":
			return a.Sub(b).String(), nil
		default:
			return "", fmt.Errorf("%w %q with a coordinate right operand", errBadOperator, op)
		}
	}

	s, err := coord.ParseScalar[T](rhs)
	if err != nil {
		return "", err
	}
	switch op {
	case "+":
		return a.AddScalar(s).String(), nil
	case "-":
		return a.SubScalar(s).String(), nil
	case "*", "x":
		return a.Mul(s).String(), nil
	case "/":
		return a.Div(s).String(), nil
	default:
		return "", fmt.Errorf("%w %q", errBadOperator, op)
	}
}

func (calc[T]) Convert(literal string) (string, error) {
	// Integer text goes through int64 so it converts exactly and wraps
	// when narrowed; anything else is read as float64.
	if c2, err := coord.Parse2[int64](literal); err == nil {
		return coord.Convert2[T](c2).String(), nil
	}
	if c3, err := coord.Parse3[int64](literal); err == nil {
		return coord.Convert3[T](c3).String(), nil
	}

	c2, err := coord.Parse2[float64](literal)
	if err == nil {
		return coord.Convert2[T](c2).String(), nil
	}
	if !errors.Is(err, coord.ErrDimension) {
		return "", err
	}
	c3, err := coord.Parse3[float64](literal)
	if err != nil {
		return "", err
	}
	return coord.Convert3[T](c3).String(), nil
}

// parseOperand2 parses an arithmetic operand, rejecting coord3 literals
// with errUnsupported.
func parseOperand2[T coord.Number](s string) (coord.Coord2[T], error) {
	c, err := coord.Parse2[T](s)
	if errors.Is(err, coord.ErrDimension) {
		return c, fmt.Errorf("%w: %s", errUnsupported, strings.TrimSpace(s))
	}
	return c, err
}

// isLiteral reports whether s looks like a coordinate literal rather than
// a scalar.
func isLiteral(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "coord") || strings.ContainsAny(s, "(),")
}
