package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-num64"
)

var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

func parseU64(s string) (num64.U64, error) {
	v, acc, err := num64.U64FromString(s)
	if err != nil {
		return v, err
	}
	if !acc {
		return v, fmt.Errorf("calc: %q does not fit in a u64", s)
	}
	return v, nil
}

func parseI64(s string) (num64.I64, error) {
	v, acc, err := num64.I64FromString(s)
	if err != nil {
		return v, err
	}
	if !acc {
		return v, fmt.Errorf("calc: %q does not fit in an i64", s)
	}
	return v, nil
}

func parseShift(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("calc: invalid shift %q: %w", s, err)
	}
	return uint(n), nil
}

// evalU64 returns a num64.U64 for arithmetic ops and a bool for comparisons.
func evalU64(args []string) (interface{}, error) {
	if len(args) == 2 {
		if args[0] != "not" {
			return nil, fmt.Errorf("calc: unknown u64 unary op %q", args[0])
		}
		a, err := parseU64(args[1])
		if err != nil {
			return nil, err
		}
		return a.Not(), nil
	}

	a, err := parseU64(args[0])
	if err != nil {
		return nil, err
	}

	op := args[1]
	if op == "<<" || op == ">>" {
		n, err := parseShift(args[2])
		if err != nil {
			return nil, err
		}
		if op == "<<" {
			return a.Lsh(n), nil
		}
		return a.Rsh(n), nil
	}

	b, err := parseU64(args[2])
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/", "%":
		if b.IsZero() {
			return nil, fmt.Errorf("calc: division by zero")
		}
		if op == "/" {
			return a.Quo(b), nil
		}
		return a.Rem(b), nil
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "&^":
		return a.AndNot(b), nil
	case "==":
		return a.Equal(b), nil
	case "!=":
		return a.NotEqual(b), nil
	case "<":
		return a.LessThan(b), nil
	case "<=":
		return a.LessOrEqualTo(b), nil
	case ">":
		return a.GreaterThan(b), nil
	case ">=":
		return a.GreaterOrEqualTo(b), nil
	default:
		return nil, fmt.Errorf("calc: unknown op %q", op)
	}
}

// evalI64 returns a num64.I64 for arithmetic ops and a bool for comparisons.
func evalI64(args []string) (interface{}, error) {
	if len(args) == 2 {
		a, err := parseI64(args[1])
		if err != nil {
			return nil, err
		}
		switch args[0] {
		case "neg":
			return a.Neg(), nil
		case "not":
			return a.Not(), nil
		case "abs":
			return a.Abs(), nil
		default:
			return nil, fmt.Errorf("calc: unknown i64 unary op %q", args[0])
		}
	}

	a, err := parseI64(args[0])
	if err != nil {
		return nil, err
	}

	op := args[1]
	if op == "<<" || op == ">>" {
		n, err := parseShift(args[2])
		if err != nil {
			return nil, err
		}
		if op == "<<" {
			return a.Lsh(n), nil
		}
		return a.Rsh(n), nil
	}

	b, err := parseI64(args[2])
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/", "%":
		if b.IsZero() {
			return nil, fmt.Errorf("calc: division by zero")
		}
		if op == "/" {
			return a.Quo(b), nil
		}
		return a.Rem(b), nil
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "&^":
		return a.AndNot(b), nil
	case "==":
		return a.Equal(b), nil
	case "!=":
		return a.NotEqual(b), nil
	case "<":
		return a.LessThan(b), nil
	case "<=":
		return a.LessOrEqualTo(b), nil
	case ">":
		return a.GreaterThan(b), nil
	case ">=":
		return a.GreaterOrEqualTo(b), nil
	default:
		return nil, fmt.Errorf("calc: unknown op %q", op)
	}
}

func printResult(w io.Writer, v interface{}, opts printOpts) error {
	switch v := v.(type) {
	case bool:
		_, err := fmt.Fprintln(w, v)
		return err

	case num64.U64, num64.I64:
		f := "%d\n"
		if opts.hex {
			f = "%#x\n"
		}
		if _, err := fmt.Fprintf(w, f, v); err != nil {
			return err
		}
		if opts.dump {
			dumper.Fdump(w, v)
		}
		return nil

	default:
		return fmt.Errorf("calc: unexpected result %T", v)
	}
}
