package wam

import (
	"regexp"
	"strconv"

	"github.com/brunokim/wamgen/dsl"
	"github.com/brunokim/wamgen/errors"
	"github.com/brunokim/wamgen/logic"
)

var (
	functorRE = regexp.MustCompile(`^(.+)/(\d+)$`)
	addrRE    = regexp.MustCompile(`^([AXY])(\d+)$`)
)

// ParseFunctor returns a Functor from a string like 'fn/3'.
func ParseFunctor(s string) (Functor, error) {
	matches := functorRE.FindStringSubmatch(s)
	if len(matches) != 3 {
		return Functor{}, errors.New("%q doesn't match a functor pattern", s)
	}
	name, arityStr := matches[1], matches[2]
	arity, err := strconv.Atoi(arityStr)
	if err != nil {
		return Functor{}, errors.New("invalid arity for functor %q: %v", s, err)
	}
	return Functor{name, arity}, nil
}

// ParseAddr returns an address from a string like 'X3', 'A0' or 'Y1'.
//
// Argument registers (A) are the same as temporary registers (X), and the
// returned level tells them apart.
func ParseAddr(s string) (Addr, Level, error) {
	matches := addrRE.FindStringSubmatch(s)
	if len(matches) != 3 {
		return nil, 0, errors.New("%q doesn't match an address pattern", s)
	}
	n, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, 0, errors.New("invalid index for address %q: %v", s, err)
	}
	switch matches[1] {
	case "A":
		return RegAddr(n), Shallow, nil
	case "X":
		return RegAddr(n), Deep, nil
	default:
		return StackAddr(n), Deep, nil
	}
}

func decodeFunctor(t logic.Term) (Functor, error) {
	a, ok := t.(logic.Atom)
	if !ok {
		return Functor{}, errors.New("functor must be an atom, got %v", t)
	}
	return ParseFunctor(a.Name)
}

// Addresses are written as vars, e.g., X0, or as atoms.
func decodeAddr(t logic.Term) (Addr, Level, error) {
	switch x := t.(type) {
	case logic.Var:
		return ParseAddr(x.Name)
	case logic.Atom:
		return ParseAddr(x.Name)
	default:
		return nil, 0, errors.New("invalid address %v", t)
	}
}

func decodeArg(t logic.Term) (int, error) {
	addr, lvl, err := decodeAddr(t)
	if err != nil {
		return 0, err
	}
	reg, ok := addr.(RegAddr)
	if !ok || lvl != Shallow {
		return 0, errors.New("expected argument register, got %v", t)
	}
	return int(reg), nil
}

func decodeConstant(t logic.Term) (Constant, error) {
	switch t.(type) {
	case logic.Atom, logic.Int:
		return toConstant(t), nil
	default:
		return nil, errors.New("invalid constant %v", t)
	}
}

func decodeInt(t logic.Term) (int, error) {
	i, ok := t.(logic.Int)
	if !ok {
		return 0, errors.New("expected int, got %v", t)
	}
	return i.Value, nil
}

// DecodeInstruction builds an instruction from its representation as a logic term,
// mirroring its text form. For example, 'get_structure(f/2, X0)' or 'unify_void(2)'.
//
// Registers in get_constant, get_list, put_constant and put_list are written as
// A<n> for shallow instructions and X<n> for deep ones.
func DecodeInstruction(term logic.Term) (Instruction, error) {
	c, ok := term.(*logic.Comp)
	if !ok {
		return nil, errors.New("invalid instruction representation %v", term)
	}
	instr, err := decodeInstruction(c)
	if err != nil {
		return nil, errors.New("decode %v: %v", term, err)
	}
	return instr, nil
}

func decodeInstruction(c *logic.Comp) (Instruction, error) {
	switch c.Indicator() {
	case dsl.Indicator("get_constant", 2), dsl.Indicator("put_constant", 2):
		k, err := decodeConstant(c.Args[0])
		if err != nil {
			return nil, err
		}
		reg, lvl, err := decodeAddr(c.Args[1])
		if err != nil {
			return nil, err
		}
		if c.Functor == "get_constant" {
			return GetConstant{lvl, k, reg}, nil
		}
		return PutConstant{lvl, k, reg}, nil
	case dsl.Indicator("get_list", 1), dsl.Indicator("put_list", 1):
		reg, lvl, err := decodeAddr(c.Args[0])
		if err != nil {
			return nil, err
		}
		if c.Functor == "get_list" {
			return GetList{lvl, reg}, nil
		}
		return PutList{lvl, reg}, nil
	case dsl.Indicator("get_structure", 2), dsl.Indicator("put_structure", 2):
		f, err := decodeFunctor(c.Args[0])
		if err != nil {
			return nil, err
		}
		reg, _, err := decodeAddr(c.Args[1])
		if err != nil {
			return nil, err
		}
		if c.Functor == "get_structure" {
			return GetStructure{Classify(f.Name, f.Arity), f.Arity, reg}, nil
		}
		return PutStructure{Classify(f.Name, f.Arity), f.Arity, reg}, nil
	case dsl.Indicator("get_variable", 2),
		dsl.Indicator("get_value", 2),
		dsl.Indicator("put_variable", 2),
		dsl.Indicator("put_value", 2):
		addr, _, err := decodeAddr(c.Args[0])
		if err != nil {
			return nil, err
		}
		arg, err := decodeArg(c.Args[1])
		if err != nil {
			return nil, err
		}
		switch c.Functor {
		case "get_variable":
			return GetVariable{addr, arg}, nil
		case "get_value":
			return GetValue{addr, arg}, nil
		case "put_variable":
			return PutVariable{addr, arg}, nil
		default:
			return PutValue{addr, arg}, nil
		}
	case dsl.Indicator("unify_constant", 1):
		k, err := decodeConstant(c.Args[0])
		if err != nil {
			return nil, err
		}
		return UnifyConstant{k}, nil
	case dsl.Indicator("set_constant", 1):
		k, err := decodeConstant(c.Args[0])
		if err != nil {
			return nil, err
		}
		return SetConstant{k}, nil
	case dsl.Indicator("unify_variable", 1),
		dsl.Indicator("unify_value", 1),
		dsl.Indicator("set_variable", 1),
		dsl.Indicator("set_value", 1):
		addr, _, err := decodeAddr(c.Args[0])
		if err != nil {
			return nil, err
		}
		switch c.Functor {
		case "unify_variable":
			return UnifyVariable{addr}, nil
		case "unify_value":
			return UnifyValue{addr}, nil
		case "set_variable":
			return SetVariable{addr}, nil
		default:
			return SetValue{addr}, nil
		}
	case dsl.Indicator("unify_void", 1):
		n, err := decodeInt(c.Args[0])
		if err != nil {
			return nil, err
		}
		return UnifyVoid{n}, nil
	case dsl.Indicator("set_void", 1):
		n, err := decodeInt(c.Args[0])
		if err != nil {
			return nil, err
		}
		return SetVoid{n}, nil
	default:
		return nil, errors.New("unhandled instruction %v", c.Indicator())
	}
}
