// Package wam lowers logic clauses into instructions for a Warren Abstract Machine.
//
// The WAM is a design for a register-based Prolog machine,
// that enjoys good performance and ease of translation to machine code.
//
// A clause head is compiled into "fact" instructions (get_*, unify_*), that
// check the arguments received in registers A0..An. Each body goal is compiled
// into "query" instructions (put_*, set_*), that build the arguments for the
// call. Both directions share a single compilation routine, parameterized by
// a Target that knows how to emit each kind of instruction.
//
// Learn more in "Warren’s Abstract Machine: A tutorial reconstrution", Hassan Aït-Kici
package wam

import (
	"fmt"

	"github.com/brunokim/wamgen/logic"
)

// ---- Address types

// Addr represents where a term lives within the machine's memory.
type Addr interface {
	fmt.Stringer
	isAddr()
}

// RegAddr is the index of a machine register.
type RegAddr int

// StackAddr is the index of a permanent variable in the current environment.
type StackAddr int

func (a RegAddr) isAddr()   {}
func (a StackAddr) isAddr() {}

func (a RegAddr) String() string   { return fmt.Sprintf("X%d", a) }
func (a StackAddr) String() string { return fmt.Sprintf("Y%d", a) }

// Level tells whether an instruction operates on an argument of a clause
// head or goal (Shallow), or within another term (Deep).
type Level int

const (
	Shallow Level = iota
	Deep
)

func (l Level) String() string {
	switch l {
	case Shallow:
		return "shallow"
	case Deep:
		return "deep"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Format an address as seen by an instruction at this level.
// Shallow registers are argument registers.
func (l Level) addr(a Addr) string {
	if r, ok := a.(RegAddr); ok && l == Shallow {
		return fmt.Sprintf("A%d", r)
	}
	return a.String()
}

// ---- Functors

// Functor represents a predicate's name and arity.
type Functor struct {
	Name  string
	Arity int
}

func (f Functor) String() string {
	return fmt.Sprintf("%s/%d", f.Name, f.Arity)
}

// CallKind classifies how a functor is resolved when called.
type CallKind int

const (
	// Named is a user-defined predicate.
	Named CallKind = iota
	// Builtin is a predicate implemented by the machine.
	Builtin
	// Inlined is a predicate that compiles to dedicated instructions instead of a call.
	Inlined
	// CallN is a meta-call, call/N, whose goal is only known at runtime.
	CallN
)

var callKindNames = [...]string{"named", "builtin", "inlined", "call_n"}

func (k CallKind) String() string {
	if k < 0 || int(k) >= len(callKindNames) {
		return fmt.Sprintf("CallKind(%d)", int(k))
	}
	return callKindNames[k]
}

// ClauseType is the signature of a structure's functor, together with its
// call classification. The arity is carried separately.
type ClauseType struct {
	Name string
	Kind CallKind
}

func (ct ClauseType) String() string {
	return logic.FormatAtom(ct.Name)
}

var (
	inlined = map[Functor]struct{}{
		{"!", 0}:     {},
		{"fail", 0}:  {},
		{"false", 0}: {},
		{"@<", 2}:    {},
		{"@=<", 2}:   {},
		{"@>=", 2}:   {},
		{"@>", 2}:    {},
		{"==", 2}:    {},
		{"\\==", 2}:  {},
	}
	builtins = map[Functor]struct{}{
		{"=", 2}:        {},
		{"\\=", 2}:      {},
		{"is", 2}:       {},
		{"var", 1}:      {},
		{"nonvar", 1}:   {},
		{"atom", 1}:     {},
		{"integer", 1}:  {},
		{"compound", 1}: {},
	}
)

// Classify returns the clause type for a functor name and arity.
func Classify(name string, arity int) ClauseType {
	f := Functor{name, arity}
	if _, ok := inlined[f]; ok {
		return ClauseType{name, Inlined}
	}
	if _, ok := builtins[f]; ok {
		return ClauseType{name, Builtin}
	}
	if name == "call" && arity >= 1 {
		return ClauseType{name, CallN}
	}
	return ClauseType{name, Named}
}

// ---- Constants

// Constant represents an immutable value stored in a single cell.
type Constant interface {
	fmt.Stringer
	isConstant()
}

// WAtom is an atom constant.
type WAtom string

// WInt is an integer constant.
type WInt int

func (c WAtom) isConstant() {}
func (c WInt) isConstant()  {}

func (c WAtom) String() string { return logic.FormatAtom(string(c)) }
func (c WInt) String() string  { return fmt.Sprintf("%d", int(c)) }

// ---- Instructions

// Instruction represents an instruction of the abstract machine.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// FactInstruction is an instruction that unifies a clause head with the
// call arguments.
type FactInstruction interface {
	Instruction
	isFactInstruction()
}

// QueryInstruction is an instruction that builds the arguments of a goal.
type QueryInstruction interface {
	Instruction
	isQueryInstruction()
}

// GetConstant instruction: get_constant <const>, <reg>
type GetConstant struct {
	Level    Level
	Constant Constant
	Reg      Addr
}

// GetList instruction: get_list <reg>
type GetList struct {
	Level Level
	Reg   Addr
}

// GetStructure instruction: get_structure <f/n>, <reg>
type GetStructure struct {
	Type  ClauseType
	Arity int
	Reg   Addr
}

// GetVariable instruction: get_variable <addr>, <reg A>
//
// It copies the argument register into addr. It belongs to both families: in
// a goal it moves an argument register out of the way before it is overwritten.
type GetVariable struct {
	Reg Addr
	Arg int
}

// GetValue instruction: get_value <addr>, <reg A>
type GetValue struct {
	Reg Addr
	Arg int
}

// UnifyConstant instruction: unify_constant <const>
type UnifyConstant struct {
	Constant Constant
}

// UnifyVariable instruction: unify_variable <addr>
type UnifyVariable struct {
	Addr Addr
}

// UnifyValue instruction: unify_value <addr>
type UnifyValue struct {
	Addr Addr
}

// UnifyVoid instruction: unify_void <n>
type UnifyVoid struct {
	NumVars int
}

// PutConstant instruction: put_constant <const>, <reg>
type PutConstant struct {
	Level    Level
	Constant Constant
	Reg      Addr
}

// PutList instruction: put_list <reg>
type PutList struct {
	Level Level
	Reg   Addr
}

// PutStructure instruction: put_structure <f/n>, <reg>
type PutStructure struct {
	Type  ClauseType
	Arity int
	Reg   Addr
}

// PutVariable instruction: put_variable <addr>, <reg A>
type PutVariable struct {
	Reg Addr
	Arg int
}

// PutValue instruction: put_value <addr>, <reg A>
type PutValue struct {
	Reg Addr
	Arg int
}

// SetConstant instruction: set_constant <const>
type SetConstant struct {
	Constant Constant
}

// SetVariable instruction: set_variable <addr>
type SetVariable struct {
	Addr Addr
}

// SetValue instruction: set_value <addr>
type SetValue struct {
	Addr Addr
}

// SetVoid instruction: set_void <n>
type SetVoid struct {
	NumVars int
}

func (i GetConstant) isInstruction()   {}
func (i GetList) isInstruction()       {}
func (i GetStructure) isInstruction()  {}
func (i GetVariable) isInstruction()   {}
func (i GetValue) isInstruction()      {}
func (i UnifyConstant) isInstruction() {}
func (i UnifyVariable) isInstruction() {}
func (i UnifyValue) isInstruction()    {}
func (i UnifyVoid) isInstruction()     {}
func (i PutConstant) isInstruction()   {}
func (i PutList) isInstruction()       {}
func (i PutStructure) isInstruction()  {}
func (i PutVariable) isInstruction()   {}
func (i PutValue) isInstruction()      {}
func (i SetConstant) isInstruction()   {}
func (i SetVariable) isInstruction()   {}
func (i SetValue) isInstruction()      {}
func (i SetVoid) isInstruction()       {}

func (i GetConstant) isFactInstruction()   {}
func (i GetList) isFactInstruction()       {}
func (i GetStructure) isFactInstruction()  {}
func (i GetVariable) isFactInstruction()   {}
func (i GetValue) isFactInstruction()      {}
func (i UnifyConstant) isFactInstruction() {}
func (i UnifyVariable) isFactInstruction() {}
func (i UnifyValue) isFactInstruction()    {}
func (i UnifyVoid) isFactInstruction()     {}

func (i PutConstant) isQueryInstruction()  {}
func (i PutList) isQueryInstruction()      {}
func (i PutStructure) isQueryInstruction() {}
func (i PutVariable) isQueryInstruction()  {}
func (i PutValue) isQueryInstruction()     {}
func (i GetVariable) isQueryInstruction()  {}
func (i SetConstant) isQueryInstruction()  {}
func (i SetVariable) isQueryInstruction()  {}
func (i SetValue) isQueryInstruction()     {}
func (i SetVoid) isQueryInstruction()      {}

func (i GetConstant) String() string {
	return fmt.Sprintf("get_constant %v, %s", i.Constant, i.Level.addr(i.Reg))
}

func (i GetList) String() string {
	return fmt.Sprintf("get_list %s", i.Level.addr(i.Reg))
}

func (i GetStructure) String() string {
	return fmt.Sprintf("get_structure %v/%d, %v", i.Type, i.Arity, i.Reg)
}

func (i GetVariable) String() string {
	return fmt.Sprintf("get_variable %v, A%d", i.Reg, i.Arg)
}

func (i GetValue) String() string {
	return fmt.Sprintf("get_value %v, A%d", i.Reg, i.Arg)
}

func (i UnifyConstant) String() string {
	return fmt.Sprintf("unify_constant %v", i.Constant)
}

func (i UnifyVariable) String() string {
	return fmt.Sprintf("unify_variable %v", i.Addr)
}

func (i UnifyValue) String() string {
	return fmt.Sprintf("unify_value %v", i.Addr)
}

func (i UnifyVoid) String() string {
	return fmt.Sprintf("unify_void %d", i.NumVars)
}

func (i PutConstant) String() string {
	return fmt.Sprintf("put_constant %v, %s", i.Constant, i.Level.addr(i.Reg))
}

func (i PutList) String() string {
	return fmt.Sprintf("put_list %s", i.Level.addr(i.Reg))
}

func (i PutStructure) String() string {
	return fmt.Sprintf("put_structure %v/%d, %v", i.Type, i.Arity, i.Reg)
}

func (i PutVariable) String() string {
	return fmt.Sprintf("put_variable %v, A%d", i.Reg, i.Arg)
}

func (i PutValue) String() string {
	return fmt.Sprintf("put_value %v, A%d", i.Reg, i.Arg)
}

func (i SetConstant) String() string {
	return fmt.Sprintf("set_constant %v", i.Constant)
}

func (i SetVariable) String() string {
	return fmt.Sprintf("set_variable %v", i.Addr)
}

func (i SetValue) String() string {
	return fmt.Sprintf("set_value %v", i.Addr)
}

func (i SetVoid) String() string {
	return fmt.Sprintf("set_void %d", i.NumVars)
}
