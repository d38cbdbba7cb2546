package wam

import (
	"github.com/brunokim/wamgen/logic"
)

// Target is the set of instructions a compilation direction emits for each kind
// of subterm. The traversal and register bookkeeping in the compiler are written
// once against this interface, and FactTarget and QueryTarget supply the
// instructions for clause heads and goals respectively.
//
// Implementations don't validate their input, and never fail.
type Target[I Instruction] interface {
	// Iter returns the traversal in the order this direction emits code.
	Iter(term logic.Term) TermIterator

	// Constant checks or builds a constant in reg.
	Constant(lvl Level, c Constant, reg Addr) I
	// List checks or builds a list cell in reg.
	List(lvl Level, reg Addr) I
	// Structure checks or builds a structure in reg.
	Structure(ct ClauseType, arity int, reg Addr) I

	// Void skips n anonymous subterms.
	Void(n int) I
	// IsVoid returns whether instr is this direction's void instruction.
	IsVoid(instr I) bool
	// IncrementVoid adds one to the count of the void instruction in place.
	// It does nothing for other instructions.
	IncrementVoid(instr *I)

	// ConstantSubterm checks or builds a constant within a structure.
	ConstantSubterm(c Constant) I

	// ArgumentToVariable binds argument arg to a new variable in reg.
	ArgumentToVariable(reg Addr, arg int) I
	// ArgumentToValue binds argument arg to the known value in reg.
	ArgumentToValue(reg Addr, arg int) I
	// MoveToRegister copies argument arg into reg.
	MoveToRegister(reg Addr, arg int) I

	// SubtermToVariable binds a subterm to a new variable in reg.
	SubtermToVariable(reg Addr) I
	// SubtermToValue binds a subterm to the known value in reg.
	SubtermToValue(reg Addr) I

	// ClauseArgToInstr references a nested structure or list held in reg.
	ClauseArgToInstr(reg Addr) I
}

// ---- Fact target

// FactTarget emits the instructions that check a clause head against the
// call arguments.
type FactTarget struct{}

var _ Target[FactInstruction] = FactTarget{}

// Iter visits the head arguments before any nested term.
func (FactTarget) Iter(term logic.Term) TermIterator {
	return BreadthFirst(term)
}

func (FactTarget) Constant(lvl Level, c Constant, reg Addr) FactInstruction {
	return GetConstant{lvl, c, reg}
}

func (FactTarget) List(lvl Level, reg Addr) FactInstruction {
	return GetList{lvl, reg}
}

func (FactTarget) Structure(ct ClauseType, arity int, reg Addr) FactInstruction {
	return GetStructure{ct, arity, reg}
}

func (FactTarget) Void(n int) FactInstruction {
	return UnifyVoid{n}
}

func (FactTarget) IsVoid(instr FactInstruction) bool {
	_, ok := instr.(UnifyVoid)
	return ok
}

func (FactTarget) IncrementVoid(instr *FactInstruction) {
	if v, ok := (*instr).(UnifyVoid); ok {
		v.NumVars++
		*instr = v
	}
}

func (FactTarget) ConstantSubterm(c Constant) FactInstruction {
	return UnifyConstant{c}
}

func (FactTarget) ArgumentToVariable(reg Addr, arg int) FactInstruction {
	return GetVariable{reg, arg}
}

func (FactTarget) ArgumentToValue(reg Addr, arg int) FactInstruction {
	return GetValue{reg, arg}
}

// MoveToRegister is the same as ArgumentToVariable, since a head only receives
// values.
func (FactTarget) MoveToRegister(reg Addr, arg int) FactInstruction {
	return GetVariable{reg, arg}
}

func (FactTarget) SubtermToVariable(reg Addr) FactInstruction {
	return UnifyVariable{reg}
}

func (FactTarget) SubtermToValue(reg Addr) FactInstruction {
	return UnifyValue{reg}
}

// ClauseArgToInstr binds the nested term to a fresh register, that is checked
// later when the traversal reaches it.
func (FactTarget) ClauseArgToInstr(reg Addr) FactInstruction {
	return UnifyVariable{reg}
}

// ---- Query target

// QueryTarget emits the instructions that build the arguments of a goal.
type QueryTarget struct{}

var _ Target[QueryInstruction] = QueryTarget{}

// Iter visits nested terms before the terms that contain them.
func (QueryTarget) Iter(term logic.Term) TermIterator {
	return PostOrder(term)
}

func (QueryTarget) Constant(lvl Level, c Constant, reg Addr) QueryInstruction {
	return PutConstant{lvl, c, reg}
}

func (QueryTarget) List(lvl Level, reg Addr) QueryInstruction {
	return PutList{lvl, reg}
}

func (QueryTarget) Structure(ct ClauseType, arity int, reg Addr) QueryInstruction {
	return PutStructure{ct, arity, reg}
}

func (QueryTarget) Void(n int) QueryInstruction {
	return SetVoid{n}
}

func (QueryTarget) IsVoid(instr QueryInstruction) bool {
	_, ok := instr.(SetVoid)
	return ok
}

func (QueryTarget) IncrementVoid(instr *QueryInstruction) {
	if v, ok := (*instr).(SetVoid); ok {
		v.NumVars++
		*instr = v
	}
}

func (QueryTarget) ConstantSubterm(c Constant) QueryInstruction {
	return SetConstant{c}
}

func (QueryTarget) ArgumentToVariable(reg Addr, arg int) QueryInstruction {
	return PutVariable{reg, arg}
}

func (QueryTarget) ArgumentToValue(reg Addr, arg int) QueryInstruction {
	return PutValue{reg, arg}
}

// MoveToRegister saves argument arg into reg with get_variable, before the
// argument register is overwritten. The allocator guarantees that the argument
// register still holds the value.
func (QueryTarget) MoveToRegister(reg Addr, arg int) QueryInstruction {
	return GetVariable{reg, arg}
}

func (QueryTarget) SubtermToVariable(reg Addr) QueryInstruction {
	return SetVariable{reg}
}

func (QueryTarget) SubtermToValue(reg Addr) QueryInstruction {
	return SetValue{reg}
}

// ClauseArgToInstr references a nested term that was already built in reg.
func (QueryTarget) ClauseArgToInstr(reg Addr) QueryInstruction {
	return SetValue{reg}
}
