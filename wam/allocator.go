package wam

import (
	"github.com/brunokim/wamgen/logic"
)

// NoArg is passed to Allocator.Var when a variable isn't first seen as a head argument.
const NoArg = -1

// Allocator decides where each variable of a clause lives.
//
// The compiler asks for an address only once per variable, and reuses the
// answer for all later occurrences, unless it has to move the variable out of
// an argument register.
type Allocator interface {
	// Var returns the address of a named var on its first occurrence. arg is
	// the head argument where it's first seen, or NoArg.
	Var(x logic.Var, arg int) Addr
	// Temp returns a fresh temporary register.
	Temp() RegAddr
	// NumRegisters returns the number of registers handed out so far,
	// including argument registers.
	NumRegisters() int
}

// NewAllocatorFunc creates an allocator for a clause whose widest argument list
// has numArgs terms.
type NewAllocatorFunc func(numArgs int, permanent map[logic.Var]struct{}) Allocator

type allocator struct {
	topReg    RegAddr
	numStack  int
	permanent map[logic.Var]struct{}
}

// NewAllocator returns the default allocation policy.
//
// Permanent vars are placed in sequential stack slots. A temporary var first
// seen as head argument k stays in register X_k. Everything else is placed in
// registers after the argument registers.
func NewAllocator(numArgs int, permanent map[logic.Var]struct{}) Allocator {
	return &allocator{topReg: RegAddr(numArgs), permanent: permanent}
}

func (a *allocator) Var(x logic.Var, arg int) Addr {
	if _, ok := a.permanent[x]; ok {
		addr := StackAddr(a.numStack)
		a.numStack++
		return addr
	}
	if arg != NoArg {
		return RegAddr(arg)
	}
	return a.Temp()
}

func (a *allocator) Temp() RegAddr {
	addr := a.topReg
	a.topReg++
	return addr
}

func (a *allocator) NumRegisters() int {
	return int(a.topReg)
}
