package wam

import (
	"fmt"
)

// Push appends instr to code, merging runs of void instructions.
//
// If both instr and the last instruction in code are voids, the last one has its
// count incremented and instr is discarded. Only the last instruction is looked
// at, so runs separated by other instructions are never merged.
//
// Voids must enter the sequence with a count of 1, or Push panics.
func Push[I Instruction](t Target[I], code []I, instr I) []I {
	if !t.IsVoid(instr) {
		return append(code, instr)
	}
	if n := numVoids(instr); n != 1 {
		panic(fmt.Sprintf("wam.Push: void instruction with count %d: %v", n, instr))
	}
	if n := len(code); n > 0 && t.IsVoid(code[n-1]) {
		t.IncrementVoid(&code[n-1])
		return code
	}
	return append(code, instr)
}

// PushVoid appends a single anonymous subterm to code.
func PushVoid[I Instruction](t Target[I], code []I) []I {
	return Push(t, code, t.Void(1))
}

func numVoids(instr Instruction) int {
	switch i := instr.(type) {
	case UnifyVoid:
		return i.NumVars
	case SetVoid:
		return i.NumVars
	}
	return 0
}
