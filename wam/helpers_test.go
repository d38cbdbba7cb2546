package wam_test

import (
	"github.com/brunokim/wamgen/dsl"
	"github.com/brunokim/wamgen/wam"
)

const (
	shallow = wam.Shallow
	deep    = wam.Deep
)

type (
	functor = wam.Functor
	reg     = wam.RegAddr
	stack   = wam.StackAddr
	watom   = wam.WAtom
	wint    = wam.WInt

	fact_instr  = wam.FactInstruction
	query_instr = wam.QueryInstruction

	put_structure  = wam.PutStructure
	put_variable   = wam.PutVariable
	put_value      = wam.PutValue
	put_constant   = wam.PutConstant
	put_list       = wam.PutList
	get_structure  = wam.GetStructure
	get_variable   = wam.GetVariable
	get_value      = wam.GetValue
	get_constant   = wam.GetConstant
	get_list       = wam.GetList
	set_variable   = wam.SetVariable
	set_value      = wam.SetValue
	set_constant   = wam.SetConstant
	set_void       = wam.SetVoid
	unify_variable = wam.UnifyVariable
	unify_value    = wam.UnifyValue
	unify_constant = wam.UnifyConstant
	unify_void     = wam.UnifyVoid
)

var (
	atom  = dsl.Atom
	int_  = dsl.Int
	comp  = dsl.Comp
	ilist = dsl.IList
	list  = dsl.List
	var_  = dsl.Var
)

func named(name string) wam.ClauseType {
	return wam.ClauseType{Name: name, Kind: wam.Named}
}

func head(instrs ...fact_instr) []fact_instr {
	return instrs
}

func goal(ct wam.ClauseType, arity int, instrs ...query_instr) wam.Goal {
	return wam.Goal{Type: ct, Arity: arity, Code: instrs}
}

func goals(gs ...wam.Goal) []wam.Goal {
	return gs
}
