package logic_test

import (
	"github.com/brunokim/wamgen/dsl"
)

var (
	atom   = dsl.Atom
	clause = dsl.Clause
	comp   = dsl.Comp
	ilist  = dsl.IList
	int_   = dsl.Int
	list   = dsl.List
	var_   = dsl.Var
)
