package wam

import (
	"fmt"

	"github.com/brunokim/wamgen/logic"
)

func toFunctor(indicator logic.Indicator) Functor {
	return Functor{Name: indicator.Name, Arity: indicator.Arity}
}

func toConstant(term logic.Term) Constant {
	switch t := term.(type) {
	case logic.Atom:
		return WAtom(t.Name)
	case logic.Int:
		return WInt(t.Value)
	default:
		panic(fmt.Sprintf("wam.toConstant: unhandled type %T (%v)", term, term))
	}
}

