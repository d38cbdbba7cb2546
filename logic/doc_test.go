package logic_test

import (
	"fmt"

	. "github.com/brunokim/wamgen/logic"
)

func ExampleAtom() {
	fmt.Println(Atom{"a"}, Atom{"space-> <-"}, Atom{"Upper"})
	// Output: a "space-> <-" "Upper"
}

func ExampleClause_Normalize() {
	clause1 := NewClause(Atom{"p"}, NewComp("f", NewVar("X")), Atom{"q"}, NewVar("Y"))
	clause2, err := clause1.Normalize()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(clause1)
	fmt.Println(clause2)
	// Output: p :-
	//   f(X),
	//   q,
	//   Y.
	// p() :-
	//   f(X),
	//   q(),
	//   call(Y).
}

func ExampleDecodeClause() {
	for _, text := range []string{
		`{"head": {"app": [[], "L", "L"]}}`,
		`{"head": {"app": [{"|": ["H", "T"]}, "L", {"|": ["H", "R"]}]},
		  "body": [{"app": ["T", "L", "R"]}]}`,
	} {
		c, err := DecodeClause([]byte(text))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(c)
	}
	// Output: app("[]", L, L).
	// app([H|T], L, [H|R]) :-
	//   app(T, L, R).
}
