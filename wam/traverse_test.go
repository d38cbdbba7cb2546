package wam_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brunokim/wamgen/logic"
	"github.com/brunokim/wamgen/wam"
)

type visit struct {
	Term  string
	Depth int
}

func visits(it wam.TermIterator) []visit {
	var vs []visit
	for _, ref := range wam.Collect(it) {
		vs = append(vs, visit{ref.Term.String(), ref.Depth})
	}
	return vs
}

func TestBreadthFirst(t *testing.T) {
	tests := []struct {
		term logic.Term
		want []visit
	}{
		{atom("a"), nil},
		{var_("X"), nil},
		{comp("f"), nil},
		{
			comp("p", comp("f", var_("X"), comp("g", atom("a"))), var_("Y")),
			[]visit{
				{"f(X, g(a))", 1},
				{"Y", 1},
				{"X", 2},
				{"g(a)", 2},
				{"a", 3},
			},
		},
		{
			comp("p", ilist(atom("a"), atom("b"), var_("T"))),
			[]visit{
				{"[a, b|T]", 1},
				{"a", 2},
				{"[b|T]", 2},
				{"b", 3},
				{"T", 3},
			},
		},
	}
	for _, test := range tests {
		got := visits(wam.BreadthFirst(test.term))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("BreadthFirst(%v): (-want, +got)%s", test.term, diff)
		}
	}
}

func TestPostOrder(t *testing.T) {
	tests := []struct {
		term logic.Term
		want []visit
	}{
		{atom("a"), []visit{{"a", 0}}},
		{var_("X"), []visit{{"X", 0}}},
		{
			comp("p", comp("f", var_("X"), comp("g", atom("a"))), var_("Y")),
			[]visit{
				{"X", 2},
				{"a", 3},
				{"g(a)", 2},
				{"f(X, g(a))", 1},
				{"Y", 1},
				{"p(f(X, g(a)), Y)", 0},
			},
		},
		{
			comp("p", list(atom("a"), atom("b"))),
			[]visit{
				{"a", 2},
				{"b", 3},
				{`"[]"`, 3},
				{"[b]", 2},
				{"[a, b]", 1},
				{"p([a, b])", 0},
			},
		},
	}
	for _, test := range tests {
		got := visits(wam.PostOrder(test.term))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("PostOrder(%v): (-want, +got)%s", test.term, diff)
		}
	}
}

func TestTermRef_Args(t *testing.T) {
	// Each ref's args are the same refs visited later by the traversal.
	term := comp("p", comp("f", comp("g", var_("X"))), var_("Y"))
	refs := wam.Collect(wam.BreadthFirst(term))
	visited := make(map[*wam.TermRef]bool)
	for _, ref := range refs {
		visited[ref] = true
	}
	for _, ref := range refs {
		for _, arg := range ref.Args {
			if !visited[arg] {
				t.Errorf("%v: arg %v is not visited", ref, arg)
			}
		}
	}
	if got := refs[0].Level(); got != wam.Shallow {
		t.Errorf("%v.Level() = %v, want shallow", refs[0], got)
	}
	if got := refs[len(refs)-1].Level(); got != wam.Deep {
		t.Errorf("%v.Level() = %v, want deep", refs[len(refs)-1], got)
	}
}

func TestIterator_Exhausted(t *testing.T) {
	its := []wam.TermIterator{
		wam.BreadthFirst(comp("p", atom("a"))),
		wam.PostOrder(comp("p", atom("a"))),
	}
	for _, it := range its {
		wam.Collect(it)
		if ref, ok := it.Next(); ok {
			t.Errorf("%T: got %v after exhaustion", it, ref)
		}
	}
}
