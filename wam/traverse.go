package wam

import (
	"fmt"

	"github.com/brunokim/wamgen/logic"
)

// TermRef is an occurrence of a term visited by a traversal.
//
// Args holds the occurrences of the term's children, which the same traversal
// visits (before or after this one, depending on the order). A compiler may key
// decisions on a child's *TermRef and find it again when the child is visited.
type TermRef struct {
	Term logic.Term
	// Depth is 0 for the root, 1 for its arguments, and so on.
	Depth int
	Args  []*TermRef
}

// Level returns the nesting level of the occurrence. The root and its arguments
// are Shallow, everything below them is Deep.
func (r *TermRef) Level() Level {
	if r.Depth <= 1 {
		return Shallow
	}
	return Deep
}

// IsRoot returns whether this is the occurrence a traversal started from.
func (r *TermRef) IsRoot() bool {
	return r.Depth == 0
}

func (r *TermRef) String() string {
	return fmt.Sprintf("%v@%d", r.Term, r.Depth)
}

// Create the ref of a term occurrence, with refs for its children.
func newTermRef(term logic.Term, depth int) *TermRef {
	ref := &TermRef{Term: term, Depth: depth}
	switch t := term.(type) {
	case logic.Atom, logic.Int, logic.Var:
	case *logic.Comp:
		ref.Args = make([]*TermRef, len(t.Args))
		for i, arg := range t.Args {
			ref.Args[i] = &TermRef{Term: arg, Depth: depth + 1}
		}
	case *logic.List:
		head, tail := t.Cell()
		ref.Args = []*TermRef{
			{Term: head, Depth: depth + 1},
			{Term: tail, Depth: depth + 1},
		}
	default:
		panic(fmt.Sprintf("wam.newTermRef: unhandled type %T (%v)", term, term))
	}
	return ref
}

// Fill the children refs of a ref that was created by its parent.
func expand(ref *TermRef) *TermRef {
	if ref.Args != nil {
		return ref
	}
	full := newTermRef(ref.Term, ref.Depth)
	ref.Args = full.Args
	return ref
}

// TermIterator yields term occurrences in a fixed order. It is finite and can't be
// restarted; a new traversal must be created to visit a term again.
type TermIterator interface {
	Next() (*TermRef, bool)
}

// ---- Breadth-first

// BreadthFirstIterator visits a term in level order, excluding the root.
type BreadthFirstIterator struct {
	queue []*TermRef
}

// BreadthFirst returns an iterator over the subterms of term in level order.
// The root itself is not visited: in a clause head it is the predicate, whose
// arguments are already in the argument registers.
func BreadthFirst(term logic.Term) *BreadthFirstIterator {
	root := newTermRef(term, 0)
	return &BreadthFirstIterator{queue: append([]*TermRef(nil), root.Args...)}
}

// Next returns the next subterm, or false if the traversal is done.
func (it *BreadthFirstIterator) Next() (*TermRef, bool) {
	if len(it.queue) == 0 {
		return nil, false
	}
	ref := expand(it.queue[0])
	it.queue[0] = nil
	it.queue = it.queue[1:]
	it.queue = append(it.queue, ref.Args...)
	return ref, true
}

// ---- Post-order

type postOrderFrame struct {
	ref  *TermRef
	next int
}

// PostOrderIterator visits a term's children from left to right before the term
// itself, including the root.
type PostOrderIterator struct {
	stack []postOrderFrame
}

// PostOrder returns an iterator over term and its subterms in post-order, so that
// every nested term is visited before the term that contains it.
func PostOrder(term logic.Term) *PostOrderIterator {
	root := newTermRef(term, 0)
	return &PostOrderIterator{stack: []postOrderFrame{{ref: root}}}
}

// Next returns the next subterm, or false if the traversal is done.
func (it *PostOrderIterator) Next() (*TermRef, bool) {
	for len(it.stack) > 0 {
		n := len(it.stack)
		top := &it.stack[n-1]
		if top.next < len(top.ref.Args) {
			child := expand(top.ref.Args[top.next])
			top.next++
			it.stack = append(it.stack, postOrderFrame{ref: child})
			continue
		}
		it.stack = it.stack[:n-1]
		return top.ref, true
	}
	return nil, false
}

// Collect drains an iterator into a slice.
func Collect(it TermIterator) []*TermRef {
	var refs []*TermRef
	for ref, ok := it.Next(); ok; ref, ok = it.Next() {
		refs = append(refs, ref)
	}
	return refs
}
