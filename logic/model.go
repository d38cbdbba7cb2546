// Package logic implements the term model consumed by the WAM code generator.
//
// A logic term can fall in one of three categories:
//
// * atomic: a term that represents an immutable value (atoms and ints).
//
// * variable: a term that represents an unbound, yet-to-be-resolved term.
//
// * complex: a term that contains other terms, recursively (comps and lists).
//
// A logic program is composed of clauses of the form 'head :- term1, term2.', that
// must be read as "head holds if term1 and term2 holds". A clause with no terms in
// the body is called a fact.
//
// Terms are immutable once built, so they may be shared freely between compilations.
package logic

import (
	"fmt"
	"strings"
)

// ---- Basic types

// Term is a representation of a logic term.
type Term interface {
	fmt.Stringer
	vars(seen map[Var]struct{}, xs []Var) []Var
	hasVar() bool
}

// Atom is an atomic term representing a symbol.
type Atom struct {
	// Name is the identifier for an atom.
	Name string
}

// Int is an atomic term representing an integer.
type Int struct {
	// Value is the (immutable) value of an int.
	Value int
}

// Var is a variable term.
type Var struct {
	// Name is the identifier for a var.
	Name string
}

// Comp is a complex term, representing an immutable compound term.
type Comp struct {
	// Functor is the primary identifier of a comp.
	Functor string
	// Args is the list of terms within this term.
	Args    []Term
	hasVar_ bool
}

// List is a complex term, representing a chain of list cells.
//
// The list [a, b|T] is made of two cells: the first has head 'a' and the rest
// of the list as tail, the second has head 'b' and tail T.
type List struct {
	// Terms are the heads of each cell in the chain.
	Terms []Term
	// Tail is the continuation of a list, which is usually another
	// list, the empty list, or an unbound var.
	Tail    Term
	hasVar_ bool
}

// Clause is the representation of a logic rule.
// Note that Clause is not a Term, so it can't be used within complex terms.
type Clause struct {
	// Head is the consequent of a clause. May be Atom or Comp.
	Head Term
	// Body is the antecedent of a clause. May be Atom, Var or Comp.
	Body []Term
}

// ---- Public vars

var (
	// AnonymousVar represents a variable to be ignored.
	AnonymousVar = NewVar("_")
	// EmptyList is an atom representing an empty list.
	EmptyList = Atom{"[]"}
)

// ---- Vars

// NewVar creates a new var.
//
// It panics if the name doesn't start with an uppercase letter or an underscore.
func NewVar(name string) Var {
	if !IsVar(name) {
		panic(fmt.Sprintf("NewVar: invalid name: %q", name))
	}
	return Var{name}
}

// ---- Compound terms

// NewComp creates a compound term.
func NewComp(functor string, terms ...Term) *Comp {
	var hasVar bool
	for _, term := range terms {
		if term.hasVar() {
			hasVar = true
			break
		}
	}
	return &Comp{Functor: functor, Args: terms, hasVar_: hasVar}
}

// Indicator is a notation for a comp, usually shown as functor/arity, e.g., f/2.
type Indicator struct {
	// Name is the compound term's functor.
	Name string
	// Arity is the compound term's number of args.
	Arity int
}

func (i Indicator) String() string {
	return fmt.Sprintf("%s/%d", i.Name, i.Arity)
}

// Indicator returns the functor's indicator.
func (c *Comp) Indicator() Indicator {
	return Indicator{c.Functor, len(c.Args)}
}

// ---- Lists

// NewList creates a List with the provided terms and EmptyList as tail.
func NewList(terms ...Term) Term {
	return NewIncompleteList(terms, EmptyList)
}

// NewIncompleteList creates a List with the provided terms and tail.
func NewIncompleteList(terms []Term, tail Term) Term {
	if len(terms) == 0 {
		return tail
	}
	if l, ok := tail.(*List); ok {
		tmp := make([]Term, len(terms)+len(l.Terms))
		copy(tmp, terms)
		copy(tmp[len(terms):], l.Terms)
		terms = tmp
		tail = l.Tail
	}
	var hasVar bool
	for _, term := range terms {
		if term.hasVar() {
			hasVar = true
			break
		}
	}
	if !hasVar {
		hasVar = tail.hasVar()
	}
	return &List{Terms: terms, Tail: tail, hasVar_: hasVar}
}

// Slice returns a new list starting from the n-th term, inclusive.
func (l *List) Slice(n int) Term {
	if n < 0 || n > len(l.Terms) {
		panic(fmt.Sprintf("(*List).Slice: invalid index %d", n))
	}
	if n == len(l.Terms) {
		return l.Tail
	}
	if !l.hasVar_ {
		return &List{Terms: l.Terms[n:], Tail: l.Tail, hasVar_: false}
	}
	return NewIncompleteList(l.Terms[n:], l.Tail)
}

// Cell returns the head and tail of the first list cell.
func (l *List) Cell() (head, tail Term) {
	return l.Terms[0], l.Slice(1)
}

// ---- Clauses

// NewClause returns a clause with the provided head and terms as body.
func NewClause(head Term, body ...Term) *Clause {
	return &Clause{Head: head, Body: body}
}

// ClauseNormalizeError contains data about an invalid clause.
type ClauseNormalizeError struct {
	// "head" or "body"
	TermLocation string
	Clause       *Clause
	Term         Term
}

func (err *ClauseNormalizeError) Error() string {
	if err.TermLocation == "head" {
		return fmt.Sprintf("invalid head term for clause %v: %v (must be atom or comp)", err.Clause, err.Term)
	}
	return fmt.Sprintf("invalid body term for clause %v: %v (must be atom, var or comp)", err.Clause, err.Term)
}

// Normalize transforms the clause to contain only comp terms.
//
// Atoms in the clause's head and body are converted to functors with 0 arity.
// Variables in the clause's body are converted to a 'call(X)' functor.
func (c *Clause) Normalize() (*Clause, error) {
	var head Term
	switch h := c.Head.(type) {
	case Atom:
		head = NewComp(h.Name)
	case *Comp:
		head = h
	default:
		return nil, &ClauseNormalizeError{"head", c, c.Head}
	}
	body := make([]Term, len(c.Body))
	for i, term := range c.Body {
		switch t := term.(type) {
		case Atom:
			body[i] = NewComp(t.Name)
		case Var:
			if t == AnonymousVar {
				return nil, &ClauseNormalizeError{"body", c, term}
			}
			body[i] = NewComp("call", t)
		case *Comp:
			body[i] = t
		default:
			return nil, &ClauseNormalizeError{"body", c, term}
		}
	}
	return NewClause(head, body...), nil
}

// ---- vars()

// Vars returns a set with all term variables, in insertion order.
func Vars(term Term) []Var {
	if !term.hasVar() {
		return nil
	}
	return term.vars(make(map[Var]struct{}), nil)
}

// Occurs returns whether x appears anywhere within term.
func Occurs(x Var, term Term) bool {
	for _, y := range Vars(term) {
		if x == y {
			return true
		}
	}
	return false
}

func (t Atom) vars(seen map[Var]struct{}, xs []Var) []Var { return xs }
func (t Int) vars(seen map[Var]struct{}, xs []Var) []Var  { return xs }

func (t Var) vars(seen map[Var]struct{}, xs []Var) []Var {
	if _, ok := seen[t]; ok {
		return xs
	}
	seen[t] = struct{}{}
	return append(xs, t)
}

func (t *Comp) vars(seen map[Var]struct{}, xs []Var) []Var {
	if !t.hasVar_ {
		return xs
	}
	for _, term := range t.Args {
		xs = term.vars(seen, xs)
	}
	return xs
}

func (t *List) vars(seen map[Var]struct{}, xs []Var) []Var {
	if !t.hasVar_ {
		return xs
	}
	for _, term := range t.Terms {
		xs = term.vars(seen, xs)
	}
	return t.Tail.vars(seen, xs)
}

// ---- hasVar()

func (t Atom) hasVar() bool  { return false }
func (t Int) hasVar() bool   { return false }
func (t Var) hasVar() bool   { return true }
func (t *Comp) hasVar() bool { return t.hasVar_ }
func (t *List) hasVar() bool { return t.hasVar_ }

// ---- Eq()

// Eq returns whether t1 and t2 are identical terms.
//
// Note that this only takes into account the structure of terms, not whether
// any binding may make them identical.
func Eq(t1, t2 Term) bool {
	switch u := t1.(type) {
	case Atom, Int, Var:
		return t1 == t2
	case *Comp:
		v, ok := t2.(*Comp)
		if !ok || u.Functor != v.Functor || len(u.Args) != len(v.Args) {
			return false
		}
		for i := range u.Args {
			if !Eq(u.Args[i], v.Args[i]) {
				return false
			}
		}
		return true
	case *List:
		v, ok := t2.(*List)
		if !ok {
			return false
		}
		h1, tail1 := u.Cell()
		h2, tail2 := v.Cell()
		return Eq(h1, h2) && Eq(tail1, tail2)
	default:
		panic(fmt.Sprintf("logic.Eq: unhandled type %T", t1))
	}
}

// ---- String()

func (t Atom) String() string {
	return FormatAtom(t.Name)
}

func (t Int) String() string {
	return fmt.Sprintf("%d", t.Value)
}

func (t Var) String() string {
	return t.Name
}

func (t *Comp) String() string {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", t.Functor, strings.Join(args, ", "))
}

func (t *List) String() string {
	terms := make([]string, len(t.Terms))
	for i, term := range t.Terms {
		terms[i] = term.String()
	}
	xs := strings.Join(terms, ", ")
	if t.Tail == EmptyList {
		return fmt.Sprintf("[%s]", xs)
	}
	return fmt.Sprintf("[%s|%v]", xs, t.Tail)
}

func (c *Clause) String() string {
	head := c.Head.String()
	if len(c.Body) == 0 {
		return head + "."
	}
	body := make([]string, len(c.Body))
	for i, comp := range c.Body {
		body[i] = comp.String()
	}
	return fmt.Sprintf("%s :-\n  %s.", head, strings.Join(body, ",\n  "))
}
