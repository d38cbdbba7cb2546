package wam

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/brunokim/wamgen/logic"
)

// Goal is the code that prepares the arguments for a single body term, and
// the predicate it calls.
type Goal struct {
	Type  ClauseType
	Arity int
	Code  []QueryInstruction
}

// Functor returns the called predicate.
func (g Goal) Functor() Functor {
	return Functor{g.Type.Name, g.Arity}
}

// Clause is the compiled form of a logic clause.
type Clause struct {
	Functor Functor
	// NumRegisters is the number of X registers used by the clause, including
	// argument registers.
	NumRegisters int
	// NumPermanent is the number of Y slots the clause's environment needs.
	NumPermanent int
	Head         []FactInstruction
	Goals        []Goal
}

// String returns a listing of the clause's code.
func (c *Clause) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%% %v\n", c.Functor)
	for _, instr := range c.Head {
		fmt.Fprintf(&b, "  %v\n", instr)
	}
	for _, goal := range c.Goals {
		for _, instr := range goal.Code {
			fmt.Fprintf(&b, "  %v\n", instr)
		}
		fmt.Fprintf(&b, "  call %v/%d\n", goal.Type, goal.Arity)
	}
	if len(c.Goals) == 0 {
		b.WriteString("  proceed\n")
	}
	return b.String()
}

// ---- Options

type options struct {
	logger       logrus.FieldLogger
	newAllocator NewAllocatorFunc
}

// Option configures a compilation.
type Option func(*options)

// WithLogger sets the logger that receives debug information for each
// compiled clause.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAllocator replaces the default allocation policy.
func WithAllocator(f NewAllocatorFunc) Option {
	return func(o *options) {
		o.newAllocator = f
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newOptions(opts []Option) *options {
	o := &options{newAllocator: NewAllocator}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	return o
}

// ---- Clause analysis

// Compute the permanent vars of a logic clause.
//
// A permanent var is a local var in a call that is referenced in more
// than one body term. They must be stored in the environment stack, or
// otherwise they may be overwritten if stored in a register, since a
// body term may use them in any ways.
func permanentVars(clause *logic.Clause) map[logic.Var]struct{} {
	perm := make(map[logic.Var]struct{})
	if len(clause.Body) < 2 {
		return perm
	}
	seen := make(map[logic.Var]struct{})
	// Vars in head are considered to be part of the first body term.
	for _, x := range logic.Vars(clause.Head) {
		seen[x] = struct{}{}
	}
	for _, x := range logic.Vars(clause.Body[0]) {
		seen[x] = struct{}{}
	}
	for _, c := range clause.Body[1:] {
		for _, x := range logic.Vars(c) {
			if _, ok := seen[x]; ok {
				perm[x] = struct{}{}
			} else {
				seen[x] = struct{}{}
			}
		}
	}
	delete(perm, logic.AnonymousVar)
	return perm
}

func numArgs(clause *logic.Clause) int {
	max := len(clause.Head.(*logic.Comp).Args)
	for _, term := range clause.Body {
		n := len(term.(*logic.Comp).Args)
		if n > max {
			max = n
		}
	}
	return max
}

// ---- Compilation

// compileCtx wraps all the state necessary to compile a single clause.
type compileCtx struct {
	alloc Allocator
	// Current address of each var seen so far.
	varAddr map[logic.Var]Addr
	// Registers of structures and lists, recorded by whoever visits them first.
	slots map[*TermRef]RegAddr
}

func newCompileCtx(alloc Allocator) *compileCtx {
	return &compileCtx{
		alloc:   alloc,
		varAddr: make(map[logic.Var]Addr),
		slots:   make(map[*TermRef]RegAddr),
	}
}

// Returns the register holding a compound term, allocating one if it's the
// first time the term is referenced.
//
// In a head, the parent references the term before it's visited; in a goal,
// the term is built before its parent references it.
func (ctx *compileCtx) slot(ref *TermRef) RegAddr {
	if addr, ok := ctx.slots[ref]; ok {
		return addr
	}
	addr := ctx.alloc.Temp()
	ctx.slots[ref] = addr
	return addr
}

func (ctx *compileCtx) newVar(x logic.Var, arg int) Addr {
	addr := ctx.alloc.Var(x, arg)
	ctx.varAddr[x] = addr
	return addr
}

// Moves a var out of X_k if writing to A_k would clobber it while it's still
// needed, returning its new home.
//
// Goals are built bottom-up, so only the direct subterms of argument k and the
// later arguments may still read X_k.
func (ctx *compileCtx) relocate(args []logic.Term, ref *TermRef, k int) (RegAddr, bool) {
	for x, addr := range ctx.varAddr {
		if addr != RegAddr(k) {
			continue
		}
		var needed bool
		for _, child := range ref.Args {
			needed = needed || child.Term == x
		}
		for _, arg := range args[k+1:] {
			needed = needed || logic.Occurs(x, arg)
		}
		if !needed {
			return 0, false
		}
		tmp := ctx.alloc.Temp()
		ctx.varAddr[x] = tmp
		return tmp, true
	}
	return 0, false
}

// Emits the instruction that refers to a subterm within a structure or list.
func subterm[I Instruction](ctx *compileCtx, t Target[I], code []I, ref *TermRef) []I {
	switch term := ref.Term.(type) {
	case logic.Var:
		if term == logic.AnonymousVar {
			return PushVoid(t, code)
		}
		if addr, ok := ctx.varAddr[term]; ok {
			return Push(t, code, t.SubtermToValue(addr))
		}
		return Push(t, code, t.SubtermToVariable(ctx.newVar(term, NoArg)))
	case logic.Atom, logic.Int:
		return Push(t, code, t.ConstantSubterm(toConstant(term)))
	case *logic.Comp, *logic.List:
		return Push(t, code, t.ClauseArgToInstr(ctx.slot(ref)))
	default:
		panic(fmt.Sprintf("wam.subterm: unhandled type %T (%v)", term, term))
	}
}

// Compiles the arguments of a clause head or goal with the given target.
//
// Each shallow occurrence is visited in argument order, no matter the
// traversal, so a counter is enough to tell their argument register.
func compileTarget[I Instruction](ctx *compileCtx, t Target[I], term *logic.Comp, isHead bool) []I {
	var code []I
	emit := func(instr I) {
		code = Push(t, code, instr)
	}
	// Goals write argument registers, that may hold a var from the head.
	write := func(ref *TermRef, k int) {
		if isHead {
			return
		}
		if tmp, ok := ctx.relocate(term.Args, ref, k); ok {
			emit(t.MoveToRegister(tmp, k))
		}
	}
	arg := 0
	it := t.Iter(term)
	for ref, ok := it.Next(); ok; ref, ok = it.Next() {
		if ref.IsRoot() {
			continue
		}
		lvl := ref.Level()
		var k int
		if lvl == Shallow {
			k = arg
			arg++
		}
		switch x := ref.Term.(type) {
		case logic.Var:
			if lvl == Deep {
				continue
			}
			if x == logic.AnonymousVar {
				if !isHead {
					write(ref, k)
					emit(t.ArgumentToVariable(ctx.alloc.Temp(), k))
				}
				continue
			}
			addr, seen := ctx.varAddr[x]
			if !seen {
				firstArg := NoArg
				if isHead {
					firstArg = k
				}
				addr = ctx.newVar(x, firstArg)
			}
			if addr == RegAddr(k) {
				// Already in place.
				continue
			}
			write(ref, k)
			if seen {
				emit(t.ArgumentToValue(addr, k))
			} else {
				emit(t.ArgumentToVariable(addr, k))
			}
		case logic.Atom, logic.Int:
			if lvl == Deep {
				continue
			}
			write(ref, k)
			emit(t.Constant(Shallow, toConstant(x), RegAddr(k)))
		case *logic.Comp:
			reg := RegAddr(k)
			if lvl == Deep {
				reg = ctx.slot(ref)
			} else {
				write(ref, k)
			}
			emit(t.Structure(Classify(x.Functor, len(x.Args)), len(x.Args), reg))
			for _, child := range ref.Args {
				code = subterm(ctx, t, code, child)
			}
		case *logic.List:
			reg := RegAddr(k)
			if lvl == Deep {
				reg = ctx.slot(ref)
			} else {
				write(ref, k)
			}
			emit(t.List(lvl, reg))
			for _, child := range ref.Args {
				code = subterm(ctx, t, code, child)
			}
		default:
			panic(fmt.Sprintf("wam.compileTarget: unhandled type %T (%v)", x, x))
		}
	}
	return code
}

// Compile compiles a single logic clause.
func Compile(clause *logic.Clause, opts ...Option) (*Clause, error) {
	o := newOptions(opts)
	return compile(clause, o)
}

func compile(clause *logic.Clause, o *options) (*Clause, error) {
	clause, err := clause.Normalize()
	if err != nil {
		return nil, err
	}
	head := clause.Head.(*logic.Comp)
	perm := permanentVars(clause)
	ctx := newCompileCtx(o.newAllocator(numArgs(clause), perm))
	c := &Clause{
		Functor:      toFunctor(head.Indicator()),
		NumPermanent: len(perm),
	}
	c.Head = compileTarget[FactInstruction](ctx, FactTarget{}, head, true)
	for _, term := range clause.Body {
		goal := term.(*logic.Comp)
		c.Goals = append(c.Goals, Goal{
			Type:  Classify(goal.Functor, len(goal.Args)),
			Arity: len(goal.Args),
			Code:  compileTarget[QueryInstruction](ctx, QueryTarget{}, goal, false),
		})
	}
	c.NumRegisters = ctx.alloc.NumRegisters()
	o.logger.WithFields(logrus.Fields{
		"functor":       c.Functor,
		"head":          len(c.Head),
		"goals":         len(c.Goals),
		"num_registers": c.NumRegisters,
		"num_permanent": c.NumPermanent,
	}).Debug("compiled clause")
	return c, nil
}

// CompileClauses compiles a list of clauses, in order, stopping at the first error.
func CompileClauses(clauses []*logic.Clause, opts ...Option) ([]*Clause, error) {
	o := newOptions(opts)
	cs := make([]*Clause, len(clauses))
	for i, clause := range clauses {
		c, err := compile(clause, o)
		if err != nil {
			o.logger.WithError(err).WithField("clause", i).Debug("compile failed")
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}
