package wam

import (
	"encoding/json"
)

func (a RegAddr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a StackAddr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (f Functor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (k CallKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (c WAtom) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c WInt) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type jsonGoal struct {
	Functor Functor
	Kind    CallKind
	Code    []string
}

type jsonClause struct {
	Functor      Functor
	NumRegisters int
	NumPermanent int
	Head         []string
	Goals        []jsonGoal
}

func instrTexts[I Instruction](code []I) []string {
	texts := make([]string, len(code))
	for i, instr := range code {
		texts[i] = instr.String()
	}
	return texts
}

// MarshalJSON encodes the clause with instructions in their text form.
func (c *Clause) MarshalJSON() ([]byte, error) {
	obj := jsonClause{
		Functor:      c.Functor,
		NumRegisters: c.NumRegisters,
		NumPermanent: c.NumPermanent,
		Head:         instrTexts(c.Head),
		Goals:        make([]jsonGoal, len(c.Goals)),
	}
	for i, goal := range c.Goals {
		obj.Goals[i] = jsonGoal{
			Functor: goal.Functor(),
			Kind:    goal.Type.Kind,
			Code:    instrTexts(goal.Code),
		}
	}
	return json.Marshal(obj)
}
