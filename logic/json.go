package logic

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/brunokim/wamgen/errors"
)

// JSON notation for terms:
//
//   "X", "_Tail"         -> Var
//   "a", "'X'"           -> Atom (single quotes force an atom)
//   12                   -> Int
//   ["a", "X"]           -> List with EmptyList tail
//   {"|": ["a", "T"]}    -> List whose last element is the tail
//   {"f": ["a", "X"]}    -> Comp
//
// A clause is either a bare term (a fact) or {"head": T, "body": [T, ...]},
// with no other keys.

// DecodeTerm decodes a single term in JSON notation.
func DecodeTerm(data []byte) (Term, error) {
	var v interface{}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errors.New("decode term: %v", err)
	}
	return fromJSON(v)
}

// DecodeClauses reads a stream of clauses in JSON notation until EOF.
func DecodeClauses(r io.Reader) ([]*Clause, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var clauses []*Clause
	for {
		var v interface{}
		err := dec.Decode(&v)
		if err == io.EOF {
			return clauses, nil
		}
		if err != nil {
			return nil, errors.New("decode clause #%d: %v", len(clauses)+1, err)
		}
		c, err := clauseFromJSON(v)
		if err != nil {
			return nil, errors.New("clause #%d: %v", len(clauses)+1, err)
		}
		clauses = append(clauses, c)
	}
}

// DecodeClause decodes a single clause in JSON notation.
func DecodeClause(data []byte) (*Clause, error) {
	clauses, err := DecodeClauses(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	if len(clauses) != 1 {
		return nil, errors.New("expected 1 clause, got %d", len(clauses))
	}
	return clauses[0], nil
}

func clauseFromJSON(v interface{}) (*Clause, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		head, err := fromJSON(v)
		if err != nil {
			return nil, err
		}
		return NewClause(head), nil
	}
	headV, hasHead := obj["head"]
	if !hasHead {
		head, err := fromJSON(v)
		if err != nil {
			return nil, err
		}
		return NewClause(head), nil
	}
	for key := range obj {
		if key != "head" && key != "body" {
			return nil, errors.New("unexpected key %q in clause, want only \"head\" and \"body\"", key)
		}
	}
	head, err := fromJSON(headV)
	if err != nil {
		return nil, errors.New("head: %v", err)
	}
	var body []Term
	if bodyV, ok := obj["body"]; ok {
		items, ok := bodyV.([]interface{})
		if !ok {
			return nil, errors.New("body must be an array, got %T", bodyV)
		}
		body, err = fromJSONs(items)
		if err != nil {
			return nil, errors.New("body: %v", err)
		}
	}
	return NewClause(head, body...), nil
}

func fromJSONs(items []interface{}) ([]Term, error) {
	terms := make([]Term, len(items))
	for i, item := range items {
		t, err := fromJSON(item)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	return terms, nil
}

func fromJSON(v interface{}) (Term, error) {
	switch x := v.(type) {
	case string:
		if n := len(x); n >= 2 && x[0] == '\'' && x[n-1] == '\'' {
			return Atom{x[1 : n-1]}, nil
		}
		if IsVar(x) {
			return NewVar(x), nil
		}
		return Atom{x}, nil
	case json.Number:
		i, err := strconv.Atoi(x.String())
		if err != nil {
			return nil, errors.New("invalid int %v: %v", x, err)
		}
		return Int{i}, nil
	case []interface{}:
		terms, err := fromJSONs(x)
		if err != nil {
			return nil, err
		}
		return NewList(terms...), nil
	case map[string]interface{}:
		if len(x) != 1 {
			return nil, errors.New("compound object must have a single key, got %d", len(x))
		}
		for functor, argsV := range x {
			items, ok := argsV.([]interface{})
			if !ok {
				return nil, errors.New("args of %q must be an array, got %T", functor, argsV)
			}
			args, err := fromJSONs(items)
			if err != nil {
				return nil, err
			}
			if functor != "|" {
				return NewComp(functor, args...), nil
			}
			if len(args) < 2 {
				return nil, errors.New("incomplete list needs at least a head and a tail, got %d terms", len(args))
			}
			n := len(args)
			return NewIncompleteList(args[:n-1], args[n-1]), nil
		}
	}
	return nil, errors.New("unexpected JSON value %v (%T)", v, v)
}
