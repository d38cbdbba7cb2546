package logic_test

import (
	"strings"
	"testing"

	"github.com/brunokim/wamgen/logic"
	"github.com/brunokim/wamgen/test_helpers"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTerm(t *testing.T) {
	tests := []struct {
		text string
		want logic.Term
	}{
		{`"a"`, atom("a")},
		{`"X"`, var_("X")},
		{`"_"`, logic.AnonymousVar},
		{`"_Tail"`, var_("_Tail")},
		{`"'X'"`, atom("X")},
		{`"''"`, atom("")},
		{`42`, int_(42)},
		{`[]`, atom("[]")},
		{`["a", "X"]`, list(atom("a"), var_("X"))},
		{`{"|": ["a", "b", "T"]}`, ilist(atom("a"), atom("b"), var_("T"))},
		{`{"f": []}`, comp("f")},
		{`{"f": ["a", {"g": ["X"]}, 1]}`, comp("f", atom("a"), comp("g", var_("X")), int_(1))},
	}
	for _, test := range tests {
		got, err := logic.DecodeTerm([]byte(test.text))
		require.NoError(t, err, test.text)
		assert.Empty(t, cmp.Diff(test.want, got, test_helpers.IgnoreUnexported), test.text)
	}
}

func TestDecodeTerm_errors(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`1.5`, "invalid int"},
		{`true`, "unexpected JSON value"},
		{`null`, "unexpected JSON value"},
		{`{"f": "a"}`, "must be an array"},
		{`{"f": [], "g": []}`, "single key"},
		{`{"|": ["a"]}`, "at least a head and a tail"},
		{`{"f": [`, "decode term"},
	}
	for _, test := range tests {
		_, err := logic.DecodeTerm([]byte(test.text))
		if assert.Error(t, err, test.text) {
			assert.Contains(t, err.Error(), test.want, test.text)
		}
	}
}

func TestDecodeClauses(t *testing.T) {
	input := `
		{"nat": [0]}
		{"head": {"nat": [{"s": ["X"]}]}, "body": [{"nat": ["X"]}]}
		"halt"
	`
	clauses, err := logic.DecodeClauses(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, clauses, 3)
	assert.Equal(t, "nat(0).", clauses[0].String())
	assert.Equal(t, "nat(s(X)) :-\n  nat(X).", clauses[1].String())
	assert.Equal(t, "halt.", clauses[2].String())
}

func TestDecodeClauses_error(t *testing.T) {
	_, err := logic.DecodeClauses(strings.NewReader(`{"a": []} {"head": {"b": []}, "body": "c"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clause #2")
}

func TestDecodeClause_unknownKey(t *testing.T) {
	_, err := logic.DecodeClause([]byte(`{"head": {"p": ["X"]}, "boby": [{"q": ["X"]}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected key "boby"`)
}

func TestDecodeClause_count(t *testing.T) {
	_, err := logic.DecodeClause([]byte(`"a" "b"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1 clause, got 2")
}
