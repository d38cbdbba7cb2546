package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunokim/wamgen/test_helpers"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const natClauses = `
{"nat": [0]}
{"head": {"nat": [{"s": ["X"]}]}, "body": [{"nat": ["X"]}]}
`

const natListing = `
    % nat/1
      get_constant 0, A0
      proceed
    % nat/1
      get_structure s/1, X0
      unify_variable X1
      put_value X1, A0
      call nat/1`

func TestCompileCmd(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "nat.json")
	require.NoError(t, os.WriteFile(filename, []byte(natClauses), 0o644))

	stdout, _, err := run(t, "", "compile", filename)
	require.NoError(t, err)
	assert.Equal(t, test_helpers.Dedent(natListing)+"\n", stdout)
}

func TestCompileCmd_Stdin(t *testing.T) {
	stdout, _, err := run(t, natClauses, "compile")
	require.NoError(t, err)
	assert.Equal(t, test_helpers.Dedent(natListing)+"\n", stdout)
}

func TestCompileCmd_JSON(t *testing.T) {
	stdout, _, err := run(t, natClauses, "compile", "--format", "json")
	require.NoError(t, err)

	var got []struct {
		Functor      string
		NumRegisters int
		Head         []string
		Goals        []struct {
			Functor string
			Kind    string
			Code    []string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "nat/1", got[0].Functor)
	assert.Equal(t, []string{"get_constant 0, A0"}, got[0].Head)
	assert.Empty(t, got[0].Goals)
	assert.Equal(t, 2, got[1].NumRegisters)
	require.Len(t, got[1].Goals, 1)
	assert.Equal(t, "named", got[1].Goals[0].Kind)
	assert.Equal(t, []string{"put_value X1, A0"}, got[1].Goals[0].Code)
}

func TestCompileCmd_Verbose(t *testing.T) {
	_, stderr, err := run(t, natClauses, "compile", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "compiled clause")
	assert.Contains(t, stderr, "functor=nat/1")
}

func TestCompileCmd_Errors(t *testing.T) {
	_, _, err := run(t, natClauses, "compile", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")

	_, _, err = run(t, `{"nat": [0]} [1, 2`, "compile")
	assert.ErrorContains(t, err, "clause #2")

	_, _, err = run(t, `1`, "compile")
	assert.ErrorContains(t, err, "invalid head term")

	_, _, err = run(t, "", "compile", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReplCmd(t *testing.T) {
	input := strings.Join([]string{
		`{"head": {"p": ["X", "Y"]}, "body": [{"q": ["Y", "X"]}]}`,
		``,
		`{"p": [`,
		`{"r": [{"f": ["_", "_"]}]}`,
	}, "\n")
	stdout, _, err := run(t, input, "repl")
	require.NoError(t, err)

	want := `
        % p/2
          get_variable X2, A0
          put_value X1, A0
          put_value X2, A1
          call q/2
        error: decode clause #1: unexpected EOF
        % r/1
          get_structure f/2, X0
          unify_void 2
          proceed`
	assert.Equal(t, test_helpers.Dedent(want)+"\n", stdout)
}

func TestReplCmd_LongLine(t *testing.T) {
	long := `"` + strings.Repeat("a", 1<<17)
	input := long + "\n" + `{"nat": [0]}` + "\n"
	stdout, _, err := run(t, input, "repl")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "error: decode clause #1"), lines[0])
	assert.Equal(t, []string{"% nat/1", "  get_constant 0, A0", "  proceed"}, lines[1:])
}
