package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSatisfiable(t *testing.T) {
	stdin := strings.NewReader("p cnf 1 1\n1 0\n")
	var stdout, stderr bytes.Buffer

	code := run(nil, stdin, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "SATISFIABLE")
	assert.Contains(t, stdout.String(), "1")
}

func TestRunUnsatisfiable(t *testing.T) {
	stdin := strings.NewReader("1 0\n-1 0\n")
	var stdout, stderr bytes.Buffer

	code := run(nil, stdin, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "UNSATISFIABLE")
}

func TestRunTautologyWithNoClauses(t *testing.T) {
	stdin := strings.NewReader("1 -1 0\n")
	var stdout, stderr bytes.Buffer

	code := run(nil, stdin, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "TAUTOLOGY")
}

func TestRunEmptyInputIsBadUsage(t *testing.T) {
	stdin := strings.NewReader("")
	var stdout, stderr bytes.Buffer

	code := run(nil, stdin, &stdout, &stderr)

	assert.Equal(t, exitBadUsage, code)
	assert.Contains(t, stderr.String(), "you need to enter a system")
}

func TestRunBadTokenIsBadUsage(t *testing.T) {
	stdin := strings.NewReader("1 bogus 0\n")
	var stdout, stderr bytes.Buffer

	code := run(nil, stdin, &stdout, &stderr)

	assert.Equal(t, exitBadUsage, code)
}

func TestRunHelpFlagExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.NotEmpty(t, stdout.String())
}
