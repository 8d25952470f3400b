package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommandRunsShell(t *testing.T) {
	out, _, err := runCmd(t, "add 2 Review PR\nadd 1 Fix build\ncomplete\nquit\n", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Added: [High] #0 Review PR")
	assert.Contains(t, out, "Completed: [Critical] #1 ~Fix build~")
}

func TestRootCommandLogLevel(t *testing.T) {
	_, errOut, err := runCmd(t, "add 3 Something\nquit\n", "--no-color", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "task lifecycle event")
	assert.Contains(t, errOut, `"event_type":"task.added"`)

	_, errOut, err = runCmd(t, "add 3 Something\nquit\n", "--no-color")
	require.NoError(t, err)
	assert.Empty(t, errOut, "default warn level should keep stderr quiet")
}

func TestRootCommandRejectsBadLogLevel(t *testing.T) {
	_, _, err := runCmd(t, "", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	_, _, err := runCmd(t, "", "extra")
	assert.Error(t, err)
}
