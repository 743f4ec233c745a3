package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, file := range []string{"a/x.txt", "a/b/y.txt", "c.txt", ".git/HEAD"} {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}
	return root
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestRootBreadthFirst(t *testing.T) {
	require := require.New(t)

	stdout, stderr, err := run(t, makeTree(t))
	require.NoError(err)
	require.Equal([]string{".", "a", "c.txt", "a/b", "a/x.txt", "a/b/y.txt"}, lines(stdout))
	require.Contains(stderr, "walk finished")
}

func TestRootDepthFirstDirsOnly(t *testing.T) {
	require := require.New(t)

	stdout, _, err := run(t, "--order=dfs", "--dirs-only", "--hidden", "--log-level=error", makeTree(t))
	require.NoError(err)
	require.Equal([]string{".", ".git", "a", "a/b"}, lines(stdout))
}

func TestRootRequiresOneArg(t *testing.T) {
	_, _, err := run(t)
	require.Error(t, err)
}

func TestRootInvalidOrder(t *testing.T) {
	_, _, err := run(t, "--order=sideways", makeTree(t))
	require.ErrorContains(t, err, "unknown order")
}
