/*
File    : monkeymix/cmd/monkeymix/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "program.mm")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunFile_Success(t *testing.T) {
	path := writeSource(t, `
	let add = fn(x, y) { x + y };
	add(2, 3);
	`)
	assert.NoError(t, runFile(path))
}

func TestRunFile_ParseError(t *testing.T) {
	path := writeSource(t, `let = 5;`)
	assert.Error(t, runFile(path))
}

func TestRunFile_RuntimeError(t *testing.T) {
	path := writeSource(t, `5 / 0`)
	assert.Error(t, runFile(path))
}

func TestRunFile_MissingFile(t *testing.T) {
	assert.Error(t, runFile(filepath.Join(t.TempDir(), "missing.mm")))
}

func TestNewRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, Version, cmd.Version)
	assert.NotNil(t, cmd.RunE)
}
