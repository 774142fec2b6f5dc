package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStats(t *testing.T) {
	assert := assert.New(t)
	path := writeWords(t, "a\nb\nc\nd\ne\n")

	out, err := execute("stats", "--words", path, "--print")
	require.NoError(t, err)
	assert.Contains(out, "as loaded: size 5, height 4, balanced true")
	assert.Contains(out, `range: "a" .. "e"`)
	assert.Contains(out, "rebalanced: size 5, height 2, balanced true")
	assert.Contains(out, "| e\n| | d\nc\n| b\n| | a\n")
}

func TestRun(t *testing.T) {
	assert := assert.New(t)
	path := writeWords(t, "kiwi\napple\nfig\npear\nplum\nlime\n")

	out, err := execute("run", "--words", path, "--sample", "4", "--seed", "42", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(out, "4 lookups in 6 words")
	assert.Contains(out, "BST (rebalanced)")
}

func TestConfigFile(t *testing.T) {
	assert := assert.New(t)
	words := writeWords(t, "x\ny\n")
	cfg := filepath.Join(t.TempDir(), "bstdemo.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("words: "+words+"\nsample: 1\nseed: 9\n"), 0o644))

	out, err := execute("run", "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(out, "1 lookups in 2 words")
}

func TestMissingWords(t *testing.T) {
	_, err := execute("stats", "--words", filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadLogLevel(t *testing.T) {
	path := writeWords(t, "a\n")
	_, err := execute("stats", "--words", path, "--log-level", "loud")
	assert.Error(t, err)
}
