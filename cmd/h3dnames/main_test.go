package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/forestrie/go-h3dnames/binser"
	"github.com/forestrie/go-h3dnames/patricia"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioNames = []string{"Head", "Hand_L", "Hand_R", "Hip"}

// runCmd runs the app with logging off and returns what it wrote.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"h3dnames", "--log-level", "NOOP"}, args...))
	return out.String(), err
}

// buildTable writes the scenario names and builds a table from them.
func buildTable(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	namesPath := filepath.Join(dir, "names.txt")
	tablePath := filepath.Join(dir, "names.bin")
	require.NoError(t, os.WriteFile(namesPath, []byte(strings.Join(scenarioNames, "\n")), 0o644))

	_, err := runCmd(t, "build", "-o", tablePath, namesPath)
	require.NoError(t, err)
	return tablePath
}

func scenarioTree(t *testing.T) *patricia.Tree {
	t.Helper()
	tree := patricia.New()
	for _, name := range scenarioNames {
		tree.Add(name)
	}
	return tree
}

func TestReadNames(t *testing.T) {
	got := slices.Collect(readNames([]byte("Head\r\nHand_L\n\nHand_R\nHip")))
	assert.Equal(t, []string{"Head", "Hand_L", "Hand_R", "Hip"}, got)
}

func TestBuildThenFind(t *testing.T) {
	tablePath := buildTable(t)

	data, err := os.ReadFile(tablePath)
	require.NoError(t, err)
	tree := patricia.New()
	require.NoError(t, binser.NewReader(data).Deserialize(tree))
	assert.Equal(t, scenarioNames, tree.Names())

	out, err := runCmd(t, "find", tablePath, "Hand_R")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = runCmd(t, "find", tablePath, "Foot")
	require.ErrorIs(t, err, patricia.ErrKeyNotFound)
}

func TestBuildRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	namesPath := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(namesPath, []byte("Head\nHip\nHead\n"), 0o644))

	_, err := runCmd(t, "build", "-o", filepath.Join(dir, "out.bin"), namesPath)
	require.ErrorIs(t, err, patricia.ErrDuplicateKey)
	assert.NoFileExists(t, filepath.Join(dir, "out.bin"))
}

func TestList(t *testing.T) {
	out, err := runCmd(t, "ls", buildTable(t))
	require.NoError(t, err)
	assert.Equal(t, "0\tHead\n1\tHand_L\n2\tHand_R\n3\tHip\n", out)
}

func TestNodes(t *testing.T) {
	tablePath := buildTable(t)
	want, err := scenarioTree(t).Nodes()
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		out, err := runCmd(t, "nodes", tablePath)
		require.NoError(t, err)
		assert.Equal(t, patricia.FormatNodes(want), out)
	})

	t.Run("cbor", func(t *testing.T) {
		out, err := runCmd(t, "nodes", "--cbor", tablePath)
		require.NoError(t, err)

		var got []patricia.Node
		require.NoError(t, cbor.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})
}

func TestTree(t *testing.T) {
	out, err := runCmd(t, "tree", buildTable(t))
	require.NoError(t, err)

	want, err := scenarioTree(t).Render()
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
	assert.True(t, strings.HasPrefix(out, "4 keys"), out)
	for i, name := range scenarioNames {
		assert.Contains(t, out, fmt.Sprintf("[%d] %q", i, name))
	}
}

func TestOffset(t *testing.T) {
	w := binser.NewWriter()
	w.WriteU32(0xdeadbeef)
	w.WriteU16(0xffff)
	require.NoError(t, w.WriteValue(scenarioTree(t)))
	tablePath := filepath.Join(t.TempDir(), "embedded.bin")
	require.NoError(t, os.WriteFile(tablePath, w.Bytes(), 0o644))

	out, err := runCmd(t, "ls", "--offset", "6", tablePath)
	require.NoError(t, err)
	assert.Equal(t, "0\tHead\n1\tHand_L\n2\tHand_R\n3\tHip\n", out)

	out, err = runCmd(t, "find", "--offset", "0x6", tablePath, "Hip")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = runCmd(t, "ls", tablePath)
	require.ErrorIs(t, err, patricia.ErrMalformedStream)

	_, err = runCmd(t, "ls", "--offset", "1000", tablePath)
	require.ErrorIs(t, err, binser.ErrBadSeek)
}
