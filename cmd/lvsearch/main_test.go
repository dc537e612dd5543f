package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cityYAML = `name: city
kind: graph
graph:
  directed: true
  start: A
  goal: D
  edges:
    - {from: A, to: B, weight: 1}
    - {from: A, to: C, weight: 4}
    - {from: B, to: C, weight: 2}
    - {from: B, to: D, weight: 6}
    - {from: C, to: D, weight: 3}
`

const mazeYAML = `name: maze
kind: grid
algorithm: astar
grid:
  connectivity: 8
  start: [0, 0]
  goal: [2, 2]
  cells:
    - [1, 1, 0]
    - [0, 1, 0]
    - [0, 1, 1]
`

func writeProblem(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestSolveFile(t *testing.T) {
	path := writeProblem(t, "city.yaml", cityYAML)
	var out bytes.Buffer
	require.NoError(t, solveFile(context.Background(), &out, path, searchFlags{}, nil))

	got := out.String()
	assert.Contains(t, got, "Algorithm: dijkstra\n")
	assert.Contains(t, got, "Outcome:   found\n")
	assert.Contains(t, got, "Cost:      6\n")
	assert.Contains(t, got, "Path:      A -> B -> C -> D\n")
}

func TestSolveFile_Overrides(t *testing.T) {
	path := writeProblem(t, "city.yaml", cityYAML)

	var out bytes.Buffer
	require.NoError(t, solveFile(context.Background(), &out, path, searchFlags{algorithm: "bfs"}, nil))
	assert.Contains(t, out.String(), "Path:      A -> B -> D\n")

	out.Reset()
	require.NoError(t, solveFile(context.Background(), &out, path, searchFlags{maxExpansions: 1}, nil))
	assert.Contains(t, out.String(), "Outcome:   budget-exhausted\n")
	assert.NotContains(t, out.String(), "Path:")

	err := solveFile(context.Background(), &out, path, searchFlags{algorithm: "dfs"}, nil)
	require.ErrorContains(t, err, "unknown algorithm")
	err = solveFile(context.Background(), &out, path, searchFlags{maxExpansions: -1}, nil)
	require.ErrorContains(t, err, "negative")
}

func TestSolveAll(t *testing.T) {
	paths := []string{
		writeProblem(t, "city.yaml", cityYAML),
		writeProblem(t, "maze.yaml", mazeYAML),
	}
	sums, err := solveAll(context.Background(), paths, 2, searchFlags{}, nil)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, "city", sums[0].Name)
	assert.Equal(t, "maze", sums[1].Name)
	assert.Equal(t, []string{"0,0", "1,1", "2,2"}, sums[1].Path)

	var out bytes.Buffer
	printTable(&out, paths, sums)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "FILE"))
	assert.Contains(t, lines[1], "found")

	_, err = solveAll(context.Background(), append(paths, "missing.yaml"), 0, searchFlags{}, nil)
	require.ErrorContains(t, err, "read problem")
}

func TestPrintTree(t *testing.T) {
	path := writeProblem(t, "city.yaml", cityYAML)
	var out bytes.Buffer
	require.NoError(t, printTree(context.Background(), &out, path, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"A", "0", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"D", "6", "C"}, strings.Fields(lines[4]))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", true)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")

	_, err = newLogger(&buf, "loud", true)
	require.Error(t, err)
}

func TestRootCommand_Solve(t *testing.T) {
	path := writeProblem(t, "city.yaml", cityYAML)
	metricsPath := filepath.Join(t.TempDir(), "search.prom")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"solve", "-f", path, "--algorithm", "astar", "--no-color", "--metrics-out", metricsPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Algorithm: astar\n")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvsearch_search_runs_total{label="astar",outcome="found"} 1`)
}
