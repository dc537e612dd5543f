package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

func TestStepper_MatchesRun(t *testing.T) {
	ctx := context.Background()
	run, err := search.New[string, int, int](fourNode("D")).Run(ctx)
	require.NoError(t, err)

	st, err := search.New[string, int, int](fourNode("D")).Stepper(ctx)
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Result()
	require.ErrorIs(t, err, search.ErrInProgress)

	var (
		states []string
		costs  []int
		goals  []bool
	)
	for exp := range st.All() {
		states = append(states, exp.State)
		costs = append(costs, exp.Cost)
		goals = append(goals, exp.Goal)
	}
	require.True(t, st.Done())
	assert.Equal(t, run.Tree().Order(), states)
	assert.Equal(t, []int{0, 1, 2, 3}, costs)
	assert.Equal(t, []bool{false, false, false, true}, goals)

	res, err := st.Result()
	require.NoError(t, err)
	assert.Equal(t, run.Path, res.Path)
	assert.Equal(t, run.Cost, res.Cost)
	assert.Equal(t, run.Stats.Expanded, res.Stats.Expanded)

	_, ok := st.Step()
	assert.False(t, ok, "a finished stepper stays finished")
}

func TestStepper_Expansion(t *testing.T) {
	st, err := search.New[string, int, int](fourNode("D")).Stepper(context.Background())
	require.NoError(t, err)

	exp, ok := st.Step()
	require.True(t, ok)
	assert.Equal(t, "A", exp.State)
	assert.Equal(t, 0, exp.Depth)
	assert.Equal(t, 2, exp.FrontierLen) // B and C queued

	exp, ok = st.Step()
	require.True(t, ok)
	assert.Equal(t, "B", exp.State)
	assert.Equal(t, 1, exp.Action)
	assert.Equal(t, 1, exp.Depth)
	assert.Equal(t, 1, exp.Priority)
	assert.False(t, st.Done())
}

func TestStepper_Close(t *testing.T) {
	var reports []search.Report
	st, err := search.New[string, int, int](fourNode("D"),
		search.WithReport(func(r search.Report) { reports = append(reports, r) }),
	).Stepper(context.Background())
	require.NoError(t, err)

	_, ok := st.Step()
	require.True(t, ok)
	st.Close()
	st.Close()

	require.True(t, st.Done())
	res, err := st.Result()
	require.NoError(t, err)
	assert.Equal(t, search.Cancelled, res.Outcome)
	assert.Equal(t, 1, res.Stats.Expanded)
	require.Len(t, reports, 1, "telemetry flushes once")
}

func TestStepper_EarlyBreak(t *testing.T) {
	st, err := search.New[string, int, int](fourNode("D")).Stepper(context.Background())
	require.NoError(t, err)

	for exp := range st.All() {
		if exp.State == "B" {
			break
		}
	}
	assert.False(t, st.Done())

	// resuming continues where the range stopped
	var rest []string
	for exp := range st.All() {
		rest = append(rest, exp.State)
	}
	assert.Equal(t, []string{"C", "D"}, rest)
}
