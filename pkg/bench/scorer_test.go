package bench

import (
	"errors"
	"testing"

	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/shearwater-labs/needle/pkg/engine"
	"github.com/shearwater-labs/needle/pkg/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scorerCases() []*caseset.Case {
	return []*caseset.Case{
		{Name: "one", Text: "abababab", Pattern: "abab", Expected: "0,2,4"},
		{Name: "two", Text: "hello world", Pattern: "xyz", Expected: ""},
	}
}

func TestScorer_AlwaysDeclines(t *testing.T) {
	// Declining every case must yield zero scored cases, not a crash.
	s := NewScorer(engine.DefaultRegistry())
	report, err := s.Score(selector.Decline{}, scorerCases())
	require.NoError(t, err)

	assert.Empty(t, report.Outcomes)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 0, report.Summary.Scored)
	assert.Equal(t, 2, report.Summary.Declined)
	assert.Zero(t, report.Summary.Accuracy)
	assert.Zero(t, report.Summary.MeanSaved)
}

func TestScorer_FixedSelector(t *testing.T) {
	s := NewScorer(engine.DefaultRegistry(), WithTrials(2))
	report, err := s.Score(selector.Fixed("kmp"), scorerCases())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.Scored)
	assert.Equal(t, 0, report.Summary.Declined)
	require.Len(t, report.Outcomes, 2)

	for _, o := range report.Outcomes {
		assert.Equal(t, "kmp", o.Chosen)
		assert.Equal(t, o.AnalysisTime+o.ChosenTime, o.TotalTime)
		assert.Equal(t, o.FastestTime-o.TotalTime, o.SavedOrLost)
		assert.Equal(t, o.ChoseFastest, o.Fastest == o.Chosen)

		// The chosen algorithm leads the measurement order.
		require.NotEmpty(t, o.Order)
		assert.Equal(t, "kmp", o.Order[0])
		assert.Len(t, o.Times, len(o.Order))

		// The fastest algorithm is one that was actually measured, and
		// no measured algorithm beat it.
		fastestTime, ok := o.Times[o.Fastest]
		require.True(t, ok)
		assert.Equal(t, o.FastestTime, fastestTime)
		for name, d := range o.Times {
			assert.GreaterOrEqual(t, d, o.FastestTime, "%s beat the reported fastest", name)
		}
	}

	assert.Equal(t, report.Summary.TotalSaved/2, report.Summary.MeanSaved)
}

func TestScorer_UnknownAlgorithmPropagates(t *testing.T) {
	s := NewScorer(engine.DefaultRegistry())
	_, err := s.Score(selector.Fixed("bogus"), scorerCases())
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrUnknownAlgorithm))
}

func TestScorer_UnscorableChoice(t *testing.T) {
	// The chosen engine faults, so its cases are excluded without failing
	// the run and without being counted as declined.
	reg := engine.NewRegistry(
		fakeDescriptor("crashy", func(text, pattern string) (engine.Offsets, error) {
			return nil, errors.New("boom")
		}),
		naiveDescriptor(),
	)

	s := NewScorer(reg)
	report, err := s.Score(selector.Fixed("crashy"), scorerCases())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Summary.Scored)
	assert.Equal(t, 0, report.Summary.Declined)
	assert.Equal(t, 2, report.Summary.Unscorable)
}

func TestScorer_UnimplementedAlternativesSkipped(t *testing.T) {
	reg := engine.NewRegistry(
		naiveDescriptor(),
		fakeDescriptor("unfinished", func(text, pattern string) (engine.Offsets, error) {
			return nil, engine.ErrNotImplemented
		}),
	)

	s := NewScorer(reg)
	report, err := s.Score(selector.Fixed("naive"), scorerCases())
	require.NoError(t, err)

	require.Len(t, report.Outcomes, 2)
	for _, o := range report.Outcomes {
		assert.Equal(t, []string{"naive"}, o.Order)
		assert.NotContains(t, o.Times, "unfinished")
		assert.True(t, o.ChoseFastest)
	}
	assert.Equal(t, 1.0, report.Summary.Accuracy)
}

func TestScorer_HeuristicEndToEnd(t *testing.T) {
	s := NewScorer(engine.DefaultRegistry(), WithTrials(2))
	report, err := s.Score(selector.Heuristic{}, scorerCases())
	require.NoError(t, err)

	assert.Equal(t, selector.Heuristic{}.StrategyDescription(), report.Strategy)
	assert.Equal(t, 2, report.Summary.Scored)
	assert.GreaterOrEqual(t, report.Summary.Accuracy, 0.0)
	assert.LessOrEqual(t, report.Summary.Accuracy, 1.0)
}
