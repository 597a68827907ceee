package bench

import (
	"errors"
	"time"

	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/shearwater-labs/needle/pkg/engine"
	"github.com/shearwater-labs/needle/pkg/selector"
)

// Outcome grades one selector decision against the measured ground truth for
// a single case. Read-only after construction.
type Outcome struct {
	// Case is the name of the scored case.
	Case string

	// Chosen is the algorithm the selector named.
	Chosen string

	// AnalysisTime is the mean cost of the decision itself.
	AnalysisTime time.Duration

	// ChosenTime is the chosen algorithm's mean execution time.
	ChosenTime time.Duration

	// TotalTime is AnalysisTime + ChosenTime, the real cost of trusting
	// the selector.
	TotalTime time.Duration

	// Times maps each measured algorithm to its mean execution time.
	// Algorithms that faulted or are unimplemented are absent.
	Times map[string]time.Duration

	// Order lists the keys of Times in measurement order: the chosen
	// algorithm first, then the rest in registration order.
	Order []string

	// Fastest is the empirically fastest algorithm, ties broken by
	// measurement order.
	Fastest string

	// FastestTime is Fastest's mean execution time.
	FastestTime time.Duration

	// SavedOrLost is FastestTime - TotalTime: positive when the
	// selector's pick beat running everything and keeping the minimum,
	// negative when it cost more.
	SavedOrLost time.Duration

	// ChoseFastest reports whether Chosen == Fastest.
	ChoseFastest bool
}

// Summary aggregates outcomes across a case set.
type Summary struct {
	// Total is the number of cases presented to the selector.
	Total int
	// Scored is the number of cases that produced an Outcome.
	Scored int
	// Declined counts cases the selector opted out of. Not failures.
	Declined int
	// Unscorable counts cases whose chosen algorithm failed to run.
	Unscorable int
	// Correct counts scored cases where the choice was the fastest.
	Correct int
	// Accuracy is Correct/Scored, 0 when nothing was scored.
	Accuracy float64
	// TotalSaved is the sum of SavedOrLost over scored cases.
	TotalSaved time.Duration
	// MeanSaved is TotalSaved/Scored, 0 when nothing was scored.
	MeanSaved time.Duration
}

// SelectionReport is the scorer's full result for one selector run.
type SelectionReport struct {
	Strategy string
	Outcomes []Outcome
	Summary  Summary
}

// Scorer compares selector choices against measured per-algorithm timings.
type Scorer struct {
	registry *engine.Registry
	trials   int
}

// NewScorer creates a scorer over the given registry.
func NewScorer(reg *engine.Registry, opts ...Option) *Scorer {
	s := newSettings(opts...)
	return &Scorer{registry: reg, trials: s.trials}
}

// Sentinel results of scoreCase. Declining is the selector's prerogative;
// unscorable means the chosen algorithm could not be measured.
var (
	errDeclined   = errors.New("selector declined")
	errUnscorable = errors.New("chosen algorithm failed")
)

// Score grades the selector on every case. Only an unknown algorithm name
// from the selector aborts the run; everything execution-related is
// contained per case.
func (s *Scorer) Score(sel selector.Selector, cases []*caseset.Case) (*SelectionReport, error) {
	report := &SelectionReport{Strategy: sel.StrategyDescription()}
	report.Summary.Total = len(cases)

	for _, c := range cases {
		outcome, err := s.scoreCase(sel, c)
		switch {
		case errors.Is(err, errDeclined):
			report.Summary.Declined++
			continue
		case errors.Is(err, errUnscorable):
			report.Summary.Unscorable++
			continue
		case err != nil:
			return nil, err
		}

		report.Outcomes = append(report.Outcomes, *outcome)
		report.Summary.Scored++
		if outcome.ChoseFastest {
			report.Summary.Correct++
		}
		report.Summary.TotalSaved += outcome.SavedOrLost
	}

	if report.Summary.Scored > 0 {
		report.Summary.Accuracy = float64(report.Summary.Correct) / float64(report.Summary.Scored)
		report.Summary.MeanSaved = report.Summary.TotalSaved / time.Duration(report.Summary.Scored)
	}
	return report, nil
}

// scoreCase grades one case: time the decision, measure the chosen
// algorithm, measure every alternative, find the empirical minimum.
func (s *Scorer) scoreCase(sel selector.Selector, c *caseset.Case) (*Outcome, error) {
	// The decision itself is timed over the same trial count as the
	// algorithms; its cost counts against the selector.
	var chosen string
	var ok bool
	var total time.Duration
	for i := 0; i < s.trials; i++ {
		start := time.Now()
		chosen, ok = sel.Choose(c.Text, c.Pattern)
		total += time.Since(start)
	}
	analysis := total / time.Duration(s.trials)

	if !ok {
		return nil, errDeclined
	}

	// An unknown name is a configuration error and propagates.
	eng, err := s.registry.New(chosen)
	if err != nil {
		return nil, err
	}
	chosenTime, err := s.timeEngine(eng, c)
	if err != nil {
		return nil, errUnscorable
	}

	outcome := &Outcome{
		Case:         c.Name,
		Chosen:       chosen,
		AnalysisTime: analysis,
		ChosenTime:   chosenTime,
		TotalTime:    analysis + chosenTime,
		Times:        map[string]time.Duration{chosen: chosenTime},
		Order:        []string{chosen},
	}

	// Measure the alternatives. The fastest candidate starts as the
	// chosen algorithm and is only displaced by a strictly smaller mean,
	// which gives the first-seen tie-break in measurement order.
	fastest, fastestTime := chosen, chosenTime
	for _, d := range s.registry.Descriptors() {
		if d.Name == chosen {
			continue
		}
		avg, err := s.timeEngine(d.New(), c)
		if err != nil {
			// Unimplemented or faulting engines drop out of the
			// comparison.
			continue
		}
		outcome.Times[d.Name] = avg
		outcome.Order = append(outcome.Order, d.Name)
		if avg < fastestTime {
			fastest, fastestTime = d.Name, avg
		}
	}

	outcome.Fastest = fastest
	outcome.FastestTime = fastestTime
	outcome.SavedOrLost = fastestTime - outcome.TotalTime
	outcome.ChoseFastest = fastest == chosen
	return outcome, nil
}

// timeEngine measures one engine on one case: untimed warm-up, then the mean
// of the timed runs.
func (s *Scorer) timeEngine(eng engine.Engine, c *caseset.Case) (time.Duration, error) {
	if _, err := solve(eng, c.Text, c.Pattern); err != nil {
		return 0, err
	}

	var total time.Duration
	for i := 0; i < s.trials; i++ {
		start := time.Now()
		if _, err := solve(eng, c.Text, c.Pattern); err != nil {
			return 0, err
		}
		total += time.Since(start)
	}
	return total / time.Duration(s.trials), nil
}
