package learners

import (
	"testing"

	"github.com/tabrl/tabrl/rl"
)

func TestQProbabilisticTerminalPassThrough(t *testing.T) {
	table := rl.NewPolicy[cell, move]()
	learner := NewQProbabilistic[cell, move](0.9)

	episode := rl.NewEpisode[cell, move]()
	episode.Append(link(rl.NewTerminalState(7, cell("s0")), move("a0")))
	learner.Learn(episode, table)

	if got := table.Value(rl.NewState(cell("s0")), rl.NewAction(move("a0"))); got != 7 {
		t.Errorf("expected terminal pass-through value 7, got %f", got)
	}
	if learner.Transitions() != 0 {
		t.Errorf("a single-step episode must not record transitions, got %d", learner.Transitions())
	}
}

func TestQProbabilisticEmptyEpisode(t *testing.T) {
	table := rl.NewPolicy[cell, move]()
	learner := NewQProbabilistic[cell, move](0.9)

	learner.Learn(rl.NewEpisode[cell, move](), table)
	if table.Len() != 0 || learner.Transitions() != 0 {
		t.Errorf("expected empty episode to be a no-op")
	}
}

func TestQProbabilisticThreeSteps(t *testing.T) {
	table := rl.NewPolicy[cell, move]()
	learner := NewQProbabilistic[cell, move](0.9)

	episode := rl.NewEpisode[cell, move]()
	episode.Append(link(rl.NewState(cell("s0")), move("a0")))
	episode.Append(link(rl.NewState(cell("s1")), move("a1")))
	episode.Append(link(rl.NewTerminalState(8, cell("s2")), move("a2")))

	learner.Learn(episode, table)

	if learner.Transitions() != 2 {
		t.Errorf("expected 2 recorded transitions, got %d", learner.Transitions())
	}
	// one observed successor each, so both probabilities are 1; the
	// rewards of s0 and s1 are zero and s2 is unwritten when s1 is
	// computed, so both interior values stay 0
	if got := table.Value(rl.NewState(cell("s0")), rl.NewAction(move("a0"))); got != 0 {
		t.Errorf("expected 0 for s0/a0, got %f", got)
	}
	if got := table.Value(rl.NewState(cell("s1")), rl.NewAction(move("a1"))); got != 0 {
		t.Errorf("expected 0 for s1/a1, got %f", got)
	}
	if got := table.Value(rl.NewState(cell("s2")), rl.NewAction(move("a2"))); got != 8 {
		t.Errorf("expected terminal 8 for s2/a2, got %f", got)
	}

	// second pass: s1's best value is now known when s0 is computed
	learner.Learn(episode, table)
	bestS2 := table.BestValue(rl.NewState(cell("s2")))
	if bestS2 != 8 {
		t.Fatalf("expected best value 8 for s2, got %f", bestS2)
	}
	// probability stays 1 (2 observations over 1 distinct successor is
	// clamped by nothing, 2/1 with one successor seen twice)
	if got := table.Value(rl.NewState(cell("s1")), rl.NewAction(move("a1"))); !almostEqual(got, 0.9*8*2) {
		t.Errorf("expected %f for s1/a1 on the second pass, got %f", 0.9*8*2, got)
	}
}

// The denominator is the number of distinct successors, not the total
// observation count. With successors {s1: 2, s2: 1} the transition to
// s1 gets probability 2/2 = 1, not 2/3. Deliberately preserved.
func TestQProbabilisticDistinctSuccessorDenominator(t *testing.T) {
	table := rl.NewPolicy[cell, move]()
	learner := NewQProbabilistic[cell, move](0.5)

	toS1 := rl.NewEpisode[cell, move]()
	toS1.Append(link(rl.NewState(cell("s0")), move("a0")))
	toS1.Append(link(rl.NewTerminalState(4, cell("s1")), move("a1")))

	toS2 := rl.NewEpisode[cell, move]()
	toS2.Append(link(rl.NewState(cell("s0")), move("a0")))
	toS2.Append(link(rl.NewTerminalState(4, cell("s2")), move("a2")))

	learner.Learn(toS1, table)
	learner.Learn(toS2, table)
	learner.Learn(toS1, table)

	// memory for (s0,a0) is now {s1: 2, s2: 1}: probability 2/2 = 1,
	// expected reward 1*0, bootstrap 0.5 * (4 * 1)
	if got := table.Value(rl.NewState(cell("s0")), rl.NewAction(move("a0"))); !almostEqual(got, 2.0) {
		t.Errorf("expected 2.0 under the distinct-successor denominator, got %f", got)
	}
	if learner.Transitions() != 2 {
		t.Errorf("expected 2 distinct transitions, got %d", learner.Transitions())
	}
}

func TestQProbabilisticMemoryMonotonic(t *testing.T) {
	table := rl.NewPolicy[cell, move]()
	learner := NewQProbabilistic[cell, move](0.9)

	episodes := []*rl.Episode[cell, move]{}
	for _, target := range []cell{"s1", "s2", "s1", "s3"} {
		episode := rl.NewEpisode[cell, move]()
		episode.Append(link(rl.NewState(cell("s0")), move("a0")))
		episode.Append(link(rl.NewTerminalState(1, target), move("a1")))
		episodes = append(episodes, episode)
	}

	prev := 0
	for i, episode := range episodes {
		learner.Learn(episode, table)
		if got := learner.Transitions(); got < prev {
			t.Errorf("call %d: transitions decreased from %d to %d", i, prev, got)
		} else {
			prev = got
		}
	}
	if prev != 3 {
		t.Errorf("expected 3 distinct transitions at the end, got %d", prev)
	}
}
