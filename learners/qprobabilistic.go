package learners

import (
	"github.com/tabrl/tabrl/rl"
	"github.com/tabrl/tabrl/util"
)

// successors maps a next-state hash to how often the transition to it
// has been observed
type successors map[string]uint64

// QProbabilistic is the frequency-based updater. It accumulates
// transition observations across every episode it is ever given and
// derives values from the empirical transition probabilities:
//
//	Q(s_t,a_t) = P * r_t + gamma * (max Q(s_{t+1}, a) * P)
//
// where P is the observed frequency of the transition divided by the
// number of distinct successors recorded for (s_t, a_t). Dividing by
// the distinct-successor count rather than the total observation
// count reproduces the behaviour of the original algorithm; see the
// known-quirk test before changing it.
//
// The memory only ever grows. Bounding it is the caller's problem.
type QProbabilistic[ST rl.Trait[ST], AT rl.Trait[AT]] struct {
	// discount rate
	Gamma float64
	// observation counts keyed by the joint (state, action) key
	memory map[string]successors
}

func NewQProbabilistic[ST rl.Trait[ST], AT rl.Trait[AT]](gamma float64) *QProbabilistic[ST, AT] {
	return &QProbabilistic[ST, AT]{
		Gamma:  gamma,
		memory: make(map[string]successors),
	}
}

// Learn runs two strict phases: first record every transition of the
// episode in the memory, then compute the values. Splitting the
// phases guarantees that every non-terminal step already has at least
// one recorded successor when its value is computed.
func (q *QProbabilistic[ST, AT]) Learn(episode *rl.Episode[ST, AT], table *rl.Policy[ST, AT]) {
	n := episode.Len()

	for i := 0; i < n-1; i++ {
		step, _ := episode.Get(i)
		next, _ := episode.Get(i + 1)
		key := util.JoinKey(step.State.Hash(), step.Action.Hash())
		succ, ok := q.memory[key]
		if !ok {
			succ = make(successors)
			q.memory[key] = succ
		}
		succ[next.State.Hash()]++
	}

	for i := 0; i < n; i++ {
		step, _ := episode.Get(i)
		if i < n-1 {
			next, _ := episode.Get(i + 1)
			succ := q.memory[util.JoinKey(step.State.Hash(), step.Action.Hash())]
			prob := float64(succ[next.State.Hash()]) / float64(len(succ))
			expectedReward := prob * step.State.Reward()
			nextBest := table.BestValue(next.State)
			table.Update(step.State, step.Action, expectedReward+q.Gamma*(nextBest*prob))
		} else {
			table.Update(step.State, step.Action, step.State.Reward())
		}
	}
}

// Transitions returns the number of distinct (state, action,
// next-state) triples observed so far. It never decreases.
func (q *QProbabilistic[ST, AT]) Transitions() int {
	total := 0
	for _, succ := range q.memory {
		total += len(succ)
	}
	return total
}
