package learners

import "github.com/tabrl/tabrl/rl"

// QLearning is the deterministic temporal-difference updater:
//
//	Q(s_t,a_t) = Q(s_t,a_t) + alpha * (r_t + gamma * max Q(s_{t+1}, a) - Q(s_t,a_t))
//
// Alpha is the learning rate, Gamma the discount rate; both are fixed
// at construction.
type QLearning[ST rl.Trait[ST], AT rl.Trait[AT]] struct {
	// learning rate
	Alpha float64
	// discount rate
	Gamma float64
}

func NewQLearning[ST rl.Trait[ST], AT rl.Trait[AT]](alpha, gamma float64) *QLearning[ST, AT] {
	return &QLearning[ST, AT]{
		Alpha: alpha,
		Gamma: gamma,
	}
}

// Learn walks the episode in one forward sweep, writing the table
// after every step. The bootstrap term reads the table as it is at
// that step: if a state recurs later in the episode, the earlier step
// sees its old value. The reward in the update is the one attached to
// the current step's state. The last step writes its state's reward
// through unchanged.
func (q *QLearning[ST, AT]) Learn(episode *rl.Episode[ST, AT], table *rl.Policy[ST, AT]) {
	n := episode.Len()
	for i := 0; i < n; i++ {
		step, _ := episode.Get(i)
		if i < n-1 {
			next, _ := episode.Get(i + 1)
			cur := table.Value(step.State, step.Action)
			nextBest := table.BestValue(next.State)
			r := step.State.Reward()
			table.Update(step.State, step.Action, cur+q.Alpha*(r+q.Gamma*nextBest-cur))
		} else {
			table.Update(step.State, step.Action, step.State.Reward())
		}
	}
}
