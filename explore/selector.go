package explore

import (
	"math"
	"time"

	"github.com/tabrl/tabrl/rl"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Random picks uniformly among the candidate actions
type Random[ST rl.Trait[ST], AT rl.Trait[AT]] struct {
	rand *rand.Rand
}

func NewRandom[ST rl.Trait[ST], AT rl.Trait[AT]]() *Random[ST, AT] {
	return &Random[ST, AT]{
		rand: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (r *Random[ST, AT]) Select(step int, state rl.State[ST], actions []rl.Action[AT], table *rl.Policy[ST, AT]) (rl.Action[AT], bool) {
	if len(actions) == 0 {
		return rl.Action[AT]{}, false
	}
	return actions[r.rand.Intn(len(actions))], true
}

// EpsilonGreedy follows the table greedily and explores uniformly
// with probability Epsilon. Ties among candidates break towards the
// earlier one.
type EpsilonGreedy[ST rl.Trait[ST], AT rl.Trait[AT]] struct {
	Epsilon float64
	rand    *rand.Rand
}

func NewEpsilonGreedy[ST rl.Trait[ST], AT rl.Trait[AT]](epsilon float64) *EpsilonGreedy[ST, AT] {
	return &EpsilonGreedy[ST, AT]{
		Epsilon: epsilon,
		rand:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (e *EpsilonGreedy[ST, AT]) Select(step int, state rl.State[ST], actions []rl.Action[AT], table *rl.Policy[ST, AT]) (rl.Action[AT], bool) {
	if len(actions) == 0 {
		return rl.Action[AT]{}, false
	}
	if e.rand.Float64() < e.Epsilon {
		return actions[e.rand.Intn(len(actions))], true
	}
	best := actions[0]
	bestVal := table.Value(state, actions[0])
	for _, action := range actions[1:] {
		if val := table.Value(state, action); val > bestVal {
			best = action
			bestVal = val
		}
	}
	return best, true
}

// SoftMax samples an action with probability proportional to the
// exponential of its table value
type SoftMax[ST rl.Trait[ST], AT rl.Trait[AT]] struct{}

func NewSoftMax[ST rl.Trait[ST], AT rl.Trait[AT]]() *SoftMax[ST, AT] {
	return &SoftMax[ST, AT]{}
}

func (s *SoftMax[ST, AT]) Select(step int, state rl.State[ST], actions []rl.Action[AT], table *rl.Policy[ST, AT]) (rl.Action[AT], bool) {
	if len(actions) == 0 {
		return rl.Action[AT]{}, false
	}
	sum := float64(0)
	weights := make([]float64, len(actions))
	vals := make([]float64, len(actions))

	for i, action := range actions {
		val := table.Value(state, action)
		exp := math.Exp(val)
		vals[i] = exp
		sum += exp
	}

	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, nil).Take()
	if !ok {
		return rl.Action[AT]{}, false
	}
	return actions[i], true
}
