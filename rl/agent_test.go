package rl

import "testing"

type slot int

func (s slot) Hash() string { return string(rune('0' + s)) }
func (s slot) Equal(o slot) bool { return s == o }
func (s slot) Less(o slot) bool { return s < o }

type advance string

func (a advance) Hash() string { return string(a) }
func (a advance) Equal(o advance) bool { return a == o }
func (a advance) Less(o advance) bool { return a < o }

// chainEnv is a deterministic corridor: one action, terminal at the end
type chainEnv struct {
	pos    int
	length int
	reward float64
}

var _ Environment[slot, advance] = &chainEnv{}

func (c *chainEnv) Reset() State[slot] {
	c.pos = 0
	return NewState(slot(0))
}

func (c *chainEnv) Actions(State[slot]) []Action[advance] {
	return []Action[advance]{NewAction(advance("fwd"))}
}

func (c *chainEnv) Step(Action[advance]) (State[slot], bool) {
	c.pos++
	if c.pos == c.length-1 {
		return NewTerminalState(c.reward, slot(c.pos)), true
	}
	return NewState(slot(c.pos)), false
}

// firstSelector always takes the first candidate
type firstSelector struct{}

func (firstSelector) Select(step int, state State[slot], actions []Action[advance], table *Policy[slot, advance]) (Action[advance], bool) {
	return actions[0], true
}

// recordingLearner captures the episodes the agent hands over
type recordingLearner struct {
	episodes []*Episode[slot, advance]
}

func (r *recordingLearner) Learn(episode *Episode[slot, advance], table *Policy[slot, advance]) {
	r.episodes = append(r.episodes, episode)
}

func TestAgentAssemblesEpisodes(t *testing.T) {
	learner := &recordingLearner{}
	agent := NewAgent(&AgentConfig[slot, advance]{
		Episodes:    2,
		Horizon:     10,
		Selector:    firstSelector{},
		Learner:     learner,
		Environment: &chainEnv{length: 3, reward: 9},
		Table:       NewPolicy[slot, advance](),
	})
	agent.Run()

	if len(learner.episodes) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(learner.episodes))
	}
	episode := learner.episodes[0]
	// two interior steps plus the closing terminal link
	if episode.Len() != 3 {
		t.Fatalf("expected episode of length 3, got %d", episode.Len())
	}
	last, _ := episode.Last()
	if last.State.Reward() != 9 {
		t.Errorf("expected terminal link to carry reward 9, got %f", last.State.Reward())
	}
	first, _ := episode.Get(0)
	if first.State.Reward() != 0 {
		t.Errorf("expected interior links to carry zero reward")
	}
}

func TestAgentHorizonCutsEpisodes(t *testing.T) {
	learner := &recordingLearner{}
	agent := NewAgent(&AgentConfig[slot, advance]{
		Episodes:    1,
		Horizon:     4,
		Selector:    firstSelector{},
		Learner:     learner,
		Environment: &chainEnv{length: 100, reward: 1},
		Table:       NewPolicy[slot, advance](),
	})
	agent.Run()

	episode := learner.episodes[0]
	if episode.Len() != 4 {
		t.Fatalf("expected horizon-cut episode of length 4, got %d", episode.Len())
	}
	last, _ := episode.Last()
	if last.State.Reward() != 0 {
		t.Errorf("expected no terminal reward when the horizon cuts the episode")
	}
}
