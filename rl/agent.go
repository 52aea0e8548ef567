package rl

type AgentConfig[ST Trait[ST], AT Trait[AT]] struct {
	Episodes    int
	Horizon     int
	Selector    Selector[ST, AT]
	Learner     Learner[ST, AT]
	Environment Environment[ST, AT]
	Table       *Policy[ST, AT]
}

// Agent runs episodes against the environment, assembling each one
// into an Episode and handing it to the learner together with the
// table. Single-threaded, synchronous.
type Agent[ST Trait[ST], AT Trait[AT]] struct {
	config *AgentConfig[ST, AT]
	// collects the episodes of the run
	// Only populated if the Run function is invoked
	episodes []*Episode[ST, AT]
}

// Instantiates a new Agent
func NewAgent[ST Trait[ST], AT Trait[AT]](config *AgentConfig[ST, AT]) *Agent[ST, AT] {
	return &Agent[ST, AT]{
		config:   config,
		episodes: make([]*Episode[ST, AT], config.Episodes),
	}
}

// Run the agent for the configured number of episodes and horizon
func (a *Agent[ST, AT]) Run() {
	for i := 0; i < a.config.Episodes; i++ {
		a.episodes[i] = a.runEpisode()
	}
}

func (a *Agent[ST, AT]) Episodes() []*Episode[ST, AT] {
	return a.episodes
}

// run a single episode and return it after the learner has consumed it
func (a *Agent[ST, AT]) runEpisode() *Episode[ST, AT] {
	state := a.config.Environment.Reset()
	episode := NewEpisode[ST, AT]()

	for step := 0; step < a.config.Horizon; step++ {
		actions := a.config.Environment.Actions(state)
		if len(actions) == 0 {
			break
		}
		action, ok := a.config.Selector.Select(step, state, actions, a.config.Table)
		if !ok {
			break
		}
		episode.Append(Link[ST, AT]{State: state, Action: action})

		nextState, terminal := a.config.Environment.Step(action)
		state = nextState
		if terminal {
			// close the episode on the terminal state, keeping the
			// action that led there
			episode.Append(Link[ST, AT]{State: state, Action: action})
			break
		}
	}
	a.config.Learner.Learn(episode, a.config.Table)

	return episode
}
