package rl

// Environment drives state transitions for an agent run. The library
// core never calls an environment; it exists so callers can plug the
// table and learners into a closed training loop.
type Environment[ST Trait[ST], AT Trait[AT]] interface {
	// Reset called at the start of each episode
	Reset() State[ST]
	// Actions possible from the state
	Actions(State[ST]) []Action[AT]
	// Step applies the action, returns the next state and whether it
	// is terminal
	Step(Action[AT]) (State[ST], bool)
}

// Selector chooses the next action among the candidates, typically
// consulting the table values. Exploration strategy lives entirely
// behind this interface, never in the learners.
type Selector[ST Trait[ST], AT Trait[AT]] interface {
	Select(step int, state State[ST], actions []Action[AT], table *Policy[ST, AT]) (Action[AT], bool)
}

// Learner mutates the table in place from a finished episode
type Learner[ST Trait[ST], AT Trait[AT]] interface {
	Learn(*Episode[ST, AT], *Policy[ST, AT])
}
