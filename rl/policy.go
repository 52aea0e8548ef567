package rl

// ActionValue pairs a recorded action with its current value estimate
type ActionValue[AT Trait[AT]] struct {
	Action Action[AT] `json:"action"`
	Value  float64    `json:"value"`
}

type actionEntry[AT Trait[AT]] struct {
	action Action[AT]
	value  float64
}

type stateEntry[ST Trait[ST], AT Trait[AT]] struct {
	state   State[ST]
	entries map[string]*actionEntry[AT]
	// action hashes in first-write order, scanned for stable max
	order []string
}

// Policy is the learnt value table mapping a state to the values of
// the actions experienced from it. The table owns copies of every
// state and action written into it. Values are not computed here;
// learners (q-learning and friends) mutate the table through Update.
//
// The table is plain mutable state with no internal locking.
// Concurrent writers need external mutual exclusion.
type Policy[ST Trait[ST], AT Trait[AT]] struct {
	states map[string]*stateEntry[ST, AT]
	// state hashes in first-write order
	order []string
}

func NewPolicy[ST Trait[ST], AT Trait[AT]]() *Policy[ST, AT] {
	return &Policy[ST, AT]{
		states: make(map[string]*stateEntry[ST, AT]),
		order:  make([]string, 0),
	}
}

// Actions returns a snapshot of the actions experienced for the state
// with their values. The snapshot is a copy: mutating it does not
// touch the table, and reading an unknown state records nothing.
func (p *Policy[ST, AT]) Actions(state State[ST]) []ActionValue[AT] {
	result := make([]ActionValue[AT], 0)
	entry, ok := p.states[state.Hash()]
	if !ok {
		return result
	}
	for _, aHash := range entry.order {
		ae := entry.entries[aHash]
		result = append(result, ActionValue[AT]{Action: ae.action, Value: ae.value})
	}
	return result
}

// Update inserts or overwrites the value for the state-action pair
func (p *Policy[ST, AT]) Update(state State[ST], action Action[AT], value float64) {
	sHash := state.Hash()
	entry, ok := p.states[sHash]
	if !ok {
		entry = &stateEntry[ST, AT]{
			state:   state,
			entries: make(map[string]*actionEntry[AT]),
			order:   make([]string, 0),
		}
		p.states[sHash] = entry
		p.order = append(p.order, sHash)
	}
	aHash := action.Hash()
	if ae, ok := entry.entries[aHash]; ok {
		ae.value = value
		return
	}
	entry.entries[aHash] = &actionEntry[AT]{action: action, value: value}
	entry.order = append(entry.order, aHash)
}

// Value returns the stored value for the pair, or 0 when the pair has
// never been written. Reads do not create entries.
func (p *Policy[ST, AT]) Value(state State[ST], action Action[AT]) float64 {
	entry, ok := p.states[state.Hash()]
	if !ok {
		return 0
	}
	ae, ok := entry.entries[action.Hash()]
	if !ok {
		return 0
	}
	return ae.value
}

// BestValue returns the maximum value among the state's recorded
// actions, or 0 when none are recorded
func (p *Policy[ST, AT]) BestValue(state State[ST]) float64 {
	entry, ok := p.states[state.Hash()]
	if !ok || len(entry.order) == 0 {
		return 0
	}
	best := entry.entries[entry.order[0]].value
	for _, aHash := range entry.order[1:] {
		if val := entry.entries[aHash].value; val > best {
			best = val
		}
	}
	return best
}

// BestAction returns the action achieving BestValue for the state.
// The second return is false when no actions are recorded. Ties break
// towards the action written first.
func (p *Policy[ST, AT]) BestAction(state State[ST]) (Action[AT], bool) {
	entry, ok := p.states[state.Hash()]
	if !ok || len(entry.order) == 0 {
		return Action[AT]{}, false
	}
	bestEntry := entry.entries[entry.order[0]]
	for _, aHash := range entry.order[1:] {
		if ae := entry.entries[aHash]; ae.value > bestEntry.value {
			bestEntry = ae
		}
	}
	return bestEntry.action, true
}

// States returns the recorded states in first-write order
func (p *Policy[ST, AT]) States() []State[ST] {
	result := make([]State[ST], 0, len(p.order))
	for _, sHash := range p.order {
		result = append(result, p.states[sHash].state)
	}
	return result
}

// Len returns the number of recorded states
func (p *Policy[ST, AT]) Len() int {
	return len(p.order)
}
