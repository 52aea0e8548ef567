package rl

import "encoding/json"

// StateRecord is the flat export shape of one table row: a state and
// the recorded actions with their values. A sequence of records fully
// describes a Policy and is what external stores consume and produce.
type StateRecord[ST Trait[ST], AT Trait[AT]] struct {
	State   State[ST]         `json:"state"`
	Actions []ActionValue[AT] `json:"actions"`
}

// Export flattens the table into records, states and actions in
// first-write order so repeated exports of the same table agree
func Export[ST Trait[ST], AT Trait[AT]](p *Policy[ST, AT]) []StateRecord[ST, AT] {
	records := make([]StateRecord[ST, AT], 0, p.Len())
	for _, state := range p.States() {
		records = append(records, StateRecord[ST, AT]{
			State:   state,
			Actions: p.Actions(state),
		})
	}
	return records
}

// Restore rebuilds a table from exported records
func Restore[ST Trait[ST], AT Trait[AT]](records []StateRecord[ST, AT]) *Policy[ST, AT] {
	p := NewPolicy[ST, AT]()
	for _, record := range records {
		for _, av := range record.Actions {
			p.Update(record.State, av.Action, av.Value)
		}
	}
	return p
}

type stateJSON[T Trait[T]] struct {
	Trait  T       `json:"trait"`
	Reward float64 `json:"reward,omitempty"`
}

func (s State[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON[T]{Trait: s.trait, Reward: s.reward})
}

func (s *State[T]) UnmarshalJSON(data []byte) error {
	var decoded stateJSON[T]
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	s.trait = decoded.Trait
	s.reward = decoded.Reward
	return nil
}

type actionJSON[T Trait[T]] struct {
	Trait T `json:"trait"`
}

func (a Action[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(actionJSON[T]{Trait: a.trait})
}

func (a *Action[T]) UnmarshalJSON(data []byte) error {
	var decoded actionJSON[T]
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	a.trait = decoded.Trait
	return nil
}
