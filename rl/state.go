package rl

// State wraps a caller descriptor together with a scalar reward.
// The descriptor is copied in at construction and never aliased back.
// A zero reward marks an ordinary state, an assigned reward marks a
// terminal state carrying the observed ground truth.
type State[T Trait[T]] struct {
	trait  T
	reward float64
}

// NewState wraps a descriptor with a zero reward
func NewState[T Trait[T]](trait T) State[T] {
	return State[T]{trait: trait}
}

// NewTerminalState wraps a descriptor with the terminal reward
func NewTerminalState[T Trait[T]](reward float64, trait T) State[T] {
	return State[T]{trait: trait, reward: reward}
}

func (s State[T]) Trait() T {
	return s.trait
}

func (s State[T]) Reward() float64 {
	return s.reward
}

// Hash delegates to the descriptor. The reward plays no part in
// identity: the same descriptor observed with different rewards is
// the same state.
func (s State[T]) Hash() string {
	return s.trait.Hash()
}

func (s State[T]) Equal(other State[T]) bool {
	return s.trait.Equal(other.trait)
}

func (s State[T]) Less(other State[T]) bool {
	return s.trait.Less(other.trait)
}

// Action wraps a caller descriptor. Like State, the descriptor is
// copied in and identity delegates to it.
type Action[T Trait[T]] struct {
	trait T
}

func NewAction[T Trait[T]](trait T) Action[T] {
	return Action[T]{trait: trait}
}

func (a Action[T]) Trait() T {
	return a.trait
}

func (a Action[T]) Hash() string {
	return a.trait.Hash()
}

func (a Action[T]) Equal(other Action[T]) bool {
	return a.trait.Equal(other.trait)
}

func (a Action[T]) Less(other Action[T]) bool {
	return a.trait.Less(other.trait)
}
