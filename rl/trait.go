package rl

// Trait is the contract a caller descriptor must satisfy to be usable
// as a state or action descriptor. The library never looks inside a
// descriptor: identity, ordering and indexing are delegated entirely
// to these three methods.
type Trait[T any] interface {
	// Hash indexes the descriptor in the tables.
	// Should be deterministic
	Hash() string
	// Equal reports whether two descriptors denote the same state/action
	Equal(T) bool
	// Less orders descriptors, used only for sorting
	Less(T) bool
}
