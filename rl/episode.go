package rl

// Link is one observed transition step: the state the system was in
// and the action taken from it
type Link[ST Trait[ST], AT Trait[AT]] struct {
	State  State[ST]
	Action Action[AT]
}

func (l Link[ST, AT]) Equal(other Link[ST, AT]) bool {
	return l.State.Equal(other.State) && l.Action.Equal(other.Action)
}

func (l Link[ST, AT]) Less(other Link[ST, AT]) bool {
	return l.State.Less(other.State) && l.Action.Less(other.Action)
}

// Episode of an agent run as an ordered sequence of links.
// By convention the last link's state carries the terminal reward.
// Empty episodes are valid and learners treat them as no-ops.
type Episode[ST Trait[ST], AT Trait[AT]] struct {
	links []Link[ST, AT]
}

func NewEpisode[ST Trait[ST], AT Trait[AT]]() *Episode[ST, AT] {
	return &Episode[ST, AT]{
		links: make([]Link[ST, AT], 0),
	}
}

func (e *Episode[ST, AT]) Append(link Link[ST, AT]) {
	e.links = append(e.links, link)
}

func (e *Episode[ST, AT]) Len() int {
	return len(e.links)
}

func (e *Episode[ST, AT]) Get(i int) (Link[ST, AT], bool) {
	if i < 0 || i >= len(e.links) {
		return Link[ST, AT]{}, false
	}
	return e.links[i], true
}

func (e *Episode[ST, AT]) Last() (Link[ST, AT], bool) {
	if len(e.links) < 1 {
		return Link[ST, AT]{}, false
	}
	return e.links[len(e.links)-1], true
}

func (e *Episode[ST, AT]) Slice(from, to int) *Episode[ST, AT] {
	sliced := NewEpisode[ST, AT]()
	for i := from; i < to; i++ {
		sliced.Append(e.links[i])
	}
	return sliced
}
