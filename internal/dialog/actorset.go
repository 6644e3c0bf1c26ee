package dialog

import "sort"

// PlayerSet is a mutable set of player identities, used to address multi
// player flows (enqueue a dialog for a whole set, track who still has to
// answer a poll).
type PlayerSet struct {
	members map[PlayerID]struct{}
}

func NewPlayerSet(players ...PlayerID) *PlayerSet {
	s := &PlayerSet{members: make(map[PlayerID]struct{}, len(players))}
	for _, p := range players {
		s.members[p] = struct{}{}
	}
	return s
}

func (s *PlayerSet) Add(p PlayerID) {
	s.members[p] = struct{}{}
}

func (s *PlayerSet) Remove(p PlayerID) {
	delete(s.members, p)
}

func (s *PlayerSet) Contains(p PlayerID) bool {
	_, ok := s.members[p]
	return ok
}

func (s *PlayerSet) Len() int {
	return len(s.members)
}

// Players returns the members in stable sorted order.
func (s *PlayerSet) Players() []PlayerID {
	out := make([]PlayerID, 0, len(s.members))
	for p := range s.members {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Each visits the members in stable sorted order. The callback may mutate the
// set; the visit order is fixed up front.
func (s *PlayerSet) Each(fn func(PlayerID)) {
	for _, p := range s.Players() {
		fn(p)
	}
}

func (s *PlayerSet) Copy() *PlayerSet {
	c := NewPlayerSet()
	for p := range s.members {
		c.members[p] = struct{}{}
	}
	return c
}

// Union returns a new set with the members of both sets.
func (s *PlayerSet) Union(other *PlayerSet) *PlayerSet {
	c := s.Copy()
	for p := range other.members {
		c.members[p] = struct{}{}
	}
	return c
}

// Intersect returns a new set with the members present in both sets.
func (s *PlayerSet) Intersect(other *PlayerSet) *PlayerSet {
	c := NewPlayerSet()
	for p := range s.members {
		if other.Contains(p) {
			c.members[p] = struct{}{}
		}
	}
	return c
}
