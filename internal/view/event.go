package view

// Event is a discrete state transition produced by an input control.
type Event interface {
	event()
}

// SearchChanged carries the current text of the search input.
type SearchChanged struct {
	Text string
}

// Advance moves to the next page.
type Advance struct{}

// Retreat moves to the previous page.
type Retreat struct{}

func (SearchChanged) event() {}
func (Advance) event()       {}
func (Retreat) event()       {}

// Apply returns the state after ev. Group is the entity group being paged;
// moves past either end are rejected and leave the state unchanged.
func Apply[E Named](s State, group []E, ev Event) State {
	switch ev := ev.(type) {
	case SearchChanged:
		s.Search = ev.Text
		s.Page = 1
	case Advance:
		if s.Page < Pages(group, s) {
			s.Page++
		}
	case Retreat:
		if s.Page > 1 {
			s.Page--
		}
	}
	return s
}
