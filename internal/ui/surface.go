package ui

import (
	"github.com/five82/roster/internal/render"
	"github.com/five82/roster/internal/view"
)

// section is the terminal copy of one card area.
type section struct {
	render.Section
	shown   bool
	visible []bool
}

// visibleCards returns the cards currently shown, in mount order.
func (s section) visibleCards() []render.Fragment {
	var out []render.Fragment
	for i, card := range s.Cards {
		if i < len(s.visible) && s.visible[i] {
			out = append(out, card)
		}
	}
	return out
}

// empty reports whether the section has nothing to draw.
func (s section) empty() bool {
	return s.Title == "" && len(s.Cards) == 0 && s.Message == ""
}

// surface implements render.Surface for the Bubble Tea view. It is shared by
// pointer between model copies and only mutated from Update.
type surface struct {
	sections map[render.Group]*section
	pager    view.Pager
	loading  bool
}

func newSurface() *surface {
	return &surface{
		sections: map[render.Group]*section{
			render.GroupLeader: {shown: true},
			render.GroupMember: {shown: true},
		},
		pager: view.Pager{Page: 1, Total: 1, Hidden: true},
	}
}

var _ render.Surface = (*surface)(nil)

func (s *surface) ReplaceSection(g render.Group, sec render.Section) {
	visible := make([]bool, len(sec.Cards))
	for i := range visible {
		visible[i] = true
	}
	s.sections[g] = &section{Section: sec, shown: true, visible: visible}
}

func (s *surface) ShowSection(g render.Group, shown bool) {
	if sec, ok := s.sections[g]; ok {
		sec.shown = shown
	}
}

func (s *surface) ShowCard(g render.Group, index int, shown bool) {
	sec, ok := s.sections[g]
	if !ok || index < 0 || index >= len(sec.visible) {
		return
	}
	sec.visible[index] = shown
}

func (s *surface) SetPager(p view.Pager) {
	s.pager = p
}

func (s *surface) SetLoading(loading bool) {
	s.loading = loading
}

// section returns the named area; a missing one reads as empty and hidden.
func (s *surface) section(g render.Group) section {
	if sec, ok := s.sections[g]; ok {
		return *sec
	}
	return section{}
}
