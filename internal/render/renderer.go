package render

import (
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/view"
)

// Group names a card section on the display surface.
type Group string

const (
	GroupLeader Group = "leader"
	GroupMember Group = "member"
)

// Section text.
const (
	LeaderTitle    = "👑 LEADER"
	MemberTitle    = "MEMBERS"
	ErrorTitle     = "⚔️ MEMBERS"
	NoMembersText  = "No members found."
	LoadErrorText  = "Error loading data. Please check the Google Sheet link and publish settings."
	LoadingText    = "Loading members..."
	ProfileAltText = "Profile of "
)

// Fragment is the display form of one entity.
type Fragment struct {
	// Name is the display name and the card's identity attribute.
	Name      string
	Image     string
	Alt       string
	LinkLabel string
	Profile   string
	Leader    bool
}

// Section is the full content of one group area. Message replaces cards when
// there is nothing to show.
type Section struct {
	Title   string
	Cards   []Fragment
	Message string
}

// Surface is the display contract the Renderer commits to. Card indexes are
// positions within the section last passed to ReplaceSection.
type Surface interface {
	ReplaceSection(g Group, sec Section)
	ShowSection(g Group, shown bool)
	ShowCard(g Group, index int, shown bool)
	SetPager(p view.Pager)
	SetLoading(loading bool)
}

// Renderer maps roster entities to fragments and keeps a Surface in step
// with the view state.
type Renderer struct {
	// Placeholder is the image reference for records without a picture.
	Placeholder string
}

// Card builds the fragment for rec.
func (r Renderer) Card(rec roster.Record, leader bool) Fragment {
	name := rec.DisplayName()
	return Fragment{
		Name:      name,
		Image:     rec.Picture(r.Placeholder),
		Alt:       ProfileAltText + name,
		LinkLabel: ShortLink(rec.Profile()),
		Profile:   rec.Profile(),
		Leader:    leader,
	}
}

// Loading shows the loading indicator.
func (r Renderer) Loading(s Surface) {
	s.SetLoading(true)
}

// Mount writes both sections for ros. It runs once per successful fetch;
// Sync handles everything after.
func (r Renderer) Mount(s Surface, ros roster.Roster) {
	s.SetLoading(false)

	var leaders Section
	if ros.LeaderCount() > 0 {
		leaders.Title = LeaderTitle
		for _, rec := range ros.Leaders() {
			leaders.Cards = append(leaders.Cards, r.Card(rec, true))
		}
	}
	s.ReplaceSection(GroupLeader, leaders)

	members := Section{Title: MemberTitle}
	for _, rec := range ros.Members() {
		members.Cards = append(members.Cards, r.Card(rec, false))
	}
	if len(members.Cards) == 0 {
		members.Message = NoMembersText
	}
	s.ReplaceSection(GroupMember, members)
}

// Sync applies st to an already mounted surface: member cards outside the
// visible set are hidden (not removed), the leader section follows
// ShowLeaders, and the pager reflects the filtered member count.
func (r Renderer) Sync(s Surface, ros roster.Roster, st view.State) {
	members := ros.Members()
	for i := range members {
		s.ShowCard(GroupMember, i, false)
	}
	for _, i := range view.Select(members, st) {
		s.ShowCard(GroupMember, i, true)
	}
	s.ShowSection(GroupLeader, st.ShowLeaders())
	s.SetPager(view.PagerFor(members, st))
}

// Fail replaces the member area with the load error message. Nothing else
// is shown.
func (r Renderer) Fail(s Surface) {
	s.SetLoading(false)
	s.ReplaceSection(GroupLeader, Section{})
	s.ReplaceSection(GroupMember, Section{Title: ErrorTitle, Message: LoadErrorText})
	s.SetPager(view.Pager{Page: 1, Total: 1, Hidden: true})
}
