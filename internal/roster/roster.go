package roster

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Role literals recognised in the role column.
const (
	RoleLeader = "leader"
	RoleMember = "member"
)

// Options control how a Roster is built.
type Options struct {
	// SortMembers orders members by name using locale-aware collation. When
	// false, members keep source row order.
	SortMembers bool
	// Collation selects the collation language; the zero value uses the root
	// collation.
	Collation language.Tag
}

// DefaultOptions sorts members with the root collation.
func DefaultOptions() Options {
	return Options{SortMembers: true, Collation: language.Und}
}

// Roster is the leader/member classification of one fetch. It is immutable
// once built; accessors return copies.
type Roster struct {
	leaders []Record
	members []Record
}

// Build partitions records by role. Role matching is case-insensitive and
// exact; any other role is excluded from both groups. Leaders keep source
// order.
func Build(records []Record, opts Options) Roster {
	var r Roster
	for _, rec := range records {
		switch {
		case strings.EqualFold(rec.Role, RoleLeader):
			r.leaders = append(r.leaders, rec)
		case strings.EqualFold(rec.Role, RoleMember):
			r.members = append(r.members, rec)
		}
	}
	if opts.SortMembers && len(r.members) > 1 {
		col := collate.New(opts.Collation)
		slices.SortStableFunc(r.members, func(a, b Record) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
	return r
}

// Leaders returns the leader group in source order.
func (r Roster) Leaders() []Record { return slices.Clone(r.leaders) }

// Members returns the member group.
func (r Roster) Members() []Record { return slices.Clone(r.members) }

func (r Roster) LeaderCount() int { return len(r.leaders) }

func (r Roster) MemberCount() int { return len(r.members) }

// Empty reports whether neither group has any entries.
func (r Roster) Empty() bool {
	return len(r.leaders) == 0 && len(r.members) == 0
}
