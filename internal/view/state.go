// Package view holds the search and pagination state of the roster view and
// the pure functions that derive what is visible from it.
package view

import (
	"fmt"
	"strings"
)

// DefaultPerPage is used when a non-positive page size is configured.
const DefaultPerPage = 12

// Named is anything with a display name that search can match against.
type Named interface {
	DisplayName() string
}

// State is the (search, page) pair driving the visible set. PerPage is fixed
// for the lifetime of the view.
type State struct {
	Search  string
	Page    int
	PerPage int
}

// New returns the initial state: empty search, page 1.
func New(perPage int) State {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return State{Page: 1, PerPage: perPage}
}

// ShowLeaders reports whether the leader section is displayed. Leaders only
// appear on the first page of an unfiltered view.
func (s State) ShowLeaders() bool {
	return s.Page == 1 && s.Search == ""
}

// TotalPages is ceil(count/perPage), never less than 1.
func TotalPages(count, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if count <= 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// Matches reports whether name contains search, ignoring case.
func Matches(name, search string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(search))
}

// Filtered returns the positions in group whose display name matches search.
func Filtered[E Named](group []E, search string) []int {
	out := make([]int, 0, len(group))
	for i, e := range group {
		if Matches(e.DisplayName(), search) {
			out = append(out, i)
		}
	}
	return out
}

// Select returns the positions in group of the entities visible under s:
// the filtered positions sliced to the current page window.
func Select[E Named](group []E, s State) []int {
	filtered := Filtered(group, s.Search)
	per := s.PerPage
	if per <= 0 {
		per = DefaultPerPage
	}
	page := s.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * per
	if start >= len(filtered) {
		return []int{}
	}
	end := min(start+per, len(filtered))
	return filtered[start:end]
}

// Visible returns the entities shown under s. It does not modify group or s.
func Visible[E Named](group []E, s State) []E {
	idx := Select(group, s)
	out := make([]E, 0, len(idx))
	for _, i := range idx {
		out = append(out, group[i])
	}
	return out
}

// Pages returns the page count of group under the current search.
func Pages[E Named](group []E, s State) int {
	return TotalPages(len(Filtered(group, s.Search)), s.PerPage)
}

// Pager is the derived state of the pagination controls.
type Pager struct {
	Page        int
	Total       int
	PrevEnabled bool
	NextEnabled bool
	// Hidden is true when everything fits on one page.
	Hidden bool
}

// Label is the page indicator text.
func (p Pager) Label() string {
	return fmt.Sprintf("Page %d of %d", p.Page, p.Total)
}

// PagerFor derives pagination control state for group under s.
func PagerFor[E Named](group []E, s State) Pager {
	total := Pages(group, s)
	return Pager{
		Page:        s.Page,
		Total:       total,
		PrevEnabled: s.Page > 1,
		NextEnabled: s.Page < total,
		Hidden:      total <= 1,
	}
}
