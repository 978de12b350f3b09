package view

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entity string

func (e entity) DisplayName() string { return string(e) }

func group(n int) []entity {
	out := make([]entity, n)
	for i := range out {
		out[i] = entity(fmt.Sprintf("Member %02d", i+1))
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	s := New(0)
	if s.Page != 1 || s.Search != "" || s.PerPage != DefaultPerPage {
		t.Fatalf("New(0) = %#v, want page 1, empty search, per page %d", s, DefaultPerPage)
	}
	if got := New(10).PerPage; got != 10 {
		t.Fatalf("New(10).PerPage = %d, want 10", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, per, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 2, 3},
		{7, 0, 1},
		{13, 0, 2},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.per); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.per, got, tt.want)
		}
	}
}

func TestVisible_FiltersThenPaginates(t *testing.T) {
	g := []entity{"Alice", "bob", "Carol", "Bobby", "ROBERT", "Dan"}
	s := State{Search: "OB", Page: 1, PerPage: 2}

	if diff := cmp.Diff([]entity{"bob", "Bobby"}, Visible(g, s)); diff != "" {
		t.Fatalf("page 1 mismatch (-want +got):\n%s", diff)
	}
	s.Page = 2
	if diff := cmp.Diff([]entity{"ROBERT"}, Visible(g, s)); diff != "" {
		t.Fatalf("page 2 mismatch (-want +got):\n%s", diff)
	}
	s.Page = 3
	if got := Visible(g, s); len(got) != 0 {
		t.Fatalf("page 3 = %v, want empty", got)
	}
}

func TestVisible_IsPure(t *testing.T) {
	g := group(7)
	orig := append([]entity(nil), g...)
	s := State{Search: "member", Page: 2, PerPage: 3}
	sCopy := s

	first := Visible(g, s)
	second := Visible(g, s)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Visible not deterministic (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(orig, g); diff != "" {
		t.Fatalf("Visible mutated group (-orig +now):\n%s", diff)
	}
	if s != sCopy {
		t.Fatalf("Visible mutated state: %#v, want %#v", s, sCopy)
	}
}

func TestVisible_NoMatches(t *testing.T) {
	s := State{Search: "zzz", Page: 1, PerPage: 4}
	if got := Visible(group(9), s); len(got) != 0 {
		t.Fatalf("Visible = %v, want empty", got)
	}
	if s.ShowLeaders() {
		t.Fatalf("ShowLeaders = true with non-empty search")
	}
	if p := PagerFor(group(9), s); !p.Hidden || p.Total != 1 {
		t.Fatalf("PagerFor = %#v, want hidden single page", p)
	}
}

func TestShowLeaders(t *testing.T) {
	tests := []struct {
		s    State
		want bool
	}{
		{State{Page: 1}, true},
		{State{Page: 2}, false},
		{State{Page: 1, Search: "a"}, false},
		{State{Page: 3, Search: "a"}, false},
	}
	for _, tt := range tests {
		if got := tt.s.ShowLeaders(); got != tt.want {
			t.Errorf("ShowLeaders(%#v) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestPagerFor(t *testing.T) {
	g := group(5)

	p := PagerFor(g, State{Page: 1, PerPage: 2})
	want := Pager{Page: 1, Total: 3, PrevEnabled: false, NextEnabled: true}
	if p != want {
		t.Fatalf("PagerFor page 1 = %#v, want %#v", p, want)
	}
	if p.Label() != "Page 1 of 3" {
		t.Fatalf("Label = %q, want %q", p.Label(), "Page 1 of 3")
	}

	p = PagerFor(g, State{Page: 3, PerPage: 2})
	want = Pager{Page: 3, Total: 3, PrevEnabled: true, NextEnabled: false}
	if p != want {
		t.Fatalf("PagerFor page 3 = %#v, want %#v", p, want)
	}

	p = PagerFor(g, State{Page: 1, PerPage: 10})
	if !p.Hidden {
		t.Fatalf("PagerFor single page = %#v, want hidden", p)
	}
}
