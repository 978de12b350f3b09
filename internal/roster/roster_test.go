package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func names(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestBuild_SampleSheet(t *testing.T) {
	r := Build(Parse(sampleSheet), DefaultOptions())

	if diff := cmp.Diff([]string{"Alice"}, names(r.Leaders())); diff != "" {
		t.Fatalf("leaders mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bob", "Carol"}, names(r.Members())); diff != "" {
		t.Fatalf("members mismatch (-want +got):\n%s", diff)
	}
	carol := r.Members()[1]
	if got := carol.Picture(""); got != DefaultPicture {
		t.Fatalf("Carol picture = %q, want placeholder %q", got, DefaultPicture)
	}
}

func TestBuild_RoleMatchingIsCaseInsensitive(t *testing.T) {
	records := []Record{
		{Name: "A", Role: "Leader"},
		{Name: "B", Role: "LEADER"},
		{Name: "C", Role: "leader"},
		{Name: "D", Role: "guest"},
		{Name: "E", Role: "MeMbEr"},
		{Name: "F", Role: ""},
		{Name: "G", Role: "leaders"},
	}
	r := Build(records, DefaultOptions())
	if diff := cmp.Diff([]string{"A", "B", "C"}, names(r.Leaders())); diff != "" {
		t.Fatalf("leaders mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"E"}, names(r.Members())); diff != "" {
		t.Fatalf("members mismatch (-want +got):\n%s", diff)
	}
	if r.LeaderCount() != 3 || r.MemberCount() != 1 {
		t.Fatalf("counts = %d/%d, want 3/1", r.LeaderCount(), r.MemberCount())
	}
}

func TestBuild_LeadersKeepSourceOrder(t *testing.T) {
	records := []Record{
		{Name: "Zed", Role: "leader"},
		{Name: "Amy", Role: "leader"},
	}
	r := Build(records, DefaultOptions())
	if diff := cmp.Diff([]string{"Zed", "Amy"}, names(r.Leaders())); diff != "" {
		t.Fatalf("leaders mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_MemberSorting(t *testing.T) {
	records := []Record{
		{Name: "zoe", Role: "member"},
		{Name: "Émile", Role: "member"},
		{Name: "adam", Role: "member"},
		{Name: "Bea", Role: "member"},
	}

	sorted := Build(records, DefaultOptions())
	if diff := cmp.Diff([]string{"adam", "Bea", "Émile", "zoe"}, names(sorted.Members())); diff != "" {
		t.Fatalf("sorted members mismatch (-want +got):\n%s", diff)
	}

	unsorted := Build(records, Options{SortMembers: false})
	if diff := cmp.Diff([]string{"zoe", "Émile", "adam", "Bea"}, names(unsorted.Members())); diff != "" {
		t.Fatalf("unsorted members mismatch (-want +got):\n%s", diff)
	}

	french := Build(records, Options{SortMembers: true, Collation: language.French})
	if got := names(french.Members()); got[0] != "adam" || got[3] != "zoe" {
		t.Fatalf("french collation members = %v, want adam first and zoe last", got)
	}
}

func TestRoster_AccessorsReturnCopies(t *testing.T) {
	r := Build([]Record{{Name: "A", Role: "leader"}, {Name: "B", Role: "member"}}, DefaultOptions())

	leaders := r.Leaders()
	leaders[0].Name = "mutated"
	members := r.Members()
	members[0].Name = "mutated"

	if r.Leaders()[0].Name != "A" || r.Members()[0].Name != "B" {
		t.Fatalf("roster mutated through accessor copy")
	}
}

func TestRoster_Empty(t *testing.T) {
	var r Roster
	if !r.Empty() {
		t.Fatalf("zero Roster should be empty")
	}
	r = Build([]Record{{Name: "X", Role: "guest"}}, DefaultOptions())
	if !r.Empty() {
		t.Fatalf("roster with only guests should be empty")
	}
}
