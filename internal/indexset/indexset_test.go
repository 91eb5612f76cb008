package indexset

import "testing"

func TestNewDedupesAndSorts(t *testing.T) {
	s := New(3, 1, 2, 1, 3)
	got := s.Slice()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestIntersect(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(2, 4, 6)
	got := a.Intersect(b).Slice()
	want := []int{2, 4}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRemoveAndContains(t *testing.T) {
	s := New(1, 2, 3)
	if !s.Contains(2) {
		t.Fatalf("expected set to contain 2")
	}
	s.Remove(2)
	if s.Contains(2) {
		t.Fatalf("expected 2 to be removed")
	}
	if s.Len() != 2 {
		t.Fatalf("expected len 2, got %d", s.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(1, 2, 3)
	c := s.Clone()
	c.Remove(2)
	if !s.Contains(2) {
		t.Fatalf("original set should be unaffected by clone mutation")
	}
	if c.Contains(2) {
		t.Fatalf("clone should no longer contain removed index")
	}
}
