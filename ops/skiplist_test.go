package ops

import "testing"

func ascending(a, b int) bool { return a < b }

func TestInsertTopOrder(t *testing.T) {
	s := New[int](ascending)
	if !s.Empty() {
		t.Fatal("expected new OPS to be empty")
	}
	s.Insert(5)
	s.Insert(1)
	s.Insert(3)

	if top, ok := s.Top(); !ok || top != 1 {
		t.Fatalf("expected top=1, got %v ok=%v", top, ok)
	}
	if s.Len() != 3 {
		t.Fatalf("expected len=3, got %d", s.Len())
	}
}

func TestEraseKnown(t *testing.T) {
	s := New[int](ascending)
	s.Insert(10)
	s.Insert(20)

	if !s.Erase(10) {
		t.Fatal("expected erase of present entry to succeed")
	}
	if top, ok := s.Top(); !ok || top != 20 {
		t.Fatalf("expected top=20 after erase, got %v ok=%v", top, ok)
	}
	if s.Contains(10) {
		t.Fatal("expected 10 to be gone")
	}
}

func TestEraseUnknownReturnsFalse(t *testing.T) {
	s := New[int](ascending)
	s.Insert(1)
	if s.Erase(99) {
		t.Fatal("expected erase of absent entry to return false")
	}
}

func TestInsertDuplicateIgnored(t *testing.T) {
	s := New[int](ascending)
	s.Insert(7)
	s.Insert(7)
	if s.Len() != 1 {
		t.Fatalf("expected duplicate insert to be a no-op, len=%d", s.Len())
	}
}

func TestTopOnEmptyFails(t *testing.T) {
	s := New[int](ascending)
	if _, ok := s.Top(); ok {
		t.Fatal("expected Top on empty OPS to fail")
	}
}

func TestOrderedDrainMatchesComparator(t *testing.T) {
	s := New[int](ascending)
	values := []int{42, -3, 17, 0, 8, 8, -3}
	for _, v := range values {
		s.Insert(v)
	}

	want := []int{-3, 0, 8, 17, 42} // duplicates collapse: Entry identity is ==
	var got []int
	for {
		top, ok := s.Top()
		if !ok {
			break
		}
		got = append(got, top)
		s.Erase(top)
	}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func descending(a, b int) bool { return a > b }

func TestDescendingComparator(t *testing.T) {
	s := New[int](descending)
	s.Insert(1)
	s.Insert(9)
	s.Insert(5)
	if top, ok := s.Top(); !ok || top != 9 {
		t.Fatalf("expected top=9 for descending order, got %v ok=%v", top, ok)
	}
}
