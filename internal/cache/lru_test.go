package cache

import "testing"

func TestListPushFrontAndLen(t *testing.T) {
	l := NewList[string]()
	if l.Len() != 0 {
		t.Fatalf("new list Len() = %d, want 0", l.Len())
	}

	l.PushFront("a")
	l.PushFront("b")
	l.PushFront("c")

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if oldest, ok := l.Oldest(); !ok || oldest != "a" {
		t.Errorf("Oldest() = (%q, %v), want (\"a\", true)", oldest, ok)
	}
}

func TestListMoveToFront(t *testing.T) {
	l := NewList[int]()
	n1 := l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)

	l.MoveToFront(n1)

	if oldest, _ := l.Oldest(); oldest != 2 {
		t.Errorf("Oldest() = %d after MoveToFront(1), want 2", oldest)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d after MoveToFront, want 3", l.Len())
	}

	// Moving the head is a no-op.
	n4 := l.PushFront(4)
	l.MoveToFront(n4)
	if l.Len() != 4 {
		t.Errorf("Len() = %d after moving head, want 4", l.Len())
	}
}

func TestListRemoveOldest(t *testing.T) {
	l := NewList[int]()
	l.PushFront(1)
	l.PushFront(2)

	if key, ok := l.RemoveOldest(); !ok || key != 1 {
		t.Errorf("RemoveOldest() = (%d, %v), want (1, true)", key, ok)
	}
	if key, ok := l.RemoveOldest(); !ok || key != 2 {
		t.Errorf("RemoveOldest() = (%d, %v), want (2, true)", key, ok)
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest on empty list should report false")
	}
	if _, ok := l.Oldest(); ok {
		t.Error("Oldest on empty list should report false")
	}
}

func TestListRemove(t *testing.T) {
	l := NewList[int]()
	l.PushFront(1)
	n2 := l.PushFront(2)
	l.PushFront(3)

	l.Remove(n2)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d after Remove, want 2", l.Len())
	}
	if key, _ := l.RemoveOldest(); key != 1 {
		t.Errorf("oldest after middle removal = %d, want 1", key)
	}
	if key, _ := l.RemoveOldest(); key != 3 {
		t.Errorf("next oldest = %d, want 3", key)
	}

	l.Remove(nil) // must not panic
}

func TestListClear(t *testing.T) {
	l := NewList[int]()
	l.PushFront(1)
	l.PushFront(2)

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", l.Len())
	}
	if _, ok := l.Oldest(); ok {
		t.Error("cleared list should have no oldest")
	}
}

func TestListNodeKey(t *testing.T) {
	l := NewList[string]()
	n := l.PushFront("k")
	if n.Key() != "k" {
		t.Errorf("Key() = %q, want \"k\"", n.Key())
	}
}
