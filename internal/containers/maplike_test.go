package containers

import (
	"errors"
	"reflect"
	"testing"
)

func TestMaplikeSetGetHas(t *testing.T) {
	m := NewMaplike[string, int]()
	_ = m.Set("a", 1)
	_ = m.Set("b", 2)
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Fatalf("expected a=1, got %v, %v", v, ok)
	}
	if !m.Has("b") {
		t.Errorf("expected b to be present")
	}
	if m.Size() != 2 {
		t.Errorf("expected size 2, got %d", m.Size())
	}
}

func TestMaplikeResetDoesNotMovePosition(t *testing.T) {
	m := NewMaplike[string, int]()
	_ = m.Set("a", 1)
	_ = m.Set("b", 2)
	_ = m.Set("a", 99)
	if !reflect.DeepEqual(m.Keys(), []string{"a", "b"}) {
		t.Errorf("expected insertion order preserved across re-set, got %v", m.Keys())
	}
	v, _ := m.Get("a")
	if v != 99 {
		t.Errorf("expected the updated value 99, got %d", v)
	}
}

func TestMaplikeDeleteThenReinsertMovesToEnd(t *testing.T) {
	m := NewMaplike[string, int]()
	_ = m.Set("a", 1)
	_ = m.Set("b", 2)
	_, _ = m.Delete("a")
	_ = m.Set("a", 3)
	if !reflect.DeepEqual(m.Keys(), []string{"b", "a"}) {
		t.Errorf("expected a to reappear at the end, got %v", m.Keys())
	}
}

func TestMaplikeReadOnlyRejectsMutation(t *testing.T) {
	m := NewReadOnlyMaplike([]string{"a"}, []int{1})
	if err := m.Set("b", 2); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if _, err := m.Delete("a"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if err := m.Clear(); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Errorf("expected the read-only map still readable, got %v, %v", v, ok)
	}
}

func TestMaplikeEntriesOrder(t *testing.T) {
	m := NewMaplike[string, int]()
	_ = m.Set("x", 1)
	_ = m.Set("y", 2)
	entries := m.Entries()
	if len(entries) != 2 || entries[0].Key != "x" || entries[1].Key != "y" {
		t.Errorf("expected entries in insertion order, got %+v", entries)
	}
}
