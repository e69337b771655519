package containers

import (
	"errors"
	"reflect"
	"testing"
)

func TestSetlikeAddHasDelete(t *testing.T) {
	s := NewSetlike[string]()
	_ = s.Add("a")
	_ = s.Add("b")
	if !s.Has("a") || !s.Has("b") {
		t.Fatalf("expected both members present")
	}
	ok, err := s.Delete("a")
	if err != nil || !ok {
		t.Fatalf("expected a successful delete, got %v, %v", ok, err)
	}
	if s.Has("a") {
		t.Errorf("expected a removed")
	}
}

func TestSetlikeReAddDoesNotMovePosition(t *testing.T) {
	s := NewSetlike[string]()
	_ = s.Add("a")
	_ = s.Add("b")
	_ = s.Add("a")
	if !reflect.DeepEqual(s.Values(), []string{"a", "b"}) {
		t.Errorf("expected insertion order preserved, got %v", s.Values())
	}
}

func TestSetlikeReadOnlyRejectsMutation(t *testing.T) {
	s := NewReadOnlySetlike([]string{"a", "b"})
	if err := s.Add("c"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if _, err := s.Delete("a"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if !reflect.DeepEqual(s.Values(), []string{"a", "b"}) {
		t.Errorf("expected values unchanged, got %v", s.Values())
	}
}
