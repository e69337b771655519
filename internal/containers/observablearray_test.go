package containers

import (
	"errors"
	"reflect"
	"testing"
)

func TestObservableArrayPushFiresOnSet(t *testing.T) {
	var sets []int
	a := NewObservableArray(func(v int, i int) error {
		sets = append(sets, v)
		return nil
	}, nil)

	if err := a.Push(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Push(20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(sets, []int{10, 20}) {
		t.Errorf("expected on-set to fire for each push in order, got %v", sets)
	}
	if a.Len() != 2 {
		t.Errorf("expected length 2, got %d", a.Len())
	}
}

func TestObservableArrayPushRollsBackOnSetFailure(t *testing.T) {
	boom := errors.New("rejected")
	a := NewObservableArray(func(v int, i int) error {
		if v == 99 {
			return boom
		}
		return nil
	}, nil)
	_ = a.Push(1)
	if err := a.Push(99); !errors.Is(err, boom) {
		t.Fatalf("expected the on-set error to propagate, got %v", err)
	}
	if a.Len() != 1 {
		t.Errorf("expected the backing list unchanged after a rejected set, got length %d", a.Len())
	}
}

func TestObservableArrayPopFiresOnDelete(t *testing.T) {
	var deleted []int
	a := NewObservableArray[int](nil, func(v int, i int) {
		deleted = append(deleted, v)
	})
	_ = a.Push(1)
	_ = a.Push(2)
	v, ok := a.Pop()
	if !ok || v != 2 {
		t.Fatalf("expected to pop 2, got %v, %v", v, ok)
	}
	if !reflect.DeepEqual(deleted, []int{2}) {
		t.Errorf("expected on-delete for the popped value, got %v", deleted)
	}
}

func TestObservableArraySetLengthShrinkFiresDeletesDescending(t *testing.T) {
	var deleted []int
	a := NewObservableArray[int](nil, func(v int, i int) {
		deleted = append(deleted, v)
	})
	for _, v := range []int{1, 2, 3, 4} {
		_ = a.Push(v)
	}
	if err := a.SetLength(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(deleted, []int{4, 3, 2}) {
		t.Errorf("expected descending-index delete order, got %v", deleted)
	}
	if a.Len() != 1 {
		t.Errorf("expected length 1, got %d", a.Len())
	}
}

func TestObservableArraySetLengthRejectsGrowth(t *testing.T) {
	a := NewObservableArray[int](nil, nil)
	_ = a.Push(1)
	if err := a.SetLength(5); !errors.Is(err, ErrLengthGrowthNotAllowed) {
		t.Fatalf("expected ErrLengthGrowthNotAllowed, got %v", err)
	}
}

func TestObservableArraySetOverwriteDeletesOldThenSetsNew(t *testing.T) {
	var events []string
	a := NewObservableArray(func(v int, i int) error {
		events = append(events, "set")
		return nil
	}, func(v int, i int) {
		events = append(events, "delete")
	})
	_ = a.Push(1)
	events = nil
	if err := a.Set(0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(events, []string{"delete", "set"}) {
		t.Errorf("expected delete-then-set ordering on overwrite, got %v", events)
	}
	got, _ := a.At(0)
	if got != 2 {
		t.Errorf("expected 2 at index 0, got %d", got)
	}
}

func TestObservableArraySetRestoresOldValueOnSetFailure(t *testing.T) {
	boom := errors.New("rejected")
	a := NewObservableArray(func(v int, i int) error {
		if v == 2 {
			return boom
		}
		return nil
	}, nil)
	_ = a.Push(1)
	if err := a.Set(0, 2); !errors.Is(err, boom) {
		t.Fatalf("expected the rejection to propagate, got %v", err)
	}
	got, _ := a.At(0)
	if got != 1 {
		t.Errorf("expected the old value restored, got %d", got)
	}
}

func TestObservableArraySpliceInsertsAndRemoves(t *testing.T) {
	a := NewObservableArray[int](nil, nil)
	for _, v := range []int{1, 2, 3, 4, 5} {
		_ = a.Push(v)
	}
	removed, err := a.Splice(1, 2, 20, 30, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(removed, []int{2, 3}) {
		t.Errorf("expected removed [2 3], got %v", removed)
	}
	if !reflect.DeepEqual(a.Snapshot(), []int{1, 20, 30, 40, 4, 5}) {
		t.Errorf("unexpected backing list after splice: %v", a.Snapshot())
	}
}
