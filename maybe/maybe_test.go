package maybe_test

import (
	"testing"

	. "github.com/npillmayer/fheap/maybe"
	"github.com/npillmayer/fheap/persistent/binomial"
	"github.com/npillmayer/fheap/persistent/flist"
)

func TestMaybeHeadOfList(t *testing.T) {
	var v string
	switch m := flist.Of("a", "b").Head().Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected non-empty list to have a head")
	}
	if v != "a" {
		t.Errorf("expected head to be a, is %q", v)
	}
	head := flist.Empty[string]().Head()
	if head.IsJust() {
		t.Error("expected empty list to have no head")
	}
	if head.WithDefault("none") != "none" {
		t.Errorf("expected head of empty list to default to none, is %q", head.WithDefault("none"))
	}
}

func TestMaybeRemainingHeap(t *testing.T) {
	rest := binomial.Of(3, 1, 2).DeleteMin()
	h, ok := rest.Get()
	if !ok {
		t.Fatal("expected a heap to remain after removing one of three values")
	}
	if h.Len() != 2 || h.FindMin() != 2 {
		t.Errorf("expected remaining heap to hold 2 values with minimum 2, is %s", h)
	}
	//
	gone := binomial.Single(7).DeleteMin()
	if gone.IsJust() {
		t.Errorf("expected heap to run empty, got %v", gone)
	}
	var hh binomial.Heap[int]
	switch m := gone.Match(); m {
	case m.Just(&hh):
		t.Error("expected Nothing to match, Just did")
	case m.Nothing():
	}
	if hh.Len() != 0 {
		t.Errorf("expected heap variable to stay untouched, has %d values", hh.Len())
	}
}

func TestMaybeGetOnNothing(t *testing.T) {
	v, ok := Nothing[int]().Get()
	if ok || v != 0 {
		t.Errorf("expected Nothing.Get() to return (0, false), is (%d, %v)", v, ok)
	}
	v, ok = Just(5).Get()
	if !ok || v != 5 {
		t.Errorf("expected Just(5).Get() to return (5, true), is (%d, %v)", v, ok)
	}
}

func TestMaybeMapHeapToList(t *testing.T) {
	toList := func(h binomial.Heap[int]) flist.List[int] {
		return h.Sorted()
	}
	sorted := Map(toList, binomial.Of(9, 4, 6).DeleteMin())
	l := sorted.WithDefault(flist.Empty[int]())
	if l.String() != "(6 9)" {
		t.Errorf("expected remaining values to be (6 9), are %s", l)
	}
	empty := Map(toList, binomial.Single(1).DeleteMin())
	if empty.IsJust() {
		t.Error("expected mapping over an exhausted heap to be Nothing")
	}
}
