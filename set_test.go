package avltree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetSuppressesDuplicates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s := NewSet[int]()
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5} {
		s.Insert(v)
	}
	if s.Len() != 7 {
		t.Errorf("expected 7 distinct elements, got %d", s.Len())
	}
	if !s.Insert(8) {
		t.Errorf("expected insert of new element to report true")
	}
	if s.Insert(8) {
		t.Errorf("expected insert of duplicate to report false")
	}
	if !s.Contains(9) || s.Contains(7) {
		t.Errorf("unexpected membership results")
	}
	if !s.Delete(9) || s.Delete(9) {
		t.Errorf("unexpected delete results")
	}
	var got []int
	for v := range s.All() {
		got = append(got, v)
	}
	want := []int{1, 2, 3, 4, 5, 6, 8}
	if len(got) != len(want) {
		t.Fatalf("unexpected set contents %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected set contents %v", got)
		}
	}
}

func TestSetFuncOrdersByCustomLess(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	type point struct{ x, y int }
	s := NewSetFunc(func(a, b point) bool { return a.x < b.x })
	if !s.Insert(point{x: 3, y: 1}) || !s.Insert(point{x: 1, y: 9}) {
		t.Errorf("expected inserts of new elements to report true")
	}
	// Equivalent under the ordering: same x, different y.
	if s.Insert(point{x: 3, y: 7}) {
		t.Errorf("expected insert of equivalent element to be absorbed")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 elements, got %d", s.Len())
	}
	if !s.Contains(point{x: 1}) || s.Contains(point{x: 2}) {
		t.Errorf("unexpected membership results")
	}
	if !s.Delete(point{x: 3}) || s.Delete(point{x: 3}) {
		t.Errorf("unexpected delete results")
	}
	var got []point
	for v := range s.All() {
		got = append(got, v)
	}
	if len(got) != 1 || got[0].x != 1 {
		t.Errorf("unexpected set contents %v", got)
	}
}

func TestBagKeepsDuplicates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := NewBag[string]()
	for _, v := range []string{"b", "a", "b", "c", "b"} {
		b.Insert(v)
	}
	if b.Len() != 5 {
		t.Errorf("expected 5 elements, got %d", b.Len())
	}
	if !b.Delete("b") {
		t.Errorf("expected delete of present element to report true")
	}
	if b.Len() != 4 || !b.Contains("b") {
		t.Errorf("expected remaining occurrences of 'b'")
	}
	var got []string
	for v := range b.All() {
		got = append(got, v)
	}
	want := []string{"a", "b", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected bag contents %v", got)
		}
	}
}

func TestBagCountsOccurrences(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := NewBag[int]()
	for _, v := range []int{2, 7, 2, 9, 2, 7} {
		b.Insert(v)
	}
	cases := []struct {
		v     int
		count int
	}{
		{2, 3},
		{7, 2},
		{9, 1},
		{5, 0},
	}
	for _, c := range cases {
		if got := b.Count(c.v); got != c.count {
			t.Errorf("Count(%d) = %d, want %d", c.v, got, c.count)
		}
	}
	b.Delete(2)
	if got := b.Count(2); got != 2 {
		t.Errorf("Count(2) after delete = %d, want 2", got)
	}
}
