package avl

import (
	"math/rand"
	"slices"
	"testing"
)

// Inserting at a position and removing at the same position must restore
// the previous sequence and hand back the inserted value.
func TestInsertRemoveRoundtrip(t *testing.T) {
	tree := newIntTree(t)
	for v := range 20 {
		tree.InsertAt(v, v*10)
	}
	before := collect(tree)
	for _, at := range []int{0, 7, 20} {
		if err := tree.InsertAt(at, 999); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, err := tree.At(at); err != nil || v != 999 {
			t.Fatalf("At(%d) = %d, %v; want 999", at, v, err)
		}
		removed, err := tree.RemoveAt(at)
		if err != nil || removed != 999 {
			t.Fatalf("RemoveAt(%d) = %d, %v; want 999", at, removed, err)
		}
		if got := collect(tree); !equalSlices(got, before) {
			t.Fatalf("roundtrip at %d disturbed the sequence: %v", at, got)
		}
		checkInvariants(t, tree)
	}
}

// TestPositionalOperationsAgainstModel drives the tree with random
// positional edits and compares it to a slice reference model.
func TestPositionalOperationsAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := newIntTree(t)
	var model []int
	for step := 0; step < 3000; step++ {
		switch {
		case len(model) > 0 && rng.Intn(3) == 0:
			at := rng.Intn(len(model))
			removed, err := tree.RemoveAt(at)
			if err != nil {
				t.Fatalf("step %d: unexpected error: %v", step, err)
			}
			if removed != model[at] {
				t.Fatalf("step %d: RemoveAt(%d) = %d, model %d", step, at, removed, model[at])
			}
			model = slices.Delete(model, at, at+1)
		case len(model) > 0 && rng.Intn(5) == 0:
			at := rng.Intn(len(model))
			v := rng.Intn(10000)
			if _, err := tree.ReplaceAt(at, v); err != nil {
				t.Fatalf("step %d: unexpected error: %v", step, err)
			}
			model[at] = v
		default:
			at := rng.Intn(len(model) + 1)
			v := rng.Intn(10000)
			if err := tree.InsertAt(at, v); err != nil {
				t.Fatalf("step %d: unexpected error: %v", step, err)
			}
			model = slices.Insert(model, at, v)
		}
		if tree.Size() != len(model) {
			t.Fatalf("step %d: size %d, model %d", step, tree.Size(), len(model))
		}
	}
	if got := collect(tree); !equalSlices(got, model) {
		t.Fatalf("final sequence diverged from model")
	}
	for _, at := range []int{0, len(model) / 2, len(model) - 1} {
		if v, err := tree.At(at); err != nil || v != model[at] {
			t.Fatalf("At(%d) = %d, %v; model %d", at, v, err, model[at])
		}
	}
	checkInvariants(t, tree)
}

func TestIterationStopsEarly(t *testing.T) {
	tree := newIntTree(t)
	for v := range 10 {
		tree.InsertOrdered(v)
	}
	count := 0
	for v := range tree.All() {
		if v >= 5 {
			break
		}
		count++
	}
	if count != 5 {
		t.Fatalf("visited %d elements before stopping, want 5", count)
	}
}
