package memory_test

import (
	"testing"

	"github.com/VladimirB-prog/ai-agents-showcase/memory"
)

func TestJournal_SetGet(t *testing.T) {
	j := memory.NewJournal()

	if _, ok := j.Get("volume_bassin"); ok {
		t.Fatal("expected empty journal")
	}

	j.Set("volume_bassin", "3750 m3")
	v, ok := j.Get("volume_bassin")
	if !ok || v != "3750 m3" {
		t.Fatalf("got (%q, %v), want (%q, true)", v, ok, "3750 m3")
	}
	if j.Len() != 1 {
		t.Fatalf("len: got %d want 1", j.Len())
	}
}

func TestJournal_OverwriteKeepsLastValue(t *testing.T) {
	j := memory.NewJournal()
	j.Set("cout_reseau", "85 732 €HT")
	j.Set("cout_reseau", "214 330 €HT")

	if j.Len() != 1 {
		t.Fatalf("len after overwrite: got %d want 1", j.Len())
	}
	v, _ := j.Get("cout_reseau")
	if v != "214 330 €HT" {
		t.Fatalf("got %q, want the second value", v)
	}
}

func TestJournal_SnapshotIsCopy(t *testing.T) {
	j := memory.NewJournal()
	j.Set("a", "1")

	snap := j.Snapshot()
	snap["a"] = "tampered"
	snap["b"] = "2"

	if v, _ := j.Get("a"); v != "1" {
		t.Fatalf("journal mutated through snapshot: got %q", v)
	}
	if j.Len() != 1 {
		t.Fatalf("len: got %d want 1", j.Len())
	}
}

func TestJournal_KeysSorted(t *testing.T) {
	j := memory.NewJournal()
	j.Set("zone", "nord")
	j.Set("acces", "rue des Forts")
	j.Set("dn", "300")

	got := j.Keys()
	want := []string{"acces", "dn", "zone"}
	if len(got) != len(want) {
		t.Fatalf("keys: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys: got %v want %v", got, want)
		}
	}
}
