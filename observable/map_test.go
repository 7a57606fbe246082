package observable_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/seqkit/observable"
)

func TestMap(t *testing.T) {
	m := observable.NewMap(map[int]bool{0: false})

	var got map[int]bool
	obs := m.Observe(func(v map[int]bool) { got = v })
	defer obs.Close()

	if !m.SetIfChanged(map[int]bool{0: true, 1: false}) {
		t.Error("SetIfChanged = false, want true")
	}
	if m.SetIfChanged(map[int]bool{0: true, 1: false}) {
		t.Error("second SetIfChanged = true, want false")
	}
	if !got[0] {
		t.Errorf("observer got %v, want key 0 true", got)
	}

	m.SetAlways(map[int]bool{0: false, 1: false})
	if got[0] {
		t.Errorf("observer got %v after SetAlways, want key 0 false", got)
	}

	m.Clear()
	if len(got) != 0 {
		t.Errorf("after Clear got %v, want empty", got)
	}

	m.SetItem(0, false)
	m.SetItem(1, true)
	if m.Size() != 2 || m.IsEmpty() {
		t.Errorf("Size() = %d, IsEmpty() = %v, want 2, false", m.Size(), m.IsEmpty())
	}
	if !m.HasKey(1) {
		t.Error("HasKey(1) = false, want true")
	}
	if diff := cmp.Diff([]int{0, 1}, m.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	if v, ok := m.Item(1); !ok || !v {
		t.Errorf("Item(1) = %v, %v, want true, true", v, ok)
	}

	m.SetItem(1, false)
	if m.SetItemIfChanged(1, false) {
		t.Error("SetItemIfChanged(1, false) = true, want false")
	}
	if !m.SetItemIfChanged(1, true) {
		t.Error("SetItemIfChanged(1, true) = false, want true")
	}
	if !m.SetItemIfChanged(2, false) {
		t.Error("SetItemIfChanged on new key = false, want true")
	}
}

func TestMap_StringInt(t *testing.T) {
	m := observable.NewMap(map[string]int{})

	var got map[string]int
	obs := m.Observe(func(v map[string]int) { got = v })
	defer obs.Close()

	if !m.SetIfChanged(map[string]int{"a": 1}) {
		t.Error("SetIfChanged({a:1}) = false, want true")
	}
	if m.SetIfChanged(map[string]int{"a": 1}) {
		t.Error("second SetIfChanged({a:1}) = true, want false")
	}
	m.SetAlways(map[string]int{"a": 2})
	if diff := cmp.Diff(map[string]int{"a": 2}, got); diff != "" {
		t.Errorf("after SetAlways (-want +got):\n%s", diff)
	}
}
