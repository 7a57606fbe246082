package observable_test

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/seqkit/observable"
)

func TestValue_SetIfChanged(t *testing.T) {
	v := observable.NewValue(0)

	var got []int
	obs := v.Observe(func(n int) { got = append(got, n) })
	defer obs.Close()

	if !v.SetIfChanged(1) {
		t.Error("SetIfChanged(1) = false, want true")
	}
	if v.SetIfChanged(1) {
		t.Error("second SetIfChanged(1) = true, want false")
	}
	if v.Get() != 1 {
		t.Errorf("Get() = %d, want 1", v.Get())
	}
	if diff := cmp.Diff([]int{1}, got); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestValue_SetAlways(t *testing.T) {
	v := observable.NewValue(2)

	calls := 0
	last := 0
	obs := v.Observe(func(n int) {
		calls++
		last = n
	})
	defer obs.Close()

	v.SetAlways(2)
	v.SetAlways(2)

	if calls != 2 {
		t.Errorf("callback ran %d times, want 2", calls)
	}
	if last != 2 {
		t.Errorf("last value = %d, want 2", last)
	}
}

func TestValue_Collections(t *testing.T) {
	t.Run("int list", func(t *testing.T) {
		v := observable.NewValue([]int{})
		var got []int
		obs := v.Observe(func(l []int) { got = l })
		defer obs.Close()

		if !v.SetIfChanged([]int{1}) {
			t.Error("SetIfChanged([1]) = false, want true")
		}
		if v.SetIfChanged([]int{1}) {
			t.Error("second SetIfChanged([1]) = true, want false")
		}
		if diff := cmp.Diff([]int{1}, got); diff != "" {
			t.Errorf("after SetIfChanged (-want +got):\n%s", diff)
		}

		v.SetAlways([]int{1, 2})
		if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
			t.Errorf("after SetAlways (-want +got):\n%s", diff)
		}
	})

	t.Run("string int map", func(t *testing.T) {
		v := observable.NewValue(map[string]int{})
		var got map[string]int
		obs := v.Observe(func(m map[string]int) { got = m })
		defer obs.Close()

		if !v.SetIfChanged(map[string]int{"a": 1}) {
			t.Error("SetIfChanged({a:1}) = false, want true")
		}
		if v.SetIfChanged(map[string]int{"a": 1}) {
			t.Error("second SetIfChanged({a:1}) = true, want false")
		}
		v.SetAlways(map[string]int{"a": 2})
		if diff := cmp.Diff(map[string]int{"a": 2}, got); diff != "" {
			t.Errorf("after SetAlways (-want +got):\n%s", diff)
		}
	})

	t.Run("nil equals empty", func(t *testing.T) {
		v := observable.NewValue([]int(nil))
		if v.SetIfChanged([]int{}) {
			t.Error("SetIfChanged([]) on nil = true, want false")
		}
	})
}

func TestValue_FanOutOrder(t *testing.T) {
	v := observable.NewValue("")

	var order []int
	var handles []*observable.Observer
	for i := range 5 {
		handles = append(handles, v.Observe(func(string) { order = append(order, i) }))
	}
	defer func() {
		for _, h := range handles {
			h.Close()
		}
	}()

	v.SetIfChanged("x")

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, order); diff != "" {
		t.Errorf("notification order (-want +got):\n%s", diff)
	}
}

func TestValue_NoReplayOnObserve(t *testing.T) {
	v := observable.NewValue(7)

	called := false
	obs := v.Observe(func(int) { called = true })
	defer obs.Close()

	if called {
		t.Error("Observe invoked callback without WithTrigger")
	}
}

func TestValue_WithTrigger(t *testing.T) {
	v := observable.NewValue(7)

	got := 0
	obs := v.Observe(func(n int) { got = n }, observable.WithTrigger())
	defer obs.Close()

	if got != 7 {
		t.Errorf("triggered value = %d, want 7", got)
	}
}

func TestValue_Close(t *testing.T) {
	v := observable.NewValue(false)

	calls := 0
	keep := v.Observe(func(bool) {})
	defer keep.Close()

	obs := v.Observe(func(bool) { calls++ })
	if n := v.ObserversCount(); n != 2 {
		t.Fatalf("ObserversCount() = %d, want 2", n)
	}

	obs.Close()
	obs.Close()

	if n := v.ObserversCount(); n != 1 {
		t.Errorf("ObserversCount() after Close = %d, want 1", n)
	}
	v.SetAlways(true)
	if calls != 0 {
		t.Errorf("closed observer ran %d times, want 0", calls)
	}
}

func TestObserver_CloseZeroValue(t *testing.T) {
	var obs observable.Observer
	obs.Close()
	obs.Close()

	var nilObs *observable.Observer
	nilObs.Close()
}

func TestValue_CloseDuringNotify(t *testing.T) {
	v := observable.NewValue(0)

	var self *observable.Observer
	calls := 0
	self = v.Observe(func(int) {
		calls++
		self.Close()
	})

	v.SetAlways(1)
	v.SetAlways(2)

	if calls != 1 {
		t.Errorf("self-closing observer ran %d times, want 1", calls)
	}
}

func TestValue_DroppedHandleExpires(t *testing.T) {
	v := observable.NewValue(0)
	v.Observe(func(int) {})

	deadline := time.Now().Add(2 * time.Second)
	for v.ObserversCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("dropped observer was never removed")
		}
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestValue_ObserverIDsUnique(t *testing.T) {
	v := observable.NewValue(0)
	a := v.Observe(func(int) {})
	b := v.Observe(func(int) {})
	defer a.Close()
	defer b.Close()

	if a.ID() == b.ID() {
		t.Errorf("observer IDs collide: %s", a.ID())
	}
}

func TestValue_NewValueFunc(t *testing.T) {
	type point struct{ x, y int }
	v := observable.NewValueFunc(point{}, func(a, b point) bool { return a == b })

	if v.SetIfChanged(point{}) {
		t.Error("SetIfChanged(zero) = true, want false")
	}
	if !v.SetIfChanged(point{1, 2}) {
		t.Error("SetIfChanged({1,2}) = false, want true")
	}
}

func TestValue_UnexportedFields(t *testing.T) {
	type point struct{ x, y int }
	v := observable.NewValue(point{})

	var got []point
	obs := v.Observe(func(p point) { got = append(got, p) })
	defer obs.Close()

	if v.SetIfChanged(point{}) {
		t.Error("SetIfChanged(zero) = true, want false")
	}
	if !v.SetIfChanged(point{1, 2}) {
		t.Error("SetIfChanged({1,2}) = false, want true")
	}
	if v.SetIfChanged(point{1, 2}) {
		t.Error("second SetIfChanged({1,2}) = true, want false")
	}
	if len(got) != 1 || got[0] != (point{1, 2}) {
		t.Errorf("callbacks = %v, want [{1 2}]", got)
	}

	l := observable.NewList(point{1, 2}, point{3, 4})
	if i := l.IndexOf(point{3, 4}); i != 1 {
		t.Errorf("IndexOf({3,4}) = %d, want 1", i)
	}
}

func TestValue_Errors(t *testing.T) {
	errA := errors.New("a")
	v := observable.NewValue[error](nil)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil to error", err: errA, want: true},
		{name: "same error", err: errA, want: false},
		{name: "distinct error with same text", err: errors.New("a"), want: true},
		{name: "back to nil", err: nil, want: true},
		{name: "nil again", err: nil, want: false},
	}

	for _, tt := range tests {
		if got := v.SetIfChanged(tt.err); got != tt.want {
			t.Errorf("%s: SetIfChanged(%v) = %v, want %v", tt.name, tt.err, got, tt.want)
		}
	}
}
