package reactive

import "testing"

func TestIntNode(t *testing.T) {
	n := NewInt(10)

	n.Inc()
	n.Add(5)
	n.Sub(2)
	if n.Get() != 14 {
		t.Errorf("expected 14, got %d", n.Get())
	}

	n.Mul(2)
	n.Div(4)
	if n.Get() != 7 {
		t.Errorf("expected 7, got %d", n.Get())
	}

	n.Dec()
	if n.Get() != 6 {
		t.Errorf("expected 6, got %d", n.Get())
	}
}

func TestIntNodeDerives(t *testing.T) {
	n := NewInt(0)
	doubled := Derive(n.Node, func(v int) int { return v * 2 })

	n.Add(21)
	if doubled.Get() != 42 {
		t.Errorf("expected 42, got %d", doubled.Get())
	}
}

func TestFloat64Node(t *testing.T) {
	n := NewFloat64(1.5)

	n.Mul(4)
	n.Sub(2)
	if n.Get() != 4.0 {
		t.Errorf("expected 4.0, got %v", n.Get())
	}
}

func TestBoolNode(t *testing.T) {
	n := NewBool(false)

	n.Toggle()
	if !n.Get() {
		t.Errorf("expected true after toggle")
	}

	n.SetFalse()
	n.SetTrue()
	if !n.Get() {
		t.Errorf("expected true")
	}
}

func TestStringNode(t *testing.T) {
	n := NewString("act")

	n.Prepend("re")
	n.Append("ive")
	if n.Get() != "reactive" {
		t.Errorf("expected %q, got %q", "reactive", n.Get())
	}
	if n.Len() != 8 || n.IsEmpty() {
		t.Errorf("unexpected length state: len=%d empty=%v", n.Len(), n.IsEmpty())
	}

	n.Clear()
	if !n.IsEmpty() {
		t.Errorf("expected empty after clear, got %q", n.Get())
	}
}

func TestSliceNode(t *testing.T) {
	n := NewSlice[int](nil)

	n.Append(2)
	n.Prepend(1)
	n.AppendAll(3, 4, 5)
	n.InsertAt(3, 99)

	got := n.Get()
	want := []int{1, 2, 3, 99, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	n.RemoveAt(3)
	n.RemoveFirst()
	n.RemoveLast()
	n.UpdateAt(0, func(v int) int { return v * 10 })

	got = n.Get()
	if len(got) != 3 || got[0] != 20 || got[1] != 3 || got[2] != 4 {
		t.Errorf("expected [20 3 4], got %v", got)
	}

	n.RemoveWhere(func(v int) bool { return v%2 == 0 })
	if n.Len() != 1 || n.Get()[0] != 3 {
		t.Errorf("expected [3], got %v", n.Get())
	}

	n.Clear()
	if n.Len() != 0 {
		t.Errorf("expected empty slice, got %v", n.Get())
	}
}

func TestSliceNodeNotifiesDerived(t *testing.T) {
	n := NewSlice([]int{1, 2, 3})
	sum := Derive(n.Node, func(nums []int) int {
		total := 0
		for _, v := range nums {
			total += v
		}
		return total
	})

	n.AppendAll(4, 5, 6)
	if sum.Get() != 21 {
		t.Errorf("expected 21, got %d", sum.Get())
	}
}

func TestMapNode(t *testing.T) {
	n := NewMap[string, int](nil)

	n.SetKey("a", 1)
	n.SetKey("b", 2)
	n.UpdateKey("a", func(v int) int { return v + 10 })
	n.UpdateKey("missing", func(v int) int { return v + 1 }) // no-op

	if v, ok := n.GetKey("a"); !ok || v != 11 {
		t.Errorf("expected a=11, got %d (ok=%v)", v, ok)
	}
	if !n.HasKey("b") || n.HasKey("missing") {
		t.Errorf("unexpected key presence")
	}
	if n.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", n.Len())
	}

	n.RemoveKey("a")
	if n.HasKey("a") {
		t.Errorf("expected a removed")
	}

	n.Clear()
	if n.Len() != 0 {
		t.Errorf("expected empty map, got %d entries", n.Len())
	}
}
