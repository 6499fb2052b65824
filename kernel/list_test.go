package main

import "testing"

func TestTlistPushBackOrder(t *testing.T) {
	var l tlist
	a := &thread{name: "a"}
	b := &thread{name: "b"}
	c := &thread{name: "c"}

	l.pushBack(a)
	l.pushBack(b)
	l.pushBack(c)

	if l.len != 3 {
		t.Fatalf("len = %d, want 3", l.len)
	}

	var order []string
	l.forEach(func(th *thread) { order = append(order, th.name) })
	want := []string{"a", "b", "c"}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("order[%d] = %s, want %s", i, order[i], name)
		}
	}
}

func TestTlistRemoveMiddle(t *testing.T) {
	var l tlist
	a := &thread{name: "a"}
	b := &thread{name: "b"}
	c := &thread{name: "c"}
	l.pushBack(a)
	l.pushBack(b)
	l.pushBack(c)

	l.remove(b)

	if l.len != 2 {
		t.Fatalf("len = %d, want 2", l.len)
	}
	if b.readyOwner != nil {
		t.Errorf("removed thread still has a readyOwner")
	}

	var order []string
	l.forEach(func(th *thread) { order = append(order, th.name) })
	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("order after remove = %v, want [a c]", order)
	}
}

func TestTlistPopFrontFIFO(t *testing.T) {
	var l tlist
	a := &thread{name: "a"}
	b := &thread{name: "b"}
	l.pushBack(a)
	l.pushBack(b)

	if got := l.popFront(); got != a {
		t.Errorf("popFront = %v, want a", got)
	}
	if got := l.popFront(); got != b {
		t.Errorf("popFront = %v, want b", got)
	}
	if got := l.popFront(); got != nil {
		t.Errorf("popFront on empty = %v, want nil", got)
	}
	if !l.empty() {
		t.Errorf("list should be empty")
	}
}
