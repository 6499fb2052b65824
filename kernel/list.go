package main

// tlist is an intrusive doubly-linked list over a thread's readyPrev/
// readyNext/readyOwner fields. It backs the round-robin ready list, each
// of the 64 MLFQ priority queues, and the wait set: a thread's ready-set
// membership and wait-set membership are mutually exclusive, so all of
// them can safely share the same pair of link fields on the TCB instead
// of a separately allocated node, the same way kalloc.go's run/next
// reuses the page itself as the freelist node rather than allocating a
// heap-allocated container/list.Element.
type tlist struct {
	head, tail *thread
	len        int
}

func (l *tlist) empty() bool {
	return l.len == 0
}

func (l *tlist) pushBack(t *thread) {
	kassert(t.readyOwner == nil, "tlist pushBack: already on a list")
	t.readyPrev = l.tail
	t.readyNext = nil
	if l.tail != nil {
		l.tail.readyNext = t
	} else {
		l.head = t
	}
	l.tail = t
	t.readyOwner = l
	l.len++
}

func (l *tlist) remove(t *thread) {
	kassert(t.readyOwner == l, "tlist remove: not a member of this list")
	if t.readyPrev != nil {
		t.readyPrev.readyNext = t.readyNext
	} else {
		l.head = t.readyNext
	}
	if t.readyNext != nil {
		t.readyNext.readyPrev = t.readyPrev
	} else {
		l.tail = t.readyPrev
	}
	t.readyPrev = nil
	t.readyNext = nil
	t.readyOwner = nil
	l.len--
}

func (l *tlist) popFront() *thread {
	t := l.head
	if t == nil {
		return nil
	}
	l.remove(t)
	return t
}

// forEach visits every member; fn must not insert into l, but may remove
// the thread it was just handed (the wait-set drain in tick.go relies on
// this to unlink the thread it just woke).
func (l *tlist) forEach(fn func(t *thread)) {
	t := l.head
	for t != nil {
		next := t.readyNext
		fn(t)
		t = next
	}
}
