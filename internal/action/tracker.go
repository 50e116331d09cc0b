package action

// Tracker turns an ordered list of values into a version key.
//
// Detection and publication are separate steps: Observe compares the values
// with the previous snapshot and schedules one increment per change, Publish
// applies a scheduled increment. Callers run Publish on a later cycle than
// the Observe that scheduled it, so repeated detection of the same values
// never yields more than one visible key update.
//
// The zero value is ready to use and reports key 0.
type Tracker struct {
	prev    []any
	seen    bool
	key     uint64
	pending int
}

// Observe records values as the current snapshot and reports whether an
// increment was scheduled. The first call never schedules one.
func (t *Tracker) Observe(values ...any) bool {
	snapshot := append([]any(nil), values...)
	if !t.seen {
		t.seen = true
		t.prev = snapshot
		return false
	}
	if valuesEqual(t.prev, snapshot) {
		return false
	}
	t.prev = snapshot
	t.pending++
	return true
}

// Publish applies one scheduled increment and returns the new key.
// It returns the unchanged key and false when nothing is scheduled.
func (t *Tracker) Publish() (uint64, bool) {
	if t.pending == 0 {
		return t.key, false
	}
	t.pending--
	t.key++
	return t.key, true
}

// Key returns the last published version key.
func (t *Tracker) Key() uint64 { return t.key }

// Pending returns the number of scheduled but unpublished increments.
func (t *Tracker) Pending() int { return t.pending }
