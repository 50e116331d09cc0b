package action

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerFirstObserveDoesNotSchedule(t *testing.T) {
	var tr Tracker
	require.False(t, tr.Observe(1, "a"))
	require.Equal(t, uint64(0), tr.Key())
	_, ok := tr.Publish()
	require.False(t, ok)
	require.Equal(t, uint64(0), tr.Key())
}

func TestTrackerIncrementsOncePerChange(t *testing.T) {
	var tr Tracker
	tr.Observe(1)

	steps := []struct {
		values  []any
		changed bool
		key     uint64
	}{
		{values: []any{1}, changed: false, key: 0},
		{values: []any{2}, changed: true, key: 1},
		{values: []any{2}, changed: false, key: 1},
		{values: []any{2, 3}, changed: true, key: 2},
		{values: []any{2}, changed: true, key: 3},
		{values: []any{2}, changed: false, key: 3},
	}
	for i, st := range steps {
		changed := tr.Observe(st.values...)
		require.Equal(t, st.changed, changed, "step %d", i)
		require.Equal(t, st.key-boolToKey(changed), tr.Key(), "step %d: key before publish", i)
		key, ok := tr.Publish()
		require.Equal(t, st.changed, ok, "step %d", i)
		require.Equal(t, st.key, key, "step %d", i)
	}
}

func boolToKey(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func TestTrackerIsPositional(t *testing.T) {
	var tr Tracker
	tr.Observe("a", "b")
	require.True(t, tr.Observe("b", "a"))
}

func TestTrackerRepeatedDetectionSchedulesOnce(t *testing.T) {
	var tr Tracker
	tr.Observe(1)
	require.True(t, tr.Observe(2))
	require.False(t, tr.Observe(2))
	require.False(t, tr.Observe(2))
	require.Equal(t, 1, tr.Pending())

	key, ok := tr.Publish()
	require.True(t, ok)
	require.Equal(t, uint64(1), key)
	_, ok = tr.Publish()
	require.False(t, ok)
}

func TestTrackerNaNIsStable(t *testing.T) {
	var tr Tracker
	tr.Observe(math.NaN())
	for i := 0; i < 3; i++ {
		require.False(t, tr.Observe(math.NaN()))
	}
	require.Zero(t, tr.Pending())
}

func TestTrackerSnapshotIsCopied(t *testing.T) {
	var tr Tracker
	values := []any{1, 2}
	tr.Observe(values...)
	values[0] = 9
	require.False(t, tr.Observe(1, 2))
}

func TestShallowEqual(t *testing.T) {
	type point struct{ X, Y int }
	type withSlice struct{ V any }
	s := []int{1, 2}
	m := map[string]int{"a": 1}
	p := &point{1, 2}

	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil value", nil, 0, false},
		{"ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", int32(1), int64(1), false},
		{"strings", "roggc", "roggc", true},
		{"structs", point{1, 2}, point{1, 2}, true},
		{"same slice", s, s, true},
		{"resliced", s, s[:1], false},
		{"fresh slice", []int{1, 2}, []int{1, 2}, false},
		{"same map", m, m, true},
		{"fresh map", map[string]int{"a": 1}, map[string]int{"a": 1}, false},
		{"same pointer", p, p, true},
		{"fresh pointer", &point{1, 2}, &point{1, 2}, false},
		{"uncomparable field", withSlice{V: []int{1}}, withSlice{V: []int{1}}, false},
		{"NaN", math.NaN(), math.NaN(), true},
		{"float32 NaN", float32(math.NaN()), float32(math.NaN()), true},
		{"NaN number", math.NaN(), 1.0, false},
		{"complex NaN", complex(math.NaN(), 1), complex(math.NaN(), 1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ShallowEqual(tc.a, tc.b))
		})
	}
}

func TestInputsAccessors(t *testing.T) {
	in := In("id", int64(7), "name", "roggc")
	require.Equal(t, []any{int64(7), "roggc"}, in.Values())

	id, err := in.Int("id")
	require.NoError(t, err)
	require.Equal(t, 7, id)

	name, err := in.String("name")
	require.NoError(t, err)
	require.Equal(t, "roggc", name)

	_, err = in.Int("name")
	require.Error(t, err)
	_, err = in.String("missing")
	require.Error(t, err)

	next := in.With("id", 8)
	require.Equal(t, []any{8, "roggc"}, next.Values())
	require.Equal(t, []any{int64(7), "roggc"}, in.Values())
	require.Equal(t, []any{int64(7), "roggc", true}, in.With("debug", true).Values())
}

func TestInputsIntRejectsOverflow(t *testing.T) {
	_, err := In("id", uint64(math.MaxUint64)).Int("id")
	require.ErrorContains(t, err, "overflows int")

	_, err = In("id", uint(math.MaxUint)).Int("id")
	require.ErrorContains(t, err, "overflows int")

	n, err := In("id", int64(-5)).Int("id")
	require.NoError(t, err)
	require.Equal(t, -5, n)
}

func TestInPanicsOnOddArguments(t *testing.T) {
	require.Panics(t, func() { In("id") })
	require.Panics(t, func() { In(1, 2) })
}
