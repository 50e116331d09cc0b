package action

import (
	"fmt"
	"math"
)

// Input is one named value of an input bag.
type Input struct {
	Name  string
	Value any
}

// Inputs is an ordered, named input bag. It is passed verbatim to the
// producer and its values, in order, form the tracked change set.
type Inputs []Input

// In builds an Inputs from alternating name/value pairs.
// It panics if a name is not a string or a value is missing.
func In(pairs ...any) Inputs {
	if len(pairs)%2 != 0 {
		panic("action.In: odd number of arguments")
	}
	out := make(Inputs, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("action.In: name at %d is %T, want string", i, pairs[i]))
		}
		out = append(out, Input{Name: name, Value: pairs[i+1]})
	}
	return out
}

// Values returns the bag's values in order.
func (in Inputs) Values() []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v.Value
	}
	return out
}

// Get returns the first value stored under name.
func (in Inputs) Get(name string) (any, bool) {
	for _, v := range in {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Int reads name as an int. Any Go integer kind is accepted.
func (in Inputs) Int(name string) (int, error) {
	v, ok := in.Get(name)
	if !ok {
		return 0, fmt.Errorf("input %q: missing", name)
	}
	var (
		n   int64
		big bool
	)
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		n, big = int64(x), uint64(x) > math.MaxInt
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		n, big = int64(x), x > math.MaxInt
	default:
		return 0, fmt.Errorf("input %q: %T is not an integer", name, v)
	}
	if big || n > math.MaxInt || n < math.MinInt {
		return 0, fmt.Errorf("input %q: %v overflows int", name, v)
	}
	return int(n), nil
}

// String reads name as a string.
func (in Inputs) String(name string) (string, error) {
	v, ok := in.Get(name)
	if !ok {
		return "", fmt.Errorf("input %q: missing", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("input %q: %T is not a string", name, v)
	}
	return s, nil
}

// With returns a copy of the bag with name set to value. An existing entry
// keeps its position; a new one is appended.
func (in Inputs) With(name string, value any) Inputs {
	out := make(Inputs, len(in), len(in)+1)
	copy(out, in)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Input{Name: name, Value: value})
}
