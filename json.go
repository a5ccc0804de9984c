package lflist

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the list as the JSON array of one snapshot, in
// append order. Concurrent mutation during the call affects which snapshot
// is encoded, never the validity of the output.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	it := l.Iter()
	values := make([]T, 0, it.Len())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		values = append(values, v)
	}
	return json.Marshal(values)
}

// UnmarshalJSON appends the elements of a JSON array to the list in order.
// It does not clear first, so decoding into a non-empty list extends it.
// On a decode error the list is untouched.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	for _, v := range values {
		l.Append(v)
	}
	return nil
}
