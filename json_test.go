package lflist

import (
	check "gopkg.in/check.v1"
)

type JSONSuite struct{}

var _ = check.Suite(&JSONSuite{})

func (s *JSONSuite) TestMarshalSnapshot(c *check.C) {
	l := New[int]()
	for _, v := range []int{3, 1, 4} {
		l.Append(v)
	}
	data, err := l.MarshalJSON()
	c.Assert(err, check.IsNil)
	c.Assert(string(data), check.Equals, "[3,1,4]")
}

func (s *JSONSuite) TestMarshalEmpty(c *check.C) {
	l := New[string]()
	data, err := l.MarshalJSON()
	c.Assert(err, check.IsNil)
	c.Assert(string(data), check.Equals, "[]")
}

func (s *JSONSuite) TestUnmarshalAppendsInOrder(c *check.C) {
	l := New[int]()
	l.Append(1)
	c.Assert(l.UnmarshalJSON([]byte("[2,3]")), check.IsNil)
	c.Assert(collect(l.Iter()), check.DeepEquals, []int{1, 2, 3})
}

func (s *JSONSuite) TestUnmarshalErrorLeavesListUntouched(c *check.C) {
	l := New[int]()
	l.Append(1)
	err := l.UnmarshalJSON([]byte(`{"not":"an array"}`))
	c.Assert(err, check.NotNil)
	c.Assert(l.Len(), check.Equals, uint64(1))
	c.Assert(collect(l.Iter()), check.DeepEquals, []int{1})
}

func (s *JSONSuite) TestRoundTrip(c *check.C) {
	l := New[string]()
	l.Append("a")
	l.Append("b")
	data, err := l.MarshalJSON()
	c.Assert(err, check.IsNil)

	decoded := New[string]()
	c.Assert(decoded.UnmarshalJSON(data), check.IsNil)
	c.Assert(decoded.Len(), check.Equals, uint64(2))

	it := decoded.Iter()
	var got []string
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	c.Assert(got, check.DeepEquals, []string{"a", "b"})
}
