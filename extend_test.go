package lflist

import (
	"context"

	check "gopkg.in/check.v1"
)

type ExtendSuite struct{}

var _ = check.Suite(&ExtendSuite{})

func (s *ExtendSuite) TestExtendConcurrentMultiset(c *check.C) {
	const n = 10_000
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}

	l := New[int]()
	c.Assert(l.ExtendConcurrent(context.Background(), values, 4), check.IsNil)
	c.Assert(l.Len(), check.Equals, uint64(n))

	seen := make(map[int]int, n)
	it := l.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		seen[v]++
	}
	c.Assert(seen, check.HasLen, n)
	for v, count := range seen {
		if count != 1 {
			c.Fatalf("element %d appended %d times", v, count)
		}
	}
}

func (s *ExtendSuite) TestExtendConcurrentSingleWorkerKeepsOrder(c *check.C) {
	l := New[int]()
	c.Assert(l.ExtendConcurrent(context.Background(), []int{1, 2, 3}, 1), check.IsNil)
	c.Assert(collect(l.Iter()), check.DeepEquals, []int{1, 2, 3})
}

func (s *ExtendSuite) TestExtendConcurrentEmptyInput(c *check.C) {
	l := New[int]()
	c.Assert(l.ExtendConcurrent(context.Background(), nil, 4), check.IsNil)
	c.Assert(l.Len(), check.Equals, uint64(0))
}

func (s *ExtendSuite) TestExtendConcurrentCancelled(c *check.C) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New[int]()
	err := l.ExtendConcurrent(ctx, []int{1, 2, 3, 4}, 2)
	c.Assert(err, check.Equals, context.Canceled)
	c.Assert(l.Len(), check.Equals, uint64(0))
}
