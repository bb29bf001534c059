package stats

import "sync/atomic"

type counter struct {
	count atomic.Uint64
}

func (c *counter) incr(step uint64) {
	c.count.Add(step)
}

func (c *counter) get() uint64 {
	return c.count.Load()
}

func (c *counter) reset() {
	c.count.Store(0)
}
