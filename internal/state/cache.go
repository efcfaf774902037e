package state

// detailCache keys detail state by entity id so two open detail views
// never overwrite each other. Eviction is least-recently-used past cap,
// plus explicit deletion when the view navigates away. Not safe for
// concurrent use; the owning store's lock guards it.
type detailCache[V any] struct {
	cap     int
	entries map[int64]*V
	order   []int64 // least recently used first
}

func newDetailCache[V any](capacity int) *detailCache[V] {
	return &detailCache[V]{
		cap:     capacity,
		entries: make(map[int64]*V),
	}
}

// get returns the entry for id without creating it.
func (c *detailCache[V]) get(id int64) (*V, bool) {
	v, ok := c.entries[id]
	if ok {
		c.touch(id)
	}
	return v, ok
}

// getOrCreate returns the entry for id, creating it and evicting the
// least recently used entry when the cache is full.
func (c *detailCache[V]) getOrCreate(id int64) *V {
	if v, ok := c.entries[id]; ok {
		c.touch(id)
		return v
	}
	if len(c.entries) >= c.cap && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	v := new(V)
	c.entries[id] = v
	c.order = append(c.order, id)
	return v
}

func (c *detailCache[V]) delete(id int64) {
	if _, ok := c.entries[id]; !ok {
		return
	}
	delete(c.entries, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *detailCache[V]) touch(id int64) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}
