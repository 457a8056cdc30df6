package layout

// cacheSlots is the number of size-only results kept per node.
const cacheSlots = 8

type cacheKey struct {
	known     KnownSize
	parent    KnownSize
	available AvailableSize
}

func newCacheKey(in sizingInput) cacheKey {
	return cacheKey{
		known:  in.known,
		parent: in.parent,
		available: AvailableSize{
			Width:  spaceOrMax(in.available.Width),
			Height: spaceOrMax(in.available.Height),
		},
	}
}

type cacheEntry struct {
	key cacheKey
	out sizingOutput
}

// Cache stores sizing results for one node: one slot for the last full
// layout and a small ring of size-only results, each keyed by the
// constraints that produced it.
type Cache struct {
	final    cacheEntry
	hasFinal bool
	sizes    [cacheSlots]cacheEntry
	count    int
	next     int
}

// Clear drops every stored result.
func (c *Cache) Clear() {
	*c = Cache{}
}

// Len returns the number of stored results.
func (c *Cache) Len() int {
	n := c.count
	if c.hasFinal {
		n++
	}
	return n
}

func (c *Cache) get(in sizingInput) (sizingOutput, bool) {
	key := newCacheKey(in)
	if in.mode == modePerform {
		if c.hasFinal && c.final.key == key {
			return c.final.out, true
		}
		return sizingOutput{}, false
	}

	// A full layout also answers a size query for the same constraints.
	if c.hasFinal && c.final.key == key {
		return c.final.out, true
	}
	for i := range c.count {
		if c.sizes[i].key == key {
			return c.sizes[i].out, true
		}
	}
	return sizingOutput{}, false
}

func (c *Cache) store(in sizingInput, out sizingOutput) {
	entry := cacheEntry{key: newCacheKey(in), out: out}
	if in.mode == modePerform {
		c.final = entry
		c.hasFinal = true
		return
	}
	c.sizes[c.next] = entry
	c.next = (c.next + 1) % cacheSlots
	c.count = min(c.count+1, cacheSlots)
}
