package tilegrid

// Key identifies one load of a map. Version is bumped to force a reload of the
// same map (for example on retry).
type Key struct {
	Map     string
	Version uint64
}

// Cache holds the grid of the current map. Geometry is only rebuilt when the
// key changes; every other frame gets the cached grid back.
type Cache struct {
	key    Key
	grid   *Grid
	builds int
}

// Resolve returns the grid for key. load is only called when the key differs
// from the cached one; it reports false while the raw map is not loaded yet, in
// which case Resolve returns nil and will ask again next frame. rebuilt is true
// exactly on the call that derived a new grid.
func (c *Cache) Resolve(key Key, load func() (Source, bool)) (grid *Grid, rebuilt bool) {
	if c.grid != nil && c.key == key {
		return c.grid, false
	}
	if load == nil {
		return nil, false
	}
	src, ok := load()
	if !ok {
		return nil, false
	}
	c.key = key
	c.grid = Build(src)
	c.builds++
	return c.grid, true
}

// Invalidate drops the cached grid so the next Resolve derives it again, even
// for the same key.
func (c *Cache) Invalidate() {
	c.key = Key{}
	c.grid = nil
}

// Builds counts how often a grid was derived.
func (c *Cache) Builds() int {
	return c.builds
}
