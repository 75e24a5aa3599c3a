package gfx

// ClipRegion bounds pixel writes of clipped drawing calls. Max bounds are
// exclusive. Nothing checks that the region is ordered or lies inside the
// frame buffer.
type ClipRegion struct {
	MinX, MinY int
	MaxX, MaxY int
}

// SetRegion replaces the bounds without validating them.
func (r *ClipRegion) SetRegion(minX, minY, maxX, maxY int) {
	r.MinX = minX
	r.MinY = minY
	r.MaxX = maxX
	r.MaxY = maxY
}

// ClipRect intersects a rectangle with the region. The resulting width or
// height is zero or negative when the intersection is empty.
func (r *ClipRegion) ClipRect(x, y, w, h int) (int, int, int, int) {
	x2 := x + w
	y2 := y + h
	x = max(x, r.MinX)
	y = max(y, r.MinY)
	x2 = min(x2, r.MaxX)
	y2 = min(y2, r.MaxY)
	return x, y, x2 - x, y2 - y
}

// ClipSprite returns the visible source window [sx0,sx1) x [sy0,sy1) of a
// w x h image placed at (x, y). The window is empty when sx1 <= sx0 or
// sy1 <= sy0.
func (r *ClipRegion) ClipSprite(x, y, w, h int) (sx0, sy0, sx1, sy1 int) {
	sx0 = max(x, r.MinX) - x
	sy0 = max(y, r.MinY) - y
	sx1 = min(x+w, r.MaxX) - x
	sy1 = min(y+h, r.MaxY) - y
	return sx0, sy0, sx1, sy1
}

// ClipTile is ClipSprite for a tilemap cell of tw x th pixels.
func (r *ClipRegion) ClipTile(x, y, tw, th int) (sx0, sy0, sx1, sy1 int) {
	return r.ClipSprite(x, y, tw, th)
}
