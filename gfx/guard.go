package gfx

const guardSeed = 0x1E37

func hashRow(row []uint16) uint16 {
	h := uint16(guardSeed)
	for _, p := range row {
		h = (h << 1) ^ p ^ (h >> 15)
	}
	return h
}

// guard hashes the rows bordering the visible surface and returns a check
// that re-hashes them. Callers defer the check so it runs on every return.
//
//	defer c.guard()()
func (c *Context) guard() func() {
	if !debugChecks {
		return nop
	}
	top := hashRow(c.fb.topGuard())
	bottom := hashRow(c.fb.bottomGuard())
	return func() {
		if hashRow(c.fb.topGuard()) != top {
			c.fail("write above the visible surface")
		}
		if hashRow(c.fb.bottomGuard()) != bottom {
			c.fail("write below the visible surface")
		}
	}
}

func nop() {}
