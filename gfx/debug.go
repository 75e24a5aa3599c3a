//go:build !gfx_release

package gfx

// debugChecks enables the boundary guard and internal assertions.
const debugChecks = true
