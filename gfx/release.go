//go:build gfx_release

package gfx

const debugChecks = false
