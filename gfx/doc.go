// Package gfx is an indexed-color software renderer for a fixed-size RGB565
// frame buffer.
//
// Sprites, RLE sprites, tilemaps, shapes and text are drawn through a single
// Context into an off-screen FrameBuffer, with palette lookups and clipping
// applied per pixel. A Transport copies all or part of the buffer to the
// panel, either by direct copy or through a DMA-style transfer channel.
//
// NoClip variants trust their inputs completely and never validate
// coordinates. Simulation builds (the
// default) wrap every drawing call in a boundary guard that hashes the rows
// just outside the visible surface and asserts that they did not change.
// Build with the `gfx_release` tag to compile the checks out.
//
// A Context is not safe for concurrent use. The game loop is its only writer.
package gfx
