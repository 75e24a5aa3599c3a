package main

import (
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphx/asset"
	"graphx/hal"
)

func writeTestImage(t *testing.T, dir string) string {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 2; x < 6; x++ {
			m.Set(x, y, color.NRGBA{R: 0xF8, G: 0x80, A: 0xFF})
		}
	}
	path := filepath.Join(dir, "in.png")
	require.NoError(t, asset.WritePNG(path, m))
	return path
}

func TestConvertAndPreview(t *testing.T) {
	discard := log.New(io.Discard, "", 0)

	for _, opts := range []convertOptions{
		{Colors: 4},
		{Colors: 4, Transparent: true},
		{Colors: 4, Transparent: true, RLE: true},
	} {
		dir := t.TempDir()
		in := writeTestImage(t, dir)
		opts.Out = filepath.Join(dir, "out")

		require.NoError(t, convert(in, opts, discard))

		pal, err := os.ReadFile(opts.Out + ".pal")
		require.NoError(t, err)
		assert.NotEmpty(t, pal)
		assert.Zero(t, len(pal)%2)

		spr, err := os.ReadFile(opts.Out + ".spr")
		require.NoError(t, err)
		assert.Equal(t, blobKind(opts), spr[0])

		png := filepath.Join(dir, "preview.png")
		require.NoError(t, preview(opts.Out, png, 2, discard))

		m, err := asset.Load(png)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, hal.PanelWidth*2, hal.PanelHeight*2), m.Bounds())
	}
}

func TestPreviewRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(prefix+".pal", []byte{0, 0}, 0o644))
	require.NoError(t, os.WriteFile(prefix+".spr", []byte{'?', 1, 1, 0}, 0o644))

	err := preview(prefix, filepath.Join(dir, "p.png"), 1, log.New(io.Discard, "", 0))
	require.Error(t, err)
}
