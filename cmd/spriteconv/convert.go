package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"graphx/asset"
	"graphx/gfx"
	"graphx/hal"
)

type convertOptions struct {
	Out         string
	Colors      int
	Transparent bool
	RLE         bool
}

// convert writes opts.Out+".pal" (1-5-5-5 palette) and opts.Out+".spr"
// (sprite blob) for the image at path.
func convert(path string, opts convertOptions, logger *log.Logger) error {
	m, err := asset.Load(path)
	if err != nil {
		return err
	}
	pm, err := asset.Quantize(m, opts.Colors, opts.Transparent)
	if err != nil {
		return err
	}
	logger.Printf("%s: %dx%d, %d colors", path, pm.Rect.Dx(), pm.Rect.Dy(), len(pm.Palette))

	var spr bytes.Buffer
	spr.WriteByte(blobKind(opts))
	if opts.RLE {
		s, err := asset.ToRLETSprite(pm)
		if err != nil {
			return err
		}
		if err := asset.EncodeRLETSprite(&spr, s); err != nil {
			return err
		}
	} else if err := asset.EncodeSprite(&spr, asset.ToSprite(pm)); err != nil {
		return err
	}

	if err := os.WriteFile(opts.Out+".pal", asset.EncodePalette1555(pm.Palette), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(opts.Out+".spr", spr.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Printf("wrote %s.pal (%d bytes), %s.spr (%d bytes)", opts.Out, len(pm.Palette)*2, opts.Out, spr.Len())
	return nil
}

// The .spr file starts with a kind byte ahead of the asset blob.
const (
	kindRaw         byte = 'R'
	kindTransparent byte = 'T'
	kindRLE         byte = 'L'
)

func blobKind(opts convertOptions) byte {
	switch {
	case opts.RLE:
		return kindRLE
	case opts.Transparent:
		return kindTransparent
	}
	return kindRaw
}

// preview draws the sprite written by convert at prefix onto a checkerboard,
// flushes it to a simulated panel and saves the panel as a PNG.
func preview(prefix, out string, scale int, logger *log.Logger) error {
	pal, err := os.ReadFile(prefix + ".pal")
	if err != nil {
		return err
	}
	spr, err := os.ReadFile(prefix + ".spr")
	if err != nil {
		return err
	}
	if len(spr) < 1 {
		return asset.ErrShortBlob
	}

	panel := hal.NewMemFramebuffer(hal.PanelWidth, hal.PanelHeight)
	fb := gfx.NewFrameBuffer(hal.PanelWidth, hal.PanelHeight)
	ctx := gfx.NewContext(fb, gfx.Config{Transport: gfx.NewDirectTransport(panel, nil)})

	// Checkerboard backdrop in the two entries past the sprite palette.
	n := len(pal) / 2
	if n > 254 {
		n = 254
	}
	ctx.SetPalette(pal, n*2, 0)
	ctx.Palette.Set(uint8(n), hal.RGB565(0x40, 0x40, 0x40))
	ctx.Palette.Set(uint8(n+1), hal.RGB565(0x60, 0x60, 0x60))
	for y := 0; y < fb.Height; y += 8 {
		for x := 0; x < fb.Width; x += 8 {
			ctx.SetColor(uint8(n + (x/8+y/8)%2))
			ctx.FillRectangleNoClip(x, y, 8, 8)
		}
	}

	var w, h int
	switch spr[0] {
	case kindRaw, kindTransparent:
		s, err := asset.DecodeSprite(spr[1:])
		if err != nil {
			return err
		}
		w, h = s.Width, s.Height
		if spr[0] == kindTransparent {
			ctx.SetTransparentColor(asset.TransparentIndex)
			ctx.TransparentSprite(s, (fb.Width-w)/2, (fb.Height-h)/2)
		} else {
			ctx.Sprite(s, (fb.Width-w)/2, (fb.Height-h)/2)
		}
	case kindRLE:
		s, err := asset.DecodeRLETSprite(spr[1:])
		if err != nil {
			return err
		}
		w, h = s.Width, s.Height
		ctx.RLETSprite(s, (fb.Width-w)/2, (fb.Height-h)/2)
	default:
		return fmt.Errorf("%s.spr: unknown sprite kind %q", prefix, spr[0])
	}
	ctx.BlitBuffer()
	logger.Printf("rendered %dx%d sprite", w, h)

	return asset.WritePNG(out, asset.ScaleImage(hal.Snapshot(panel), scale))
}
