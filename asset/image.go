package asset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Load decodes a PNG, GIF or JPEG file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", path, err)
	}
	return m, nil
}

// ScaleImage enlarges m by an integer factor with nearest-neighbour sampling.
func ScaleImage(m image.Image, factor int) image.Image {
	if factor <= 1 {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes m to path, replacing any existing file.
func WritePNG(path string, m image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
