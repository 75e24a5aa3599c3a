package asset

import (
	"io"

	"graphx/gfx"
)

// Sprite blobs start with a width byte and a height byte, followed by the
// sprite data: Width*Height indices for raw sprites, the run stream for RLE
// sprites.

// EncodeSprite writes s as a raw sprite blob.
func EncodeSprite(w io.Writer, s *gfx.Sprite) error {
	if s.Width > 255 || s.Height > 255 {
		return ErrSpriteTooLarge
	}
	if _, err := w.Write([]byte{byte(s.Width), byte(s.Height)}); err != nil {
		return err
	}
	_, err := w.Write(s.Data[:s.Width*s.Height])
	return err
}

// DecodeSprite parses a raw sprite blob. The returned sprite references b.
func DecodeSprite(b []byte) (*gfx.Sprite, error) {
	if len(b) < 2 {
		return nil, ErrShortBlob
	}
	w, h := int(b[0]), int(b[1])
	if len(b)-2 < w*h {
		return nil, ErrShortBlob
	}
	return &gfx.Sprite{Width: w, Height: h, Data: b[2 : 2+w*h]}, nil
}

// EncodeRLETSprite writes s as an RLE sprite blob.
func EncodeRLETSprite(w io.Writer, s *gfx.RLETSprite) error {
	if s.Width > 255 || s.Height > 255 {
		return ErrSpriteTooLarge
	}
	if _, err := w.Write([]byte{byte(s.Width), byte(s.Height)}); err != nil {
		return err
	}
	_, err := w.Write(s.Data)
	return err
}

// DecodeRLETSprite parses an RLE sprite blob and checks that every row's runs
// add up to the width. The drawing code trusts the run stream, so blobs from
// outside the program should come through here.
func DecodeRLETSprite(b []byte) (*gfx.RLETSprite, error) {
	if len(b) < 2 {
		return nil, ErrShortBlob
	}
	w, h := int(b[0]), int(b[1])
	data := b[2:]

	i := 0
	for row := 0; row < h; row++ {
		col := 0
		for {
			if i >= len(data) {
				return nil, ErrShortBlob
			}
			col += int(data[i])
			i++
			if col >= w {
				break
			}
			if i >= len(data) {
				return nil, ErrShortBlob
			}
			n := int(data[i])
			i++
			if i+n > len(data) {
				return nil, ErrShortBlob
			}
			i += n
			col += n
			if col >= w {
				break
			}
		}
		if col != w {
			return nil, ErrBadRuns
		}
	}
	return &gfx.RLETSprite{Width: w, Height: h, Data: data[:i]}, nil
}
