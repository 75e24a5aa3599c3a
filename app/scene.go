package app

import (
	"image/color"

	"graphx/asset"
	"graphx/gfx"
)

// Palette slots.
const (
	colClear uint8 = iota
	colSky
	colCloud
	colBrick
	colMortar
	colGrass
	colDirt
	colSkin
	colShirt
	colEnemy
	colEye
	colCoin
	colShine
	colText
	colHUD
	colSun
	colBorder
	numColors
)

var paletteRGB = color.Palette{
	colClear:  color.RGBA{A: 0xFF},
	colSky:    color.RGBA{R: 0x58, G: 0x90, B: 0xF8, A: 0xFF},
	colCloud:  color.RGBA{R: 0xF8, G: 0xF8, B: 0xF8, A: 0xFF},
	colBrick:  color.RGBA{R: 0xB8, G: 0x48, B: 0x10, A: 0xFF},
	colMortar: color.RGBA{R: 0x50, G: 0x20, B: 0x08, A: 0xFF},
	colGrass:  color.RGBA{R: 0x30, G: 0xB8, B: 0x30, A: 0xFF},
	colDirt:   color.RGBA{R: 0x88, G: 0x58, B: 0x18, A: 0xFF},
	colSkin:   color.RGBA{R: 0xF8, G: 0xB8, B: 0x88, A: 0xFF},
	colShirt:  color.RGBA{R: 0xD8, G: 0x28, B: 0x28, A: 0xFF},
	colEnemy:  color.RGBA{R: 0x98, G: 0x50, B: 0x20, A: 0xFF},
	colEye:    color.RGBA{R: 0xF8, G: 0xF8, B: 0xF8, A: 0xFF},
	colCoin:   color.RGBA{R: 0xF8, G: 0xC0, B: 0x20, A: 0xFF},
	colShine:  color.RGBA{R: 0xF8, G: 0xF0, B: 0xA0, A: 0xFF},
	colText:   color.RGBA{R: 0xF8, G: 0xF8, B: 0xF8, A: 0xFF},
	colHUD:    color.RGBA{R: 0x10, G: 0x10, B: 0x28, A: 0xFF},
	colSun:    color.RGBA{R: 0xF8, G: 0xE0, B: 0x40, A: 0xFF},
	colBorder: color.RGBA{R: 0x80, G: 0x80, B: 0xA0, A: 0xFF},
}

// artKey maps sprite art characters to palette slots. '.' is transparent.
var artKey = map[byte]uint8{
	'.': colClear,
	's': colSky,
	'c': colCloud,
	'b': colBrick,
	'm': colMortar,
	'g': colGrass,
	'd': colDirt,
	'k': colSkin,
	'r': colShirt,
	'e': colEnemy,
	'w': colEye,
	'o': colCoin,
	'y': colShine,
}

func spriteFromArt(art []string) *gfx.Sprite {
	s := gfx.NewSprite(len(art[0]), len(art))
	for y, row := range art {
		for x := 0; x < len(row); x++ {
			s.Data[y*s.Width+x] = artKey[row[x]]
		}
	}
	return s
}

var playerArt = []string{
	"....rrrrr...",
	"...rrrrrrrr.",
	"...kkkkkk...",
	"..kkwkkwkk..",
	"..kkkkkkkk..",
	"...kkkkkk...",
	"....kkkk....",
	"..rrrrrrrr..",
	".rrrrrrrrrr.",
	"kkrrrrrrrrkk",
	"kk.rrrrrr.kk",
	"...rrrrrr...",
	"...rr..rr...",
	"..rrr..rrr..",
	".ddd....ddd.",
	".ddd....ddd.",
}

var enemyArt = []string{
	"......ee........",
	"....eeeeee......",
	"...eeeeeeee.....",
	"..eewweewwee....",
	".eeewweewweee...",
	"eeeeeeeeeeeeee..",
	"eeeeeeeeeeeeeee.",
	".eeeeeeeeeeeee..",
	"...kkkkkkkk.....",
	"..kkkk..kkkk....",
	".ddd......ddd...",
	"dddd......dddd..",
}

var coinArt = []string{
	".oo.",
	"oyoo",
	"oyoo",
	".oo.",
}

const tileSize = 16

// Tile indices.
const (
	tileSky = iota
	tileCloud
	tileBrick
	tileGrass
	tileDirt
	numTiles
)

func solidTile(index uint8) *gfx.Sprite {
	s := gfx.NewSprite(tileSize, tileSize)
	for i := range s.Data {
		s.Data[i] = index
	}
	return s
}

func makeTiles() []*gfx.Sprite {
	tiles := make([]*gfx.Sprite, numTiles)
	tiles[tileSky] = solidTile(colSky)

	cloud := solidTile(colSky)
	for y := 4; y < 12; y++ {
		for x := 2; x < 14; x++ {
			dx, dy := x-8, (y-8)*2
			if dx*dx+dy*dy < 40 {
				cloud.Data[y*tileSize+x] = colCloud
			}
		}
	}
	tiles[tileCloud] = cloud

	brick := solidTile(colBrick)
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			shift := 0
			if (y/4)%2 == 1 {
				shift = 4
			}
			if y%4 == 3 || (x+shift)%8 == 7 {
				brick.Data[y*tileSize+x] = colMortar
			}
		}
	}
	tiles[tileBrick] = brick

	grass := solidTile(colDirt)
	for y := 0; y < 4; y++ {
		for x := 0; x < tileSize; x++ {
			grass.Data[y*tileSize+x] = colGrass
		}
	}
	tiles[tileGrass] = grass
	tiles[tileDirt] = solidTile(colDirt)
	return tiles
}

// World geometry in tiles.
const (
	worldWidth  = 64
	worldHeight = 11
	viewTilesX  = ScreenWidth / tileSize
	viewTilesY  = worldHeight
	groundRow   = 9
	groundY     = groundRow * tileSize
	playfieldH  = viewTilesY * tileSize
)

func makeWorld() *gfx.Tilemap {
	tm := &gfx.Tilemap{
		Map:        make([]byte, worldWidth*worldHeight),
		Tiles:      makeTiles(),
		TileWidth:  tileSize,
		TileHeight: tileSize,
		Width:      worldWidth,
		Height:     worldHeight,
		DrawWidth:  viewTilesX,
		DrawHeight: viewTilesY,
		FillIndex:  colSky,
	}
	for col := 0; col < worldWidth; col++ {
		*gfx.TilePtrMapped(tm, col, groundRow) = tileGrass
		*gfx.TilePtrMapped(tm, col, groundRow+1) = tileDirt
		if col%9 == 2 {
			*gfx.TilePtrMapped(tm, col, 1+col%3) = tileCloud
		}
		if m := col % 12; m >= 5 && m <= 7 {
			*gfx.TilePtrMapped(tm, col, 5) = tileBrick
		}
	}
	return tm
}

// loadPalette runs the palette through the 1-5-5-5 import path used for
// asset files.
func loadPalette(ctx *gfx.Context) {
	buf := asset.EncodePalette1555(paletteRGB)
	ctx.SetPalette(buf, len(buf), 0)
}
