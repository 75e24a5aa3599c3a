// Package app is a side-scrolling demo scene that exercises the renderer:
// a scrolling tilemap, raw, flipped, scaled and RLE sprites, a HUD updated
// with partial line flushes, and an optional on-screen console.
package app

import (
	"fmt"
	"image"
	"strings"

	"graphx/console"
	"graphx/gfx"
	"graphx/hal"
	"graphx/internal/buildinfo"

	"tinygo.org/x/tinyfont/proggy"
)

// Frame buffer size. The panel is wider; the transports centre the buffer.
const (
	ScreenWidth  = 320
	ScreenHeight = 216
)

// Transport names accepted by Config.
const (
	TransportDirect  = "direct"
	TransportChannel = "channel"
)

// Config selects the transport and console for NewGame.
type Config struct {
	// Transport selects how the frame buffer reaches the panel:
	// TransportDirect (default) or TransportChannel.
	Transport string
	// Console routes game log lines to an on-screen console in the HUD.
	Console bool
}

// Game holds the scene state. Step advances it by one frame.
type Game struct {
	cfg   Config
	ctx   *gfx.Context
	panel hal.Framebuffer
	log   hal.Logger
	con   *console.Console

	world   *gfx.Tilemap
	player  *gfx.Sprite
	flipped *gfx.Sprite
	enemy   *gfx.RLETSprite
	coin    *gfx.Sprite

	frame   uint64
	scrollX int
	playerX int
	dir     int
	enemyX  int
	coinX   int // world pixels

	seconds uint
	score   uint
	coins   uint
	level   uint

	failed error
}

// New builds the scene on h and returns its per-tick step function.
func New(h hal.HAL, cfg Config) func() error {
	g, err := NewGame(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return g.Step
}

// NewGame builds the scene on h and draws the first frame.
func NewGame(h hal.HAL, cfg Config) (*Game, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: %w: no display", hal.ErrNotImplemented)
	}
	panel := disp.Framebuffer()
	if panel.Width() < ScreenWidth || panel.Height() < ScreenHeight {
		return nil, fmt.Errorf("app: panel %dx%d smaller than %dx%d", panel.Width(), panel.Height(), ScreenWidth, ScreenHeight)
	}

	var tr gfx.Transport
	switch strings.ToLower(cfg.Transport) {
	case "", TransportDirect:
		d := gfx.NewDirectTransport(panel, h.Logger())
		d.BlankSides = true
		tr = d
	case TransportChannel:
		ch := h.Channel()
		if ch == nil {
			return nil, fmt.Errorf("app: %w: no transfer channel", hal.ErrNotImplemented)
		}
		tr = gfx.NewChannelTransport(ch, panel.Width())
	default:
		return nil, fmt.Errorf("app: unknown transport %q", cfg.Transport)
	}

	fb := gfx.NewFrameBuffer(ScreenWidth, ScreenHeight)
	g := &Game{
		cfg:     cfg,
		panel:   panel,
		log:     h.Logger(),
		world:   makeWorld(),
		player:  spriteFromArt(playerArt),
		coin:    spriteFromArt(coinArt),
		enemy:   gfx.ConvertToRLETSprite(spriteFromArt(enemyArt), colClear),
		playerX: 40,
		dir:     1,
		enemyX:  ScreenWidth - 40,
		coinX:   200,
	}
	g.flipped = gfx.FlipSpriteY(g.player, gfx.NewSprite(g.player.Width, g.player.Height))
	g.ctx = gfx.NewContext(fb, gfx.Config{
		Transport: tr,
		Font:      gfx.NewTinyFont(&proggy.TinySZ8pt7b, hudLineHeight, 7),
		Logger:    h.Logger(),
	})
	g.ctx.Assert = g.assertHandler()

	loadPalette(g.ctx)
	g.ctx.SetTransparentColor(colClear)
	g.ctx.SetDraw(gfx.Buffer)
	g.ctx.ZeroScreen()

	g.drawHUD()
	if cfg.Console {
		con, err := console.New(fb, consoleRect, &proggy.TinySZ8pt7b, 10, 7)
		if err != nil {
			return nil, err
		}
		g.con = con
		g.log = con
	}
	g.drawScene()
	g.ctx.Blit(gfx.Buffer)
	g.ctx.WaitBlit()

	g.log.WriteLineString("graphx " + buildinfo.String())
	g.flushConsole()
	return g, nil
}

// Context exposes the rendering context.
func (g *Game) Context() *gfx.Context { return g.ctx }

// Frame returns the number of completed steps.
func (g *Game) Frame() uint64 { return g.frame }

// Score returns the number of coins collected.
func (g *Game) Score() uint { return g.score }

// Step advances the scene by one frame and flushes the playfield.
func (g *Game) Step() error {
	if g.failed != nil {
		return g.failed
	}
	g.frame++

	g.update()
	g.drawScene()
	g.ctx.BlitLines(gfx.Buffer, 0, playfieldH)

	if g.frame%60 == 0 {
		g.seconds++
		g.drawTime()
	}
	g.ctx.WaitBlit()
	return g.failed
}

func (g *Game) update() {
	maxScroll := (worldWidth - viewTilesX - 1) * tileSize
	g.scrollX++
	if g.scrollX >= maxScroll {
		g.scrollX = 0
		g.coinX = 200
		g.level++
		g.drawLevel()
		g.logf("level %d", g.level+1)
	}

	g.playerX += g.dir * 2
	if g.playerX < 8 || g.playerX+g.player.Width > ScreenWidth-8 {
		g.dir = -g.dir
		g.playerX += g.dir * 4
	}

	g.enemyX--
	if g.enemyX+g.enemy.Width < 0 {
		g.enemyX = ScreenWidth
	}

	cx := g.coinX - g.scrollX
	if cx < -coinSize {
		g.coinX += ScreenWidth + 3*tileSize
		cx = g.coinX - g.scrollX
	}
	if d := cx - g.playerX; d > -coinSize && d < g.player.Width {
		g.coins++
		g.score += 100
		if g.coins == 100 {
			g.coins = 0
		}
		g.coinX += ScreenWidth / 2
		g.drawCoins()
		g.drawScore()
		g.logf("coin +100 (%d)", g.score)
	}
}

const (
	coinScale = 3
	coinSize  = 4 * coinScale
)

func (g *Game) drawScene() {
	c := g.ctx
	c.SetClipRegion(0, 0, ScreenWidth, playfieldH)

	c.Tilemap(g.world, g.scrollX, 0)

	c.SetColor(colSun)
	c.FillCircle(ScreenWidth-40, 28, 14)

	if cx := g.coinX - g.scrollX; cx >= 0 && cx+coinSize <= ScreenWidth {
		c.ScaledTransparentSpriteNoClip(g.coin, cx, groundY-coinSize-20, coinScale, coinScale)
	}

	c.RLETSprite(g.enemy, g.enemyX, groundY-g.enemy.Height)

	p := g.player
	if g.dir < 0 {
		p = g.flipped
	}
	c.TransparentSprite(p, g.playerX, groundY-p.Height)

	c.SetClipRegion(0, 0, ScreenWidth, ScreenHeight)
}

func (g *Game) logf(format string, args ...any) {
	g.log.WriteLineString(fmt.Sprintf(format, args...))
	g.flushConsole()
}

// consoleRect is the console window: the right part of the HUD.
var consoleRect = image.Rect(200, playfieldH+1, ScreenWidth, ScreenHeight)

func (g *Game) flushConsole() {
	if g.con == nil {
		return
	}
	r := g.con.Bounds()
	g.ctx.BlitLines(gfx.Buffer, r.Min.Y, r.Dy())
}
