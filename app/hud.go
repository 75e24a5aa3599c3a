package app

import "graphx/gfx"

const hudLineHeight = 10

// HUD text rows, below the playfield.
const (
	hudTopY    = playfieldH + 9
	hudBottomY = playfieldH + 24
)

func (g *Game) drawHUD() {
	c := g.ctx
	c.SetColor(colHUD)
	c.FillRectangle(0, playfieldH, ScreenWidth, ScreenHeight-playfieldH)
	c.SetColor(colBorder)
	c.HorizLine(0, playfieldH, ScreenWidth)
	c.Rectangle(2, playfieldH+3, 192, ScreenHeight-playfieldH-6)
	if g.cfg.Console {
		c.VertLine(consoleRect.Min.X-2, playfieldH, ScreenHeight-playfieldH)
	}

	c.SetTextFGColor(colText)
	c.SetTextBGColor(colHUD)
	c.SetTextTransparentColor(colClear)
	c.PrintStringXY("TIME", 8, hudTopY)
	c.PrintStringXY("SCORE", 8, hudBottomY)
	c.PrintStringXY("COINS", 104, hudTopY)
	c.PrintStringXY("LEVEL", 104, hudBottomY)

	g.drawTime()
	g.drawScore()
	g.drawCoins()
	g.drawLevel()
}

func (g *Game) drawTime() {
	g.ctx.SetTextXY(48, hudTopY)
	g.ctx.PrintUInt(g.seconds, 3)
	g.ctx.BlitLines(gfx.Buffer, hudTopY, hudLineHeight)
}

func (g *Game) drawScore() {
	g.ctx.SetTextXY(48, hudBottomY)
	g.ctx.PrintUInt(g.score, 7)
	g.ctx.BlitLines(gfx.Buffer, hudBottomY, hudLineHeight)
}

func (g *Game) drawCoins() {
	g.ctx.SetTextXY(150, hudTopY)
	g.ctx.PrintUInt(g.coins, 2)
	g.ctx.BlitLines(gfx.Buffer, hudTopY, hudLineHeight)
}

func (g *Game) drawLevel() {
	g.ctx.SetTextXY(150, hudBottomY)
	g.ctx.PrintUInt(g.level+1, 3)
	g.ctx.BlitLines(gfx.Buffer, hudBottomY, hudLineHeight)
}
