package render

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/chaos-pong/core"
	"github.com/lixenwraith/chaos-pong/game"
)

// Renderer draws the post-tick simulation state onto a tcell screen. It is
// strictly pull-based: the simulation never calls into it.
//
// The simulation runs in world units; the renderer scales world coordinates
// to the current terminal size every frame, so resizes need no simulation
// involvement.
type Renderer struct {
	screen tcell.Screen
	rng    *rand.Rand
}

// New creates a renderer bound to the screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		rng:    rand.New(rand.NewSource(1)),
	}
}

// Draw renders one frame from the game's post-tick state
func (r *Renderer) Draw(g *game.Game, leftScore, rightScore int) {
	snap := g.Snapshot()
	field := g.Field()

	termW, termH := r.screen.Size()
	if termW < 2 || termH < 3 {
		return
	}

	// Recover world canvas size from the field and its ratios
	canvasW, canvasH := field.Width/snap.FieldWidth, field.Height/snap.FieldHeight
	if canvasW <= 0 || canvasH <= 0 {
		return
	}
	sx := float64(termW) / canvasW
	sy := float64(termH-1) / canvasH // top row reserved for the score line

	ox, oy := 0, 0
	if snap.ScreenShake && g.Shake() > 0.5 {
		ox = r.rng.Intn(3) - 1
		oy = r.rng.Intn(3) - 1
	}

	bg := hexColor(snap.BackgroundColor)
	base := tcell.StyleDefault.Background(bg)
	r.screen.Fill(' ', base)

	toCell := func(wx, wy float64) (int, int) {
		return int(wx*sx) + ox, int(wy*sy) + 1 + oy
	}

	r.drawField(field, snap.FieldBorderColor, snap.NeonEffects, base, toCell)
	r.drawCenterLine(field, snap.FieldBorderColor, base, toCell)

	left, right := g.Paddles()
	r.drawPaddle(left, snap.PaddleColor, snap.NeonEffects, base, sx, sy, ox, oy)
	r.drawPaddle(right, snap.PaddleColor, snap.NeonEffects, base, sx, sy, ox, oy)

	for _, b := range g.Balls() {
		r.drawBall(b, snap.NeonEffects, base, toCell)
	}

	r.drawScore(leftScore, rightScore, termW, base)
	r.screen.Show()
}

func (r *Renderer) drawField(field core.Rect, borderHex string, neon bool, base tcell.Style, toCell func(float64, float64) (int, int)) {
	color := hexColor(borderHex)
	if neon {
		color = brighten(color)
	}
	style := base.Foreground(color)

	x0, y0 := toCell(field.X, field.Y)
	x1, y1 := toCell(field.Right(), field.Bottom())

	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawCenterLine(field core.Rect, borderHex string, base tcell.Style, toCell func(float64, float64) (int, int)) {
	style := base.Foreground(hexColor(borderHex))
	cx, y0 := toCell(field.CenterX(), field.Y)
	_, y1 := toCell(field.CenterX(), field.Bottom())
	for y := y0 + 1; y < y1; y += 2 {
		r.screen.SetContent(cx, y, '┊', nil, style)
	}
}

func (r *Renderer) drawPaddle(p *game.Paddle, hex string, neon bool, base tcell.Style, sx, sy float64, ox, oy int) {
	color := hexColor(hex)
	if neon {
		color = brighten(color)
	}
	style := base.Foreground(color)

	x0 := int(p.X*sx) + ox
	x1 := int((p.X+p.Width)*sx) + ox
	y0 := int(p.Y*sy) + 1 + oy
	y1 := int((p.Y+p.Height)*sy) + 1 + oy
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, '█', nil, style)
		}
	}
}

func (r *Renderer) drawBall(b *game.Ball, neon bool, base tcell.Style, toCell func(float64, float64) (int, int)) {
	color := hexColor(b.Color)
	if neon {
		color = brighten(color)
	}

	// Trail fades from oldest to newest
	trail := b.Trail()
	for i, t := range trail {
		factor := float64(i+1) / float64(len(trail)+1)
		tx, ty := toCell(t.X, t.Y)
		r.screen.SetContent(tx, ty, '·', nil, base.Foreground(scale(color, factor*0.7)))
	}

	x, y := toCell(b.X, b.Y)
	r.screen.SetContent(x, y, '●', nil, base.Foreground(color))
}

func (r *Renderer) drawScore(leftScore, rightScore, termW int, base tcell.Style) {
	text := fmt.Sprintf(" %d : %d ", leftScore, rightScore)
	x := (termW - len(text)) / 2
	style := base.Foreground(tcell.ColorWhite).Bold(true)
	for i, ch := range text {
		r.screen.SetContent(x+i, 0, ch, nil, style)
	}
}

// hexColor parses "#rrggbb" into a tcell color; parse failure yields white
func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	cr, cg, cb := c.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// brighten pushes a color halfway toward white (neon highlight pass)
func brighten(c tcell.Color) tcell.Color {
	cr, cg, cb := c.RGB()
	rgb := core.RGB{R: uint8(cr), G: uint8(cg), B: uint8(cb)}.Blend(core.RGBWhite, 0.5)
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// scale dims a color by factor
func scale(c tcell.Color, factor float64) tcell.Color {
	cr, cg, cb := c.RGB()
	rgb := core.RGB{R: uint8(cr), G: uint8(cg), B: uint8(cb)}.Scale(factor)
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
