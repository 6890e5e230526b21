package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"imp/pkg/stepper"
	"imp/pkg/theme"
)

const (
	cellW = 7  // basicfont.Face7x13 advance
	cellH = 13 // basicfont.Face7x13 line height

	marginX = 10
	marginY = 10

	screenW = 640
	screenH = 480
)

// Any of these steps the scanner by one token.
var stepKeys = []ebiten.Key{ebiten.KeyJ, ebiten.KeyN, ebiten.KeySpace, ebiten.KeyF}

// Game replays the scanner over the source text: each key press pulls
// one token, the token's span is highlighted in its theme color, and a
// cursor cell marks the scanner's live position.
type Game struct {
	session      *stepper.Session
	themes       *theme.Cycle
	highlightAll bool // highlight every produced token, not just the current one
	face         *text.GoXFace
	cell         *ebiten.Image // 1×1 white image scaled to cursor cells
}

func NewGame(src string, themes *theme.Cycle) *Game {
	cell := ebiten.NewImage(1, 1)
	cell.Fill(color.White)
	return &Game{
		session: stepper.New(src),
		themes:  themes,
		face:    text.NewGoXFace(basicfont.Face7x13),
		cell:    cell,
	}
}

func (g *Game) Update() error {
	for _, k := range stepKeys {
		if inpututil.IsKeyJustPressed(k) {
			// A scan error latches in the session and is shown in the
			// status line; stepping simply stops making progress.
			g.session.Step()
			break
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.themes.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.themes.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.highlightAll = !g.highlightAll
	}
	return nil
}

// glyphColor picks the foreground for the source byte at offset. The
// cursor cell is handled by the caller.
func glyphColor(s *stepper.Session, th theme.Theme, highlightAll bool, offset int) color.RGBA {
	if highlightAll {
		if tok, ok := s.SpanAt(offset); ok {
			return th.ForToken(tok.Type)
		}
		return th.Foreground
	}
	cur := s.Current()
	if offset >= cur.Span.Start && offset < cur.Span.End {
		return th.ForToken(cur.Type)
	}
	return th.Foreground
}

// statusLine mirrors the state readout under the text: the step count,
// the current token's lexeme, and the scanner's cursor position.
func statusLine(s *stepper.Session) string {
	pos := s.Pos()
	return fmt.Sprintf("Step: %d, Token: %s, Line: %d, Col: %d",
		s.Steps(), s.Current().Lexeme, pos.Row, pos.Col)
}

func (g *Game) drawGlyph(screen *ebiten.Image, b byte, px, py float64, col color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, string(rune(b)), g.face, op)
}

func (g *Game) drawCell(screen *ebiten.Image, px, py float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellW, cellH)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(g.cell, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	th := g.themes.Current()
	screen.Fill(th.Background)

	src := g.session.Source()
	cursor := g.session.Pos().Offset

	row, col := 0, 0
	for i := 0; i < len(src); i++ {
		px := float64(marginX + col*cellW)
		py := float64(marginY + row*cellH)

		if i == cursor {
			g.drawCell(screen, px, py, th.Cursor)
		}

		b := src[i]
		if b == '\n' {
			row++
			col = 0
			continue
		}
		col++
		if b < ' ' || b > '~' {
			continue // nothing drawable in the cell
		}

		fg := glyphColor(g.session, th, g.highlightAll, i)
		if i == cursor {
			fg = th.Background
		}
		g.drawGlyph(screen, b, px, py, fg)
	}
	if cursor >= len(src) {
		// Scanner parked at end of input.
		g.drawCell(screen, float64(marginX+col*cellW), float64(marginY+row*cellH), th.Cursor)
	}

	statusY := float64(screenH - 2*(cellH+marginY))
	g.drawGlyphs(screen, statusLine(g.session), marginX, statusY, th.Foreground)

	switch {
	case g.session.Err() != nil:
		g.drawGlyphs(screen, g.session.Err().Error(), marginX, statusY+cellH, th.Preprocessor)
	case g.session.Done():
		g.drawGlyphs(screen, "Lexical analysis complete", marginX, statusY+cellH, th.Region)
	}
}

// drawGlyphs renders a whole string in one color at a pixel position.
func (g *Game) drawGlyphs(screen *ebiten.Image, s string, px, py float64, col color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func runStepper(src string) error {
	cycle := theme.NewCycle()
	if themesPath != "" {
		extra, err := theme.Load(themesPath)
		if err != nil {
			return err
		}
		if err := cycle.Add(extra...); err != nil {
			return err
		}
	}
	if themeName != "" {
		if err := cycle.Select(themeName); err != nil {
			return err
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetWindowTitle("imp - Lex Stepper")

	return ebiten.RunGame(NewGame(src, cycle))
}
