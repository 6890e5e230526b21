// Package theme provides the color themes used by the interactive lex
// stepper: a per-token-kind foreground mapping, a built-in theme set
// cycled with keyboard keys, and YAML-loaded user themes.
package theme

import (
	"fmt"
	"image/color"

	"imp/pkg/compiler"
)

// Theme names a full color set. The role fields mirror the faces the
// stepper paints with: token foregrounds plus the cursor cell and the
// status region.
type Theme struct {
	Name         string
	Background   color.RGBA
	Foreground   color.RGBA
	Cursor       color.RGBA
	Region       color.RGBA
	Keyword      color.RGBA
	Variable     color.RGBA
	Function     color.RGBA
	Preprocessor color.RGBA
	Type         color.RGBA
}

// ForToken maps a token kind to its foreground color: identifiers are
// variables, "::" binds a name so it gets the function face, "proc" is
// a keyword, parens take the preprocessor face and braces the type
// face. Everything else falls back to the plain foreground.
func (t Theme) ForToken(tt compiler.TokenType) color.RGBA {
	switch tt {
	case compiler.IDENTIFIER:
		return t.Variable
	case compiler.DOUBLE_COLON:
		return t.Function
	case compiler.PROC:
		return t.Keyword
	case compiler.LPAREN, compiler.RPAREN:
		return t.Preprocessor
	case compiler.LBRACE, compiler.RBRACE:
		return t.Type
	default:
		return t.Foreground
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// builtins is the fixed theme set, in cycling order.
var builtins = []Theme{
	{
		Name:         "gruber-darker",
		Background:   rgb(0x18, 0x18, 0x18),
		Foreground:   rgb(0xe4, 0xe4, 0xef),
		Cursor:       rgb(0xff, 0xdd, 0x33),
		Region:       rgb(0x48, 0x44, 0x34),
		Keyword:      rgb(0xff, 0xdd, 0x33),
		Variable:     rgb(0x95, 0xa9, 0x9f),
		Function:     rgb(0x96, 0xa6, 0xc8),
		Preprocessor: rgb(0xc7, 0x3c, 0x3f),
		Type:         rgb(0x95, 0xa9, 0x9f),
	},
	{
		Name:         "naysayer",
		Background:   rgb(0x06, 0x21, 0x26),
		Foreground:   rgb(0xd1, 0xb8, 0x97),
		Cursor:       rgb(0x8c, 0xde, 0x94),
		Region:       rgb(0x0b, 0x3d, 0x46),
		Keyword:      rgb(0xff, 0xff, 0xff),
		Variable:     rgb(0xc1, 0xd1, 0xe3),
		Function:     rgb(0xd1, 0xb8, 0x97),
		Preprocessor: rgb(0x8c, 0xde, 0x94),
		Type:         rgb(0x8c, 0xde, 0x94),
	},
	{
		Name:         "handmade",
		Background:   rgb(0x16, 0x1c, 0x16),
		Foreground:   rgb(0xcd, 0xaa, 0x7d),
		Cursor:       rgb(0x40, 0xff, 0x40),
		Region:       rgb(0x2f, 0x4f, 0x2f),
		Keyword:      rgb(0xcd, 0x95, 0x0c),
		Variable:     rgb(0xcd, 0xaa, 0x7d),
		Function:     rgb(0xa0, 0x82, 0x63),
		Preprocessor: rgb(0xda, 0xa5, 0x20),
		Type:         rgb(0x8c, 0xde, 0x94),
	},
	{
		Name:         "paper",
		Background:   rgb(0xfa, 0xfa, 0xf6),
		Foreground:   rgb(0x22, 0x22, 0x22),
		Cursor:       rgb(0x22, 0x22, 0x22),
		Region:       rgb(0xd8, 0xe4, 0xf0),
		Keyword:      rgb(0x00, 0x00, 0xaa),
		Variable:     rgb(0x33, 0x33, 0x33),
		Function:     rgb(0x64, 0x32, 0x96),
		Preprocessor: rgb(0xaa, 0x32, 0x32),
		Type:         rgb(0x00, 0x64, 0x00),
	},
}

// Builtins returns a copy of the built-in theme set in cycling order.
func Builtins() []Theme {
	out := make([]Theme, len(builtins))
	copy(out, builtins)
	return out
}

// Cycle is an ordered ring of themes with a current selection.
type Cycle struct {
	themes []Theme
	idx    int
}

// NewCycle returns a cycle over the built-in themes, selecting the first.
func NewCycle() *Cycle {
	return &Cycle{themes: Builtins()}
}

// Current returns the selected theme.
func (c *Cycle) Current() Theme {
	return c.themes[c.idx]
}

// Next advances the selection, wrapping past the end, and returns it.
func (c *Cycle) Next() Theme {
	c.idx = (c.idx + 1) % len(c.themes)
	return c.themes[c.idx]
}

// Prev moves the selection back, wrapping past the start, and returns it.
func (c *Cycle) Prev() Theme {
	c.idx = (c.idx - 1 + len(c.themes)) % len(c.themes)
	return c.themes[c.idx]
}

// Select makes the named theme current.
func (c *Cycle) Select(name string) error {
	for i, t := range c.themes {
		if t.Name == name {
			c.idx = i
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q", name)
}

// Add appends themes to the cycle. A name that is already present is an
// error and leaves the cycle unchanged.
func (c *Cycle) Add(themes ...Theme) error {
	for _, t := range themes {
		for _, have := range c.themes {
			if have.Name == t.Name {
				return fmt.Errorf("duplicate theme %q", t.Name)
			}
		}
	}
	c.themes = append(c.themes, themes...)
	return nil
}

// Names lists the cycle's theme names in order.
func (c *Cycle) Names() []string {
	names := make([]string, len(c.themes))
	for i, t := range c.themes {
		names[i] = t.Name
	}
	return names
}
