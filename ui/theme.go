// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/tempconv/tempconv/converter"
)

// Theme is a material theme with the colours of the temperature comment.
type Theme struct {
	*material.Theme
	Dark bool
	// Warmer colours the wish for warmer weather, Colder the wish
	// for colder weather.
	Warmer color.NRGBA
	Colder color.NRGBA

	TitleSize unit.Sp
	LabelSize unit.Sp
}

// NewTheme returns the light or dark theme, using the Go fonts.
func NewTheme(dark bool) *Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	t := &Theme{
		Theme:     th,
		Dark:      dark,
		TitleSize: 24,
		LabelSize: 18,
	}
	if dark {
		th.Palette = material.Palette{
			Bg:         rgb(0x1c1b1f),
			Fg:         rgb(0xe6e1e5),
			ContrastBg: rgb(0xd0bcff),
			ContrastFg: rgb(0x381e72),
		}
		t.Warmer = rgb(0x8ab4f8)
		t.Colder = rgb(0xf28b82)
	} else {
		th.Palette = material.Palette{
			Bg:         rgb(0xfffbfe),
			Fg:         rgb(0x1c1b1f),
			ContrastBg: rgb(0x6750a4),
			ContrastFg: rgb(0xffffff),
		}
		t.Warmer = rgb(0x0000ff)
		t.Colder = rgb(0xff0000)
	}
	return t
}

// CommentColor returns the text colour for c.
func (t *Theme) CommentColor(c converter.Comment) color.NRGBA {
	if c == converter.WarmerWish {
		return t.Warmer
	}
	return t.Colder
}

func rgb(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
