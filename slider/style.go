// SPDX-License-Identifier: Unlicense OR MIT

package slider

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Style paints a Float as a material design slider.
type Style struct {
	Color       color.NRGBA
	ThumbRadius unit.Dp
	TrackWidth  unit.Dp
	Float       *Float
}

// Slider returns a Style coloured from the theme.
func Slider(th *material.Theme, float *Float) Style {
	return Style{
		Color:       th.Palette.ContrastBg,
		ThumbRadius: 8,
		TrackWidth:  4,
		Float:       float,
	}
}

func (s Style) Layout(gtx layout.Context) layout.Dimensions {
	thumbRadius := gtx.Dp(s.ThumbRadius)
	trackWidth := gtx.Dp(s.TrackWidth)
	halfWidth := 2 * thumbRadius

	size := gtx.Constraints.Min
	// Keep a minimum length so that the track is always visible.
	minLength := halfWidth + 3*thumbRadius + halfWidth
	if size.X < minLength {
		size.X = minLength
	}
	size.Y = 2 * halfWidth

	o := op.Offset(image.Pt(halfWidth, 0)).Push(gtx.Ops)
	gtx.Constraints.Min = image.Pt(size.X-2*halfWidth, size.Y)
	s.Float.Layout(gtx, halfWidth)
	thumbPos := halfWidth + int(s.Float.Pos()+.5)
	o.Pop()

	c := s.Color
	if !gtx.Enabled() {
		c = mulAlpha(c, 150)
	}

	// Draw track before thumb.
	track := image.Rectangle{
		Min: image.Pt(halfWidth, halfWidth-trackWidth/2),
		Max: image.Pt(thumbPos, halfWidth+(trackWidth+1)/2),
	}
	paint.FillShape(gtx.Ops, c, clip.Rect(track).Op())

	// Draw track after thumb.
	track.Min.X = thumbPos
	track.Max.X = size.X - halfWidth
	paint.FillShape(gtx.Ops, mulAlpha(c, 96), clip.Rect(track).Op())

	// Draw thumb.
	thumb := image.Rect(
		thumbPos-thumbRadius, halfWidth-thumbRadius,
		thumbPos+thumbRadius, halfWidth+thumbRadius,
	)
	paint.FillShape(gtx.Ops, c, clip.Ellipse(thumb).Op(gtx.Ops))

	return layout.Dimensions{Size: size}
}

// mulAlpha scales the alpha of c by alpha/255.
func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}
