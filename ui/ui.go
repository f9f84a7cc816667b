// SPDX-License-Identifier: Unlicense OR MIT

// Package ui lays out the temperature converter screen.
package ui

import (
	"fmt"
	"image"
	"log/slog"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/tempconv/tempconv/converter"
	"github.com/tempconv/tempconv/slider"
)

const title = "Temperature Converter"

// UI is the converter screen. It owns the Converter and feeds it the
// events of the two sliders.
type UI struct {
	theme *Theme
	log   *slog.Logger

	conv       *converter.Converter
	celsius    slider.Float
	fahrenheit slider.Float

	coldIcon *widget.Icon
	warmIcon *widget.Icon
}

// New returns a UI at the freezing point. A nil logger means
// slog.Default.
func New(th *Theme, logger *slog.Logger) (*UI, error) {
	if logger == nil {
		logger = slog.Default()
	}
	coldIcon, err := widget.NewIcon(icons.PlacesACUnit)
	if err != nil {
		return nil, fmt.Errorf("ui: cold icon: %w", err)
	}
	warmIcon, err := widget.NewIcon(icons.ImageWBSunny)
	if err != nil {
		return nil, fmt.Errorf("ui: warm icon: %w", err)
	}
	u := &UI{
		theme:    th,
		log:      logger,
		conv:     converter.New(),
		coldIcon: coldIcon,
		warmIcon: warmIcon,
	}
	u.celsius.Min = float32(converter.CelsiusRange.Min)
	u.celsius.Max = float32(converter.CelsiusRange.Max)
	u.fahrenheit.Min = float32(converter.FahrenheitRange.Min)
	u.fahrenheit.Max = float32(converter.FahrenheitRange.Max)
	u.sync()
	return u, nil
}

// Converter returns the state behind the screen.
func (u *UI) Converter() *converter.Converter {
	return u.conv
}

// SetTheme replaces the theme from the next frame on.
func (u *UI) SetTheme(th *Theme) {
	u.theme = th
}

// Layout handles slider events and draws the screen.
func (u *UI) Layout(gtx layout.Context) layout.Dimensions {
	u.update(gtx)
	u.sync()

	th := u.theme
	paint.Fill(gtx.Ops, th.Palette.Bg)
	return layout.UniformInset(16).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max
		return layout.Flex{
			Axis:      layout.Vertical,
			Alignment: layout.Middle,
			Spacing:   layout.SpaceSides,
		}.Layout(gtx,
			layout.Rigid(u.layoutTitle),
			layout.Rigid(layout.Spacer{Height: 32}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return u.layoutSlider(gtx, "Celsius", "°C", &u.celsius)
			}),
			layout.Rigid(layout.Spacer{Height: 32}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return u.layoutSlider(gtx, "Fahrenheit", "°F", &u.fahrenheit)
			}),
			layout.Rigid(layout.Spacer{Height: 32}.Layout),
			layout.Rigid(u.layoutComment),
		)
	})
}

func (u *UI) update(gtx layout.Context) {
	for {
		e, ok := u.celsius.Update(gtx)
		if !ok {
			break
		}
		u.handleCelsius(e)
	}
	for {
		e, ok := u.fahrenheit.Update(gtx)
		if !ok {
			break
		}
		u.handleFahrenheit(e)
	}
}

func (u *UI) handleCelsius(e slider.Event) {
	switch e.Kind {
	case slider.Change:
		u.conv.SetCelsius(converter.CelsiusRange.Clamp(float64(e.Value)))
	case slider.DragEnd:
		u.log.Debug("celsius settled", "reading", u.conv.Reading())
	}
}

func (u *UI) handleFahrenheit(e slider.Event) {
	switch e.Kind {
	case slider.DragStart:
		u.conv.BeginFahrenheitDrag()
		u.log.Debug("fahrenheit drag started", "fahrenheit", u.conv.Fahrenheit())
	case slider.Change:
		u.conv.SetFahrenheit(converter.FahrenheitRange.Clamp(float64(e.Value)))
	case slider.DragEnd:
		u.conv.EndFahrenheitDrag()
		u.log.Debug("fahrenheit drag ended", "reading", u.conv.Reading())
	}
}

// sync moves the sliders to the converter values.
func (u *UI) sync() {
	u.celsius.Value = float32(u.conv.Celsius())
	u.fahrenheit.Value = float32(u.conv.Fahrenheit())
}

func (u *UI) layoutTitle(gtx layout.Context) layout.Dimensions {
	l := material.Label(u.theme.Theme, u.theme.TitleSize, title)
	l.Font.Weight = font.Bold
	l.Alignment = text.Middle
	return l.Layout(gtx)
}

func (u *UI) layoutSlider(gtx layout.Context, name, symbol string, f *slider.Float) layout.Dimensions {
	th := u.theme
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: 8}.Layout(gtx,
				material.Label(th.Theme, th.LabelSize, valueLabel(name, symbol, f.Value)).Layout,
			)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			w := gtx.Dp(300)
			if w > gtx.Constraints.Max.X {
				w = gtx.Constraints.Max.X
			}
			gtx.Constraints.Min.X = w
			gtx.Constraints.Max.X = w
			return slider.Slider(th.Theme, f).Layout(gtx)
		}),
	)
}

func (u *UI) layoutComment(gtx layout.Context) layout.Dimensions {
	th := u.theme
	c := u.conv.Comment()
	col := th.CommentColor(c)
	icon := u.coldIcon
	if c == converter.ColderWish {
		icon = u.warmIcon
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = image.Pt(gtx.Sp(th.LabelSize), 0)
			return icon.Layout(gtx, col)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Label(th.Theme, th.LabelSize, c.String())
			l.Color = col
			return l.Layout(gtx)
		}),
	)
}

// valueLabel formats a slider caption such as "Celsius: 25°C".
func valueLabel(name, symbol string, v float32) string {
	return fmt.Sprintf("%s: %d%s", name, int(converter.Round(float64(v))), symbol)
}
