// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image"
	"io"
	"log/slog"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/tempconv/tempconv/converter"
	"github.com/tempconv/tempconv/slider"
)

func newTestUI(t *testing.T) *UI {
	t.Helper()
	u, err := New(NewTheme(false), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestSliderEventsDriveConverter(t *testing.T) {
	u := newTestUI(t)
	check := func(step string, want converter.Reading) {
		t.Helper()
		if got := u.Converter().Reading(); got != want {
			t.Errorf("%s: got %+v, want %+v", step, got, want)
		}
	}
	check("initial", converter.Reading{Celsius: 0, Fahrenheit: 32, Comment: converter.WarmerWish})

	u.handleCelsius(slider.Event{Kind: slider.DragStart, Value: 0})
	u.handleCelsius(slider.Event{Kind: slider.Change, Value: 25})
	u.handleCelsius(slider.Event{Kind: slider.DragEnd, Value: 25})
	if u.Converter().FahrenheitActive() {
		t.Error("celsius drag activated the fahrenheit guard")
	}
	check("celsius 25", converter.Reading{Celsius: 25, Fahrenheit: 77, Comment: converter.ColderWish})

	u.handleFahrenheit(slider.Event{Kind: slider.DragStart, Value: 77})
	u.handleFahrenheit(slider.Event{Kind: slider.Change, Value: 50})
	u.handleFahrenheit(slider.Event{Kind: slider.Change, Value: 32})
	check("mid drag", converter.Reading{Celsius: 25, Fahrenheit: 32, Comment: converter.ColderWish})
	u.handleFahrenheit(slider.Event{Kind: slider.DragEnd, Value: 32})
	check("drag end", converter.Reading{Celsius: 0, Fahrenheit: 32, Comment: converter.WarmerWish})
}

func TestFahrenheitReleaseBelowFreezing(t *testing.T) {
	u := newTestUI(t)
	u.handleFahrenheit(slider.Event{Kind: slider.DragStart, Value: 32})
	u.handleFahrenheit(slider.Event{Kind: slider.Change, Value: 10})
	u.handleFahrenheit(slider.Event{Kind: slider.DragEnd, Value: 10})
	if got := u.Converter().Fahrenheit(); got != 32 {
		t.Errorf("fahrenheit = %v, want 32", got)
	}
}

func TestChangeIsClamped(t *testing.T) {
	u := newTestUI(t)
	u.handleCelsius(slider.Event{Kind: slider.Change, Value: 140})
	if got := u.Converter().Celsius(); got != 100 {
		t.Errorf("celsius = %v, want 100", got)
	}
	u.handleFahrenheit(slider.Event{Kind: slider.Change, Value: -20})
	if got := u.Converter().Fahrenheit(); got != 0 {
		t.Errorf("fahrenheit = %v, want 0", got)
	}
}

func TestLayoutSyncsSliders(t *testing.T) {
	var r input.Router
	u := newTestUI(t)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(400, 600)),
	}
	dims := u.Layout(gtx)
	r.Frame(gtx.Ops)
	if dims.Size != image.Pt(400, 600) {
		t.Errorf("dimensions = %v, want 400x600", dims.Size)
	}
	if u.celsius.Value != 0 || u.fahrenheit.Value != 32 {
		t.Errorf("sliders at %v, %v; want 0, 32", u.celsius.Value, u.fahrenheit.Value)
	}

	u.Converter().SetCelsius(25)
	gtx.Ops.Reset()
	u.Layout(gtx)
	r.Frame(gtx.Ops)
	if u.celsius.Value != 25 || u.fahrenheit.Value != 77 {
		t.Errorf("sliders at %v, %v; want 25, 77", u.celsius.Value, u.fahrenheit.Value)
	}

	u.SetTheme(NewTheme(true))
	gtx.Ops.Reset()
	u.Layout(gtx)
}

func TestValueLabel(t *testing.T) {
	tests := []struct {
		name, symbol string
		v            float32
		want         string
	}{
		{"Celsius", "°C", 25, "Celsius: 25°C"},
		{"Celsius", "°C", 24.5, "Celsius: 25°C"},
		{"Fahrenheit", "°F", 31.4, "Fahrenheit: 31°F"},
		{"Fahrenheit", "°F", 212, "Fahrenheit: 212°F"},
	}
	for _, tt := range tests {
		if got := valueLabel(tt.name, tt.symbol, tt.v); got != tt.want {
			t.Errorf("valueLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestCommentColor(t *testing.T) {
	for _, dark := range []bool{false, true} {
		th := NewTheme(dark)
		if th.CommentColor(converter.WarmerWish) != th.Warmer {
			t.Errorf("dark=%v: warmer wish not in the warmer colour", dark)
		}
		if th.CommentColor(converter.ColderWish) != th.Colder {
			t.Errorf("dark=%v: colder wish not in the colder colour", dark)
		}
	}
	if NewTheme(true).Palette.Bg == NewTheme(false).Palette.Bg {
		t.Error("dark and light themes share a background")
	}
}

// screen is a UI laid out at a fixed size with its own input router.
type screen struct {
	u   *UI
	r   input.Router
	gtx layout.Context
}

func newScreen(t *testing.T) *screen {
	s := &screen{u: newTestUI(t)}
	s.gtx = layout.Context{
		Ops:         new(op.Ops),
		Source:      s.r.Source(),
		Constraints: layout.Exact(image.Pt(400, 600)),
	}
	s.frame()
	return s
}

// frame lays out the screen, handling queued input.
func (s *screen) frame() {
	s.gtx.Ops.Reset()
	s.u.Layout(s.gtx)
	s.r.Frame(s.gtx.Ops)
}

func (s *screen) touch(kind pointer.Kind, x, y float32) {
	s.r.Queue(pointer.Event{
		Source:   pointer.Touch,
		Kind:     kind,
		Position: f32.Pt(x, y),
	})
	s.frame()
}

// fahrenheitRow finds a y coordinate on the Fahrenheit slider by pressing
// down the middle of fresh screens until a press starts a Fahrenheit drag.
func fahrenheitRow(t *testing.T) float32 {
	t.Helper()
	for y := float32(0); y < 600; y += 8 {
		s := newScreen(t)
		s.touch(pointer.Press, 200, y)
		if s.u.Converter().FahrenheitActive() {
			return y
		}
	}
	t.Fatal("no Fahrenheit slider found")
	return 0
}

func TestFahrenheitDragThroughLayout(t *testing.T) {
	y := fahrenheitRow(t)
	s := newScreen(t)
	conv := s.u.Converter()
	conv.SetCelsius(25)
	s.frame()

	s.touch(pointer.Press, 200, y)
	if !conv.FahrenheitActive() {
		t.Fatal("press did not start a Fahrenheit drag")
	}
	if conv.Fahrenheit() == 77 {
		t.Error("press did not move the Fahrenheit value")
	}

	// Drag past the start of the track.
	s.touch(pointer.Move, 0, y)
	if got := conv.Fahrenheit(); got != 0 {
		t.Errorf("fahrenheit = %v mid drag, want 0", got)
	}
	if got := conv.Celsius(); got != 25 {
		t.Errorf("celsius = %v mid drag, want 25", got)
	}
	if s.u.fahrenheit.Value != 0 {
		t.Errorf("slider at %v mid drag, want 0", s.u.fahrenheit.Value)
	}

	s.touch(pointer.Release, 0, y)
	want := converter.Reading{Celsius: 0, Fahrenheit: 32, Comment: converter.WarmerWish}
	if got := conv.Reading(); got != want {
		t.Errorf("after release below freezing: got %+v, want %+v", got, want)
	}
	if conv.FahrenheitActive() {
		t.Error("drag still active after release")
	}
	if s.u.fahrenheit.Value != 32 {
		t.Errorf("slider at %v after release, want 32", s.u.fahrenheit.Value)
	}

	// Drag past the end of the track.
	s.touch(pointer.Press, 200, y)
	s.touch(pointer.Move, 400, y)
	s.touch(pointer.Release, 400, y)
	want = converter.Reading{Celsius: 100, Fahrenheit: 212, Comment: converter.ColderWish}
	if got := conv.Reading(); got != want {
		t.Errorf("after release at the top: got %+v, want %+v", got, want)
	}
}
