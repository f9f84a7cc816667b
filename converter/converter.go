// SPDX-License-Identifier: Unlicense OR MIT

package converter

import "math"

const (
	// FreezingC and FreezingF are the freezing point of water, which is
	// also the floor of the Fahrenheit slider after a drag settles.
	FreezingC = 0
	FreezingF = 32

	// CommentThreshold is the highest Celsius value that still wishes
	// for warmer weather.
	CommentThreshold = 20
)

// Range is a closed interval of temperatures.
type Range struct {
	Min, Max float64
}

// CelsiusRange and FahrenheitRange are the slider ranges. Callers clamp
// to them; the Converter does not.
var (
	CelsiusRange    = Range{Min: 0, Max: 100}
	FahrenheitRange = Range{Min: 0, Max: 212}
)

// Converter holds a linked pair of temperatures.
type Converter struct {
	celsius    float64
	fahrenheit float64
	// fahrenheitActive is set while the Fahrenheit side is being dragged.
	fahrenheitActive bool
}

// Reading is a snapshot of a Converter for display.
type Reading struct {
	Celsius    float64
	Fahrenheit float64
	Comment    Comment
}

// New returns a Converter at the freezing point.
func New() *Converter {
	return &Converter{
		celsius:    FreezingC,
		fahrenheit: FreezingF,
	}
}

// SetCelsius sets the Celsius value and recomputes Fahrenheit,
// whatever the drag state.
func (c *Converter) SetCelsius(v float64) {
	c.celsius = v
	c.fahrenheit = Round(CToF(v))
}

// BeginFahrenheitDrag marks the start of a Fahrenheit drag.
func (c *Converter) BeginFahrenheitDrag() {
	c.fahrenheitActive = true
}

// SetFahrenheit sets the Fahrenheit value. Celsius follows immediately
// unless a Fahrenheit drag is active, in which case it is left alone
// until EndFahrenheitDrag.
func (c *Converter) SetFahrenheit(v float64) {
	c.fahrenheit = v
	if !c.fahrenheitActive {
		c.celsius = Round(FToC(v))
	}
}

// EndFahrenheitDrag ends a Fahrenheit drag and settles Celsius. A
// Fahrenheit value below freezing snaps back to the freezing point.
func (c *Converter) EndFahrenheitDrag() {
	c.fahrenheitActive = false
	if c.fahrenheit < FreezingF {
		c.fahrenheit = FreezingF
		c.celsius = FreezingC
		return
	}
	c.celsius = Round(FToC(c.fahrenheit))
}

// Celsius returns the Celsius value.
func (c *Converter) Celsius() float64 {
	return c.celsius
}

// Fahrenheit returns the Fahrenheit value, unrounded while a drag is
// active.
func (c *Converter) Fahrenheit() float64 {
	return c.fahrenheit
}

// FahrenheitActive reports whether a Fahrenheit drag is in progress.
func (c *Converter) FahrenheitActive() bool {
	return c.fahrenheitActive
}

// Comment is computed from the current Celsius value on every call.
func (c *Converter) Comment() Comment {
	if c.celsius <= CommentThreshold {
		return WarmerWish
	}
	return ColderWish
}

// Reading returns the current values and comment.
func (c *Converter) Reading() Reading {
	return Reading{
		Celsius:    c.celsius,
		Fahrenheit: c.fahrenheit,
		Comment:    c.Comment(),
	}
}

// Clamp limits v to r.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// CToF converts Celsius to Fahrenheit without rounding.
func CToF(c float64) float64 {
	return c*9/5 + 32
}

// FToC converts Fahrenheit to Celsius without rounding.
func FToC(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Round rounds x to the nearest integer, rounding halves up
// (toward positive infinity, so -0.5 rounds to 0).
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}
