// SPDX-License-Identifier: Unlicense OR MIT

// Package slider implements a horizontal range slider that reports the
// start and end of each drag alongside value changes.
package slider

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// Float is for selecting a value in the range [Min, Max].
type Float struct {
	Value    float32
	Min, Max float32

	drag   gesture.Drag
	length float32
	// active is set between the DragStart and DragEnd events.
	active  bool
	pending []Event
}

// Kind of a slider Event.
type Kind uint8

const (
	// DragStart is reported when a pointer presses the slider.
	DragStart Kind = iota
	// Change is reported whenever a press or drag moves the value.
	Change
	// DragEnd is reported when the pointer is released or cancelled.
	DragEnd
)

// Event is a slider interaction. Value is the slider value once the
// event is applied; for DragStart it is the value before the press
// moved the thumb.
type Event struct {
	Kind  Kind
	Value float32
}

// Update processes pointer events and returns the next slider event,
// if any. Call it in a loop until it returns false.
func (f *Float) Update(gtx layout.Context) (Event, bool) {
	f.poll(gtx)
	if len(f.pending) == 0 {
		return Event{}, false
	}
	e := f.pending[0]
	f.pending = f.pending[1:]
	return e, true
}

// poll moves gesture events into the pending queue.
func (f *Float) poll(gtx layout.Context) {
	for {
		e, ok := f.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			return
		}
		switch e.Kind {
		case pointer.Press:
			if !f.active {
				f.active = true
				f.pending = append(f.pending, Event{Kind: DragStart, Value: f.Value})
			}
			f.moveTo(e.Position.X)
		case pointer.Drag:
			f.moveTo(e.Position.X)
		case pointer.Release, pointer.Cancel:
			if f.active {
				f.active = false
				f.pending = append(f.pending, Event{Kind: DragEnd, Value: f.Value})
			}
		}
	}
}

func (f *Float) moveTo(x float32) {
	if f.length <= 0 {
		return
	}
	pos := x / f.length
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}
	f.Value = f.Min + (f.Max-f.Min)*pos
	f.pending = append(f.pending, Event{Kind: Change, Value: f.Value})
}

// Layout adds the input area of the slider. The area is the minimum
// constraint widened horizontally by pointerMargin on both sides.
// Events not yet returned by Update stay queued.
func (f *Float) Layout(gtx layout.Context, pointerMargin int) layout.Dimensions {
	size := gtx.Constraints.Min
	f.length = float32(size.X)
	f.poll(gtx)

	rect := image.Rectangle{Max: size}
	rect.Min.X -= pointerMargin
	rect.Max.X += pointerMargin
	defer clip.Rect(rect).Push(gtx.Ops).Pop()
	f.drag.Add(gtx.Ops)

	return layout.Dimensions{Size: size}
}

// Pos reports the thumb position in pixels from the start of the
// track.
func (f *Float) Pos() float32 {
	return f.normalized() * f.length
}

func (f *Float) normalized() float32 {
	if f.Max == f.Min {
		return 0
	}
	pos := (f.Value - f.Min) / (f.Max - f.Min)
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}
	return pos
}
