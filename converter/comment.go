// SPDX-License-Identifier: Unlicense OR MIT

package converter

// Comment is the remark shown under the sliders.
type Comment uint8

const (
	// WarmerWish is shown at or below CommentThreshold.
	WarmerWish Comment = iota
	ColderWish
)

func (c Comment) String() string {
	switch c {
	case WarmerWish:
		return "I wish it were warmer."
	case ColderWish:
		return "I wish it were colder."
	default:
		panic("invalid Comment")
	}
}
