// SPDX-License-Identifier: Unlicense OR MIT

/*
Package converter keeps a Celsius and a Fahrenheit value in step.

A Converter is edited from either side. Setting Celsius always recomputes
Fahrenheit. Setting Fahrenheit recomputes Celsius only while no Fahrenheit
drag is in progress; during a drag Celsius is held and settled when the drag
ends. Every cross conversion rounds to the nearest whole degree, rounding
halves up, so repeated round trips may drift by a degree.

A Converter has a single owner and is not safe for concurrent use.
*/
package converter
